package tagger

import "errors"

// ErrNonPositiveMinTokens is returned by Tag, as the sole element of
// its result sequence, when Options.MinTokens <= 0.
var ErrNonPositiveMinTokens = errors.New("tagger: minimum token count must be positive")
