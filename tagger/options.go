package tagger

// Options controls the behaviour of Tag. The zero value is not
// usable directly — call DefaultOptions and override individual
// fields, the way the Python tagger() function carries its defaults
// as keyword arguments.
type Options struct {
	// MinTokens is the minimum chain length, in words, to be accepted
	// as a candidate (C4). Must be positive.
	MinTokens int

	// RasmMatch, when true, skips the vowel-tolerant equality check
	// (C6) and accepts pure rasm matches.
	RasmMatch bool

	// MinUncommon is the minimum number of non-stopword tokens a chain
	// shorter than SafeLength must contain to survive the common-word
	// filter (C5 Stage C). Zero disables the filter.
	MinUncommon int

	// SafeLength is the chain length at or above which the common-word
	// filter is skipped outright.
	SafeLength int

	// IncludeEllipses enables the ellipsis recogniser (C7).
	IncludeEllipses bool

	// Warn receives diagnostics that spec.md §7 classifies as
	// surfaced-but-non-fatal (currently: the equal-length overlap
	// tie-break). Nil is treated as a no-op, so callers that don't
	// care about diagnostics need not set it.
	Warn func(string)
}

// DefaultOptions returns the parameter defaults of spec.md §6.
func DefaultOptions() Options {
	return Options{
		MinTokens:       5,
		RasmMatch:       false,
		MinUncommon:     0,
		SafeLength:      4,
		IncludeEllipses: true,
	}
}

func (o Options) warn(msg string) {
	if o.Warn != nil {
		o.Warn(msg)
	}
}
