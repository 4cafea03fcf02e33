package data

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/kabikaj/quran-tagger/quran"
)

var (
	sampleOnce  sync.Once
	sampleIndex *quran.Index
	sampleErr   error
)

// SampleIndex parses and builds the embedded Qur'an fragment into an
// Index, memoising the result: every caller in a process shares the
// same built index rather than re-parsing the embedded text.
func SampleIndex() (*quran.Index, error) {
	sampleOnce.Do(func() {
		words, err := quran.Parse(bytes.NewReader(QuranSample))
		if err != nil {
			sampleErr = fmt.Errorf("data: parsing embedded sample: %w", err)
			return
		}
		sampleIndex = quran.Build(words)
	})
	return sampleIndex, sampleErr
}

// SampleStopwords parses the embedded sample stopword list. Unlike
// SampleIndex it is not memoised: Stopwords is immutable after
// construction and cheap enough to build per call, and callers that
// want to share one instance can do so themselves.
func SampleStopwords() (*quran.Stopwords, error) {
	return quran.LoadStopwords(bytes.NewReader(Stopwords))
}
