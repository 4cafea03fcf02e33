package tagger

import "github.com/kabikaj/quran-tagger/quran"

// QuranSpan is one candidate Qur'ān passage a matched text span
// corresponds to. Multiple spans on the same Match occur when more
// than one Qur'ānic passage shares the matched archigrapheme skeleton.
type QuranSpan struct {
	RefStart, RefEnd quran.Ref
	Start, End       int // token offsets into the Index, inclusive
}

// Match is one emitted quotation: the matched span of the input word
// list, and the Qur'ān span(s) it corresponds to.
type Match struct {
	TextStart, TextEnd int // inclusive word offsets into the input
	Spans              []QuranSpan
}

// chainStart is a candidate chain's anchor: where it begins in the
// input text and in the Qur'ān index.
type chainStart struct {
	TextStart int
	QStart    int
}
