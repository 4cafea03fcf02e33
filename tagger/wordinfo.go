package tagger

import (
	"github.com/kabikaj/quran-tagger/rasm"
	"github.com/kabikaj/quran-tagger/script"
)

// wordInfo carries the three representations spec.md §3 attaches to
// every token: its original spelling, its normalised form, and its
// rasm.
type wordInfo struct {
	Original   string
	Normalised string
	Rasm       string
}

// buildWordInfos normalises and rasmises every word in words, in
// order. The conjunction-stripping default matches the one used when
// the Qur'ān index itself was built (package quran's Build), so input
// text and Qur'ān text are comparable on equal footing.
func buildWordInfos(words []string) []wordInfo {
	out := make([]wordInfo, len(words))
	for i, w := range words {
		norm := script.Normalize(w, true)
		out[i] = wordInfo{
			Original:   w,
			Normalised: norm,
			Rasm:       rasm.Encode(norm),
		}
	}
	return out
}
