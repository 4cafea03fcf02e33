package quran

import (
	"github.com/kabikaj/quran-tagger/rasm"
	"github.com/kabikaj/quran-tagger/script"
)

// Build normalises and rasmises every word in words, in order, and
// assembles the Index of spec.md §3. Token ids are assigned by
// position in words, so words must already be in Qur'ān reading order
// (sura, verse, word ascending) for SuraRange and the ellipsis
// recogniser's end-of-sura/end-of-verse scans to be meaningful.
func Build(words []RawWord) *Index {
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = Token{
			Ref:        w.Ref,
			Original:   w.Original,
			Normalised: script.Normalize(w.Original, true),
		}
	}
	return buildFromTokens(tokens)
}

// buildFromTokens derives qrasm and sura_names from an already
// normalised token stream. Shared by Build (fresh normalisation) and
// LoadIndexJSON (tokens already normalised by a prior Build, dumped to
// disk and reloaded) so rasm and the sura-title table need not be
// re-derived from raw text on every process start.
func buildFromTokens(tokens []Token) *Index {
	idx := &Index{
		qtext:     tokens,
		qrasm:     make(map[string][]int),
		suraNames: make(map[string]SuraRange),
	}
	for i, t := range tokens {
		r := rasm.Encode(t.Normalised)
		idx.qrasm[r] = append(idx.qrasm[r], i)
	}
	idx.indexSuraNames()
	return idx
}

// indexSuraNames seeds sura_names from SuraTitles: every title and
// epithet is normalised and recorded against the token-id span of its
// sura, scanned once in a single forward pass over qtext.
func (idx *Index) indexSuraNames() {
	if len(idx.qtext) == 0 {
		return
	}

	ranges := make(map[int]SuraRange, 114)
	start := 0
	for i := 1; i <= len(idx.qtext); i++ {
		atEnd := i == len(idx.qtext)
		changed := atEnd || idx.qtext[i].Ref.Sura != idx.qtext[start].Ref.Sura
		if changed {
			sura := idx.qtext[start].Ref.Sura
			ranges[sura] = SuraRange{Start: start, End: i - 1}
			start = i
		}
	}

	for name, sura := range SuraTitles {
		r, ok := ranges[sura]
		if !ok {
			continue
		}
		key := script.Normalize(name, true)
		idx.suraNames[key] = r
	}
}
