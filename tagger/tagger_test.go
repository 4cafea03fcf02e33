package tagger

import (
	"strings"
	"testing"

	"github.com/kabikaj/quran-tagger/quran"
)

const sampleSource = `# Fatiha opening and all of al-Ikhlas, unvowelled for test readability
1|1|بسم الله الرحمن الرحيم
1|2|الحمد لله رب العالمين
112|1|قل هو الله أحد
112|2|الله الصمد
112|3|لم يلد ولم يولد
112|4|ولم يكن له كفوا أحد
`

func buildSampleIndex(t *testing.T) *quran.Index {
	t.Helper()
	words, err := quran.Parse(strings.NewReader(sampleSource))
	if err != nil {
		t.Fatalf("quran.Parse: %v", err)
	}
	return quran.Build(words)
}

func collect(seq func(func(Match, error) bool)) ([]Match, error) {
	var matches []Match
	var firstErr error
	for m, err := range seq {
		if err != nil {
			firstErr = err
			continue
		}
		matches = append(matches, m)
	}
	return matches, firstErr
}

func TestTagRejectsNonPositiveMinTokens(t *testing.T) {
	idx := buildSampleIndex(t)
	opt := DefaultOptions()
	opt.MinTokens = 0

	matches, err := collect(Tag([]string{"قل"}, idx, nil, opt))
	if err != ErrNonPositiveMinTokens {
		t.Fatalf("got err %v, want ErrNonPositiveMinTokens", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no matches alongside the error, got %v", matches)
	}
}

func TestTagExactQuotation(t *testing.T) {
	idx := buildSampleIndex(t)
	opt := DefaultOptions()
	opt.MinTokens = 4
	opt.IncludeEllipses = false

	matches, err := collect(Tag([]string{"قل", "هو", "الله", "أحد"}, idx, nil, opt))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(matches), matches)
	}

	m := matches[0]
	if m.TextStart != 0 || m.TextEnd != 3 {
		t.Errorf("got text span [%d,%d], want [0,3]", m.TextStart, m.TextEnd)
	}
	if len(m.Spans) != 1 {
		t.Fatalf("got %d spans, want 1: %+v", len(m.Spans), m.Spans)
	}
	span := m.Spans[0]
	if span.RefStart != (quran.Ref{Sura: 112, Verse: 1, Word: 1}) {
		t.Errorf("got RefStart %+v, want 112:1:1", span.RefStart)
	}
	if span.RefEnd != (quran.Ref{Sura: 112, Verse: 1, Word: 4}) {
		t.Errorf("got RefEnd %+v, want 112:1:4", span.RefEnd)
	}
}

func TestTagEllipsisEndOfSura(t *testing.T) {
	idx := buildSampleIndex(t)
	opt := DefaultOptions()
	opt.MinTokens = 4

	matches, err := collect(Tag([]string{"قل", "هو", "الله", "أحد", "الخ"}, idx, nil, opt))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(matches), matches)
	}

	m := matches[0]
	if m.TextEnd != 4 {
		t.Errorf("got TextEnd %d, want 4 (الخ consumed)", m.TextEnd)
	}
	if len(m.Spans) != 1 {
		t.Fatalf("got %d spans, want 1: %+v", len(m.Spans), m.Spans)
	}
	span := m.Spans[0]
	if span.RefStart != (quran.Ref{Sura: 112, Verse: 1, Word: 1}) {
		t.Errorf("got RefStart %+v, want 112:1:1", span.RefStart)
	}
	if span.RefEnd != (quran.Ref{Sura: 112, Verse: 4, Word: 5}) {
		t.Errorf("got RefEnd %+v, want 112:4:5 (end of sura)", span.RefEnd)
	}
}

func TestTagEllipsisContinuation(t *testing.T) {
	idx := buildSampleIndex(t)
	opt := DefaultOptions()
	opt.MinTokens = 3

	matches, err := collect(Tag([]string{"قل", "هو", "الله", "قال", "أحد"}, idx, nil, opt))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(matches), matches)
	}

	m := matches[0]
	if m.TextEnd != 4 {
		t.Errorf("got TextEnd %d, want 4 (continuation resumed through أحد)", m.TextEnd)
	}
	span := m.Spans[0]
	if span.RefEnd != (quran.Ref{Sura: 112, Verse: 1, Word: 4}) {
		t.Errorf("got RefEnd %+v, want 112:1:4", span.RefEnd)
	}
}

// al-Layl (92) verses 5-10, unvowelled: verse 7 and verse 10 share
// every word but the last ("فسنيسره لليسرى" vs "فسنيسره للعسرى"), which
// is exactly what makes a literal next-token search insufficient for
// "ila qawlihi" — the real continuation is three verses further on.
const laylSource = `92|5|فأما من أعطى واتقى
92|6|وصدق بالحسنى
92|7|فسنيسره لليسرى
92|8|وأما من بخل واستغنى
92|9|وكذب بالحسنى
92|10|فسنيسره للعسرى
`

func buildLaylIndex(t *testing.T) *quran.Index {
	t.Helper()
	words, err := quran.Parse(strings.NewReader(laylSource))
	if err != nil {
		t.Fatalf("quran.Parse: %v", err)
	}
	return quran.Build(words)
}

// TestTagEllipsisContinuationCrossVerseJump mirrors spec.md §8
// scenario 5: "ila qawlihi" whose continuation is not the verse
// immediately following the formula but four verses further into the
// sura, so the window-bounded/nested continuation search must run
// rather than the old literal-next-token extension.
func TestTagEllipsisContinuationCrossVerseJump(t *testing.T) {
	idx := buildLaylIndex(t)
	opt := DefaultOptions()
	opt.MinTokens = 4

	words := strings.Fields("فأما من أعطى واتقى إلى قوله فسنيسره للعسرى")
	matches, err := collect(Tag(words, idx, nil, opt))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(matches), matches)
	}

	m := matches[0]
	if m.TextStart != 0 || m.TextEnd != len(words)-1 {
		t.Errorf("got text span [%d,%d], want [0,%d] (whole input consumed)", m.TextStart, m.TextEnd, len(words)-1)
	}
	if len(m.Spans) != 1 {
		t.Fatalf("got %d spans, want 1: %+v", len(m.Spans), m.Spans)
	}
	span := m.Spans[0]
	if span.RefStart != (quran.Ref{Sura: 92, Verse: 5, Word: 1}) {
		t.Errorf("got RefStart %+v, want 92:5:1", span.RefStart)
	}
	if span.RefEnd != (quran.Ref{Sura: 92, Verse: 10, Word: 2}) {
		t.Errorf("got RefEnd %+v, want 92:10:2 (للعسرى, not verse 7's لليسرى)", span.RefEnd)
	}
}

// TestTagRasmMatchOption exercises C6 directly against a minimal
// synthetic index: زب and رب share a rasm (both letters fold to R at
// the general mapping, B for ب) but are literally different
// consonants, so C6 must reject the pairing unless RasmMatch bypasses
// it.
func TestTagRasmMatchOption(t *testing.T) {
	idx := quran.Build([]quran.RawWord{
		{Ref: quran.Ref{Sura: 1, Verse: 1, Word: 1}, Original: "رب"},
	})

	base := DefaultOptions()
	base.MinTokens = 1
	base.IncludeEllipses = false

	t.Run("vowel-tolerant rejects consonant mismatch", func(t *testing.T) {
		matches, err := collect(Tag([]string{"زب"}, idx, nil, base))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 0 {
			t.Fatalf("got %d matches, want 0: %+v", len(matches), matches)
		}
	})

	t.Run("RasmMatch accepts it", func(t *testing.T) {
		opt := base
		opt.RasmMatch = true
		matches, err := collect(Tag([]string{"زب"}, idx, nil, opt))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 1 {
			t.Fatalf("got %d matches, want 1: %+v", len(matches), matches)
		}
	})
}

func TestTagCommonWordFilter(t *testing.T) {
	idx := quran.Build([]quran.RawWord{
		{Ref: quran.Ref{Sura: 1, Verse: 1, Word: 1}, Original: "في"},
		{Ref: quran.Ref{Sura: 1, Verse: 1, Word: 2}, Original: "من"},
		{Ref: quran.Ref{Sura: 1, Verse: 2, Word: 1}, Original: "قل"},
		{Ref: quran.Ref{Sura: 1, Verse: 2, Word: 2}, Original: "هو"},
	})
	sw, err := quran.LoadStopwords(strings.NewReader(`["في", "من"]`))
	if err != nil {
		t.Fatalf("LoadStopwords: %v", err)
	}

	opt := DefaultOptions()
	opt.MinTokens = 2
	opt.SafeLength = 4
	opt.MinUncommon = 1
	opt.IncludeEllipses = false

	t.Run("all-stopword chain dropped", func(t *testing.T) {
		matches, err := collect(Tag([]string{"في", "من"}, idx, sw, opt))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 0 {
			t.Fatalf("got %d matches, want 0 (all-stopword short chain): %+v", len(matches), matches)
		}
	})

	t.Run("chain with an uncommon word survives", func(t *testing.T) {
		matches, err := collect(Tag([]string{"قل", "هو"}, idx, sw, opt))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 1 {
			t.Fatalf("got %d matches, want 1: %+v", len(matches), matches)
		}
	})
}

func TestTagEmptyInput(t *testing.T) {
	idx := buildSampleIndex(t)
	matches, err := collect(Tag(nil, idx, nil, DefaultOptions()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("got %d matches for empty input, want 0", len(matches))
	}
}

func TestEqualModuloVowelsAcceptsMissingVowels(t *testing.T) {
	if !equalModuloVowels("بسم", "بِسمِ") {
		t.Error("unvowelled surface should be accepted against a vowelled one")
	}
}

func TestEqualModuloVowelsRejectsConsonantMismatch(t *testing.T) {
	if equalModuloVowels("بس", "بت") {
		t.Error("differing consonants must not be accepted regardless of vowelling")
	}
}

func TestCheckEllipsisTailMarkerEndOfVerse(t *testing.T) {
	tokens := buildWordInfos([]string{"الآية"})
	got := checkEllipsis(tokens, 0)
	if got.kind != ellipsisEndOfVerse || got.consumed != 1 {
		t.Errorf("got %+v, want {ellipsisEndOfVerse 1}", got)
	}
}

func TestCheckEllipsisTailMarkerEndOfSura(t *testing.T) {
	tokens := buildWordInfos([]string{"السورة", "كلها"})
	got := checkEllipsis(tokens, 0)
	if got.kind != ellipsisEndOfSura || got.consumed != 2 {
		t.Errorf("got %+v, want {ellipsisEndOfSura 2}", got)
	}
}

func TestCheckEllipsisEndNounToEndOfSura(t *testing.T) {
	tokens := buildWordInfos([]string{"إلى", "آخر", "السورة"})
	got := checkEllipsis(tokens, 0)
	if got.kind != ellipsisEndOfSura || got.consumed != 3 {
		t.Errorf("got %+v, want {ellipsisEndOfSura 3}", got)
	}
}

func TestCheckEllipsisBareAkhirIsNotEllipsis(t *testing.T) {
	tokens := buildWordInfos([]string{"إلى", "آخر"})
	got := checkEllipsis(tokens, 0)
	if got.kind != noEllipsis {
		t.Errorf("got %+v, want noEllipsis (no clarifying noun)", got)
	}
}

func TestCheckEllipsisSpeechVerbWithEpithet(t *testing.T) {
	tokens := buildWordInfos([]string{"قال", "تعالى", "بسم"})
	got := checkEllipsis(tokens, 0)
	if got.kind != ellipsisContinuation || got.consumed != 2 {
		t.Errorf("got %+v, want {ellipsisContinuation 2}", got)
	}
}

func TestCheckEllipsisAbbreviation(t *testing.T) {
	tokens := buildWordInfos([]string{"الخ"})
	got := checkEllipsis(tokens, 0)
	if got.kind != ellipsisEndOfSura || got.consumed != 1 {
		t.Errorf("got %+v, want {ellipsisEndOfSura 1}", got)
	}
}

func TestRemoveOverlapsKeepsStrictlyLonger(t *testing.T) {
	endOfChains := map[int]map[int][]chainStart{
		4: {3: {{TextStart: 2, QStart: 100}}}, // span [2,4], length 3
		5: {5: {{TextStart: 1, QStart: 200}}}, // span [1,5], length 5, overlaps and is longer
	}
	filtered := keepLongestPerEndpoint(endOfChains)
	kept := removeOverlaps(filtered, nil)

	if len(kept) != 1 {
		t.Fatalf("got %d surviving endpoints, want 1: %+v", len(kept), kept)
	}
	if _, ok := kept[5]; !ok {
		t.Errorf("expected the longer chain (endpoint 5) to survive, got %+v", kept)
	}
}

func TestRemoveOverlapsKeepsNonOverlapping(t *testing.T) {
	endOfChains := map[int]map[int][]chainStart{
		2: {3: {{TextStart: 0, QStart: 10}}},
		7: {3: {{TextStart: 5, QStart: 20}}},
	}
	filtered := keepLongestPerEndpoint(endOfChains)
	kept := removeOverlaps(filtered, nil)

	if len(kept) != 2 {
		t.Fatalf("got %d surviving endpoints, want 2 (disjoint spans): %+v", len(kept), kept)
	}
}
