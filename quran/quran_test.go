package quran

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kabikaj/quran-tagger/rasm"
	"github.com/kabikaj/quran-tagger/script"
)

func normaliseForTest(s string) string     { return script.Normalize(s, true) }
func normaliseRasmForTest(s string) string { return rasm.Encode(script.Normalize(s, true)) }

const sampleSource = `# sample: opening of sura 1 and a fragment of sura 112
1|1|بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ
1|2|الْحَمْدُ لِلَّهِ رَبِّ الْعَالَمِینَ

112|1|قُلْ هُوَ اللَّهُ أَحَدٌ
112|2|اللَّهُ الصَّمَدُ
`

func buildSample(t *testing.T) *Index {
	t.Helper()
	words, err := Parse(strings.NewReader(sampleSource))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return Build(words)
}

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	words, err := Parse(strings.NewReader(sampleSource))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(words) == 0 {
		t.Fatal("Parse returned no words")
	}
	for _, w := range words {
		if w.Ref.Sura != 1 && w.Ref.Sura != 112 {
			t.Errorf("unexpected sura %d in parsed word %+v", w.Ref.Sura, w)
		}
	}
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, err := Parse(strings.NewReader("not-a-valid-line\n"))
	if err == nil {
		t.Fatal("expected error for malformed line, got nil")
	}
}

func TestBuildAssignsIncreasingTokenIds(t *testing.T) {
	idx := buildSample(t)
	if idx.Len() == 0 {
		t.Fatal("built index has no tokens")
	}
	prev := idx.Token(0).Ref
	for q := 1; q < idx.Len(); q++ {
		cur := idx.Token(q).Ref
		if !(cur.Sura > prev.Sura ||
			(cur.Sura == prev.Sura && cur.Verse > prev.Verse) ||
			(cur.Sura == prev.Sura && cur.Verse == prev.Verse && cur.Word > prev.Word)) {
			t.Fatalf("qref not strictly increasing at token %d: %+v -> %+v", q, prev, cur)
		}
		prev = cur
	}
}

func TestBuildSuraRange(t *testing.T) {
	idx := buildSample(t)
	key := "الفاتحة" // indexSuraNames normalises this the same way at build time
	r, ok := idx.SuraRange(normaliseForTest(key))
	if !ok {
		t.Fatalf("expected sura range for %q to be found", key)
	}
	if idx.Token(r.Start).Ref.Sura != 1 || idx.Token(r.End).Ref.Sura != 1 {
		t.Errorf("sura range %+v does not cover only sura 1", r)
	}
}

func TestIndexJSONRoundTrip(t *testing.T) {
	idx := buildSample(t)

	var buf bytes.Buffer
	if err := idx.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	reloaded, err := LoadIndexJSON(&buf)
	if err != nil {
		t.Fatalf("LoadIndexJSON: %v", err)
	}

	if reloaded.Len() != idx.Len() {
		t.Fatalf("reloaded index has %d tokens, want %d", reloaded.Len(), idx.Len())
	}
	for q := 0; q < idx.Len(); q++ {
		if reloaded.Token(q) != idx.Token(q) {
			t.Errorf("token %d mismatch: got %+v, want %+v", q, reloaded.Token(q), idx.Token(q))
		}
	}
}

func TestLoadStopwordsContains(t *testing.T) {
	sw, err := LoadStopwords(strings.NewReader(`["في", "من", "الذي"]`))
	if err != nil {
		t.Fatalf("LoadStopwords: %v", err)
	}
	if !sw.Contains(normaliseRasmForTest("في")) {
		t.Error("expected stopword set to contain في")
	}
	if sw.Contains(normaliseRasmForTest("بسم")) {
		t.Error("did not expect stopword set to contain بسم")
	}
}

func TestStopwordsContainsNilSafe(t *testing.T) {
	var sw *Stopwords
	if sw.Contains("X") {
		t.Error("nil *Stopwords must report false, not panic")
	}
}
