package script

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name             string
		in               string
		stripConjunction bool
		want             string
	}{
		{"plain consonants pass through", "بسم", true, "بسم"},
		{"leading waw conjunction stripped", "وكتب", true, "کتب"},
		{"leading waw kept when stripConjunction is false", "وكتب", false, "وکتب"},
		{"hamza-bearing alif folds then elides", "أحد", true, "حد"},
		{"ta marbuta folds to ha", "رحمة", true, "رحمه"},
		{"alif maqsura and hamza-on-ya fold to ya", "فئة", false, "فیه"},
		// ف is always treated as a possible proclitic, even on a word
		// (like فئة، "group") where it is not grammatically a conjunction.
		{"leading fa stripped like a conjunction regardless of grammar", "فئة", true, "یه"},
		{"non-canonical runes (digits, punctuation) are dropped", "١٢٣!", true, ""},
		{"empty input", "", true, ""},
		{"single-rune waw is not stripped", "و", true, "و"},
		{"two-rune word beginning with waw is stripped to one rune", "ول", true, "ل"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Normalize(c.in, c.stripConjunction); got != c.want {
				t.Errorf("Normalize(%q, %v) = %q, want %q", c.in, c.stripConjunction, got, c.want)
			}
		})
	}
}

func TestNormalizeIsTotal(t *testing.T) {
	// Normalize must never panic regardless of how malformed the input is.
	inputs := []string{"", " ", "\x00", "123", "!@#", "a", "ابجد"}
	for _, in := range inputs {
		Normalize(in, true)
	}
}

// FuzzNormalize checks invariants that must hold for every input,
// malformed or not: the output never contains alif (step 4 always
// elides it), Normalize never grows its input, and — with
// stripConjunction off, so a second pass has no proclitic left to
// strip — Normalize is idempotent. fold's table has no key that is
// also one of its own values, and clean only ever keeps canonical
// runes, so a second pass over already-normalised text is a no-op.
func FuzzNormalize(f *testing.F) {
	f.Add("بسم")
	f.Add("وكتب")
	f.Add("ووكتب")
	f.Add("أحد")
	f.Add("رحمة")
	f.Add("فئة")
	f.Add("١٢٣!")
	f.Add("")
	f.Add(" ")
	f.Add("\xff\xfe")
	f.Add("\x00")
	f.Add("ابجد")
	f.Add("بِسْمِ اللَّهِ")

	f.Fuzz(func(t *testing.T, s string) {
		result := Normalize(s, false)

		if strings.Contains(result, alif) {
			t.Errorf("Normalize(%q, false) = %q still contains alif", s, result)
		}
		if len([]rune(result)) > len([]rune(s)) {
			t.Errorf("Normalize(%q, false) = %q grew longer than its input", s, result)
		}
		if second := Normalize(result, false); second != result {
			t.Errorf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", s, result, second)
		}
	})
}
