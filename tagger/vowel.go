package tagger

import (
	"strings"

	"github.com/kabikaj/quran-tagger/script"
)

// equalModuloVowels implements C6 (spec.md §4.6): decide whether
// normalised text surface a (possibly partially vowelled) is
// compatible with normalised Qur'ān surface b (fully vowelled).
//
// Conceptually this builds a pattern from a by inserting, after every
// consonant not already immediately followed by a vowel in a, a slot
// matching zero or more vowel-diacritic runes, then checks whether b
// starts with a string the pattern accepts. Because the slot is
// always followed by either a consonant literal or the end of the
// pattern — never another vowel — greedily consuming every vowel rune
// available in b at that point is always correct, so no backtracking
// search is needed: this is a single linear scan rather than a
// compiled regular expression.
func equalModuloVowels(a, b string) bool {
	ar := []rune(a)
	br := []rune(b)

	ai, bi := 0, 0
	for ai < len(ar) {
		r := ar[ai]
		if bi >= len(br) || br[bi] != r {
			return false
		}
		ai++
		bi++

		if isVowelRune(r) {
			continue
		}
		followedByVowel := ai < len(ar) && isVowelRune(ar[ai])
		if followedByVowel {
			continue
		}
		for bi < len(br) && isVowelRune(br[bi]) {
			bi++
		}
	}
	return true
}

func isVowelRune(r rune) bool {
	return strings.ContainsRune(script.Vowels, r)
}
