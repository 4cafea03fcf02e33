// Package script normalises Arabic-scripted text to a canonical alphabet.
//
// Normalisation folds dotless/variant letterforms to a single canonical
// representative, strips everything outside the canonical alphabet
// (diacritics, punctuation, digits), optionally drops a leading waw/fa
// conjunction, and finally elides every alif. The result is deterministic
// and total: every input string, however malformed, produces an output
// string (possibly empty).
//
// Normalize is the single entry point; the fold table and the canonical
// alphabet are fixed and documented in tables.go so that another
// implementation can reproduce them exactly.
//
// All functions are safe for concurrent use by multiple goroutines.
package script

import "strings"

// Normalize folds s to the canonical alphabet (letters and vowel
// diacritics; see package rasm for the archigrapheme step).
//
// When stripConjunction is true (the default for quotation matching) and
// the folded, cleaned string is longer than one rune and begins with و or
// ف, that leading letter is dropped before alif elision — it is usually a
// proclitic conjunction rather than part of the lemma.
func Normalize(s string, stripConjunction bool) string {
	folded := fold(s)
	cleaned := clean(folded)
	if stripConjunction {
		cleaned = stripLeadingConjunction(cleaned)
	}
	return elideAlif(cleaned)
}

// fold applies the character-fold table, writing into a fresh builder in a
// single forward scan. Runes absent from foldTable pass through unchanged.
func fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := foldTable[r]; ok {
			b.WriteRune(repl)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// clean deletes every rune that is not part of the canonical alphabet
// (the rasm letters plus the vowel diacritics and alif).
func clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isCanonical(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripLeadingConjunction drops a single leading و or ف when the
// remaining string would still be at least two runes long.
func stripLeadingConjunction(s string) string {
	runes := []rune(s)
	if len(runes) > 1 && (runes[0] == 'و' || runes[0] == 'ف') {
		return string(runes[1:])
	}
	return s
}

// elideAlif deletes every alif (ا) in s. Classical orthography varies
// wildly in whether alif is written between skeletons, so its presence
// or absence is treated as noise rather than signal.
func elideAlif(s string) string {
	return strings.ReplaceAll(s, alif, "")
}
