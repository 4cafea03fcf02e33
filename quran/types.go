// Package quran builds and serves the static Qur'ān index that package
// tagger searches against: an ordered token stream, a map from
// archigrapheme (rasm) to the token offsets where it occurs, and a
// table of sura titles and epithets.
//
// An Index is built once, from either a line-oriented Qur'ān source
// file (Parse + Build) or a previously dumped JSON index
// (LoadIndexJSON), and is immutable and safe for concurrent reads for
// the remainder of the process.
//
// All functions are safe for concurrent use by multiple goroutines.
package quran

import "fmt"

// Ref addresses a single word in the Qur'ān: sura and verse are
// 1-based, Word is the 1-based position of the word within its verse.
type Ref struct {
	Sura, Verse, Word int
}

// String renders the reference as "sura:verse:word".
func (r Ref) String() string {
	return fmt.Sprintf("%d:%d:%d", r.Sura, r.Verse, r.Word)
}

// Token is a single word of the Qur'ān or of input text: its original
// spelling and its normalised form (package script's output). The
// rasm form is not stored on Token — it is a pure function of
// Normalised and is recomputed on demand by package rasm.
type Token struct {
	Ref        Ref
	Original   string
	Normalised string
}

// SuraRange is the inclusive token-id span [Start, End] of one sura
// within an Index's qtext.
type SuraRange struct {
	Start, End int
}

// Index is the built, read-only Qur'ān structure of spec.md §3:
// qtext, qrasm, and sura_names.
type Index struct {
	qtext     []Token
	qrasm     map[string][]int // rasm -> ascending token ids
	suraNames map[string]SuraRange
}

// Len returns the number of tokens in the Qur'ān index.
func (idx *Index) Len() int { return len(idx.qtext) }

// Token returns the token at offset q. It panics if q is out of range,
// the same contract as a slice index — callers only ever pass offsets
// obtained from the index itself.
func (idx *Index) Token(q int) Token { return idx.qtext[q] }

// Offsets returns the ascending token ids where rasm occurs, or nil
// if rasm does not occur anywhere in the Qur'ān.
func (idx *Index) Offsets(rasm string) []int { return idx.qrasm[rasm] }

// SuraRange returns the token-id span of the sura named or alias
// normalisedName refers to, and whether that name was found.
// normalisedName must already have gone through script.Normalize the
// same way the title table's entries are normalised at build time.
func (idx *Index) SuraRange(normalisedName string) (SuraRange, bool) {
	r, ok := idx.suraNames[normalisedName]
	return r, ok
}
