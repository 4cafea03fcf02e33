// Package rasm computes the archigraphemic (rasm, "consonant skeleton")
// representation of normalised Arabic-scripted text.
//
// Arabic letterforms that share an undotted skeleton — for example ب
// ت ث, all written on the same tooth-shape and distinguished only by
// the placement of dots above or below it — collapse onto a single
// symbol. Two words whose rasm agree are therefore candidates for
// being the same word copied with or without dotting, a common source
// of variation between manuscript and print editions of a quotation.
//
// Encode expects its input to already be normalised (see package
// script); it does not fold letterforms or strip diacritics itself,
// though any vowel or punctuation rune still present is simply
// dropped rather than mapped.
//
// All functions are safe for concurrent use by multiple goroutines.
package rasm

// Encode returns the archigrapheme of normalised, a string over the
// fixed alphabet {B G S C T E F R D K M H W L Q N Y}.
//
// Every rune outside the rasm mapping table (vowels, alif, punctuation,
// digits) is dropped first. The last remaining rune is then checked
// against the position-sensitive QNY rule: a final ق, ن or ی encodes
// as Q, N or Y rather than the value it would take elsewhere in the
// word. Every other remaining rune is mapped unconditionally.
func Encode(normalised string) string {
	graphemes := make([]rune, 0, len(normalised))
	for _, r := range normalised {
		if isGrapheme(r) {
			graphemes = append(graphemes, r)
		}
	}
	if len(graphemes) == 0 {
		return ""
	}

	out := make([]rune, len(graphemes))
	last := len(graphemes) - 1
	for i, r := range graphemes {
		if i == last {
			if sym, ok := qnyFinal[r]; ok {
				out[i] = sym
				continue
			}
		}
		out[i] = mapping[r]
	}
	return string(out)
}
