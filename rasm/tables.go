package rasm

// mapping is the fixed archigrapheme (rasm) table of spec.md §6: every
// dotted consonant collapses onto the undotted skeleton it is written
// on. Letters that never carry a final-position exception (qnyFinal)
// are mapped here unconditionally.
var mapping = map[rune]rune{
	'ر': 'R', 'ز': 'R', 'ژ': 'R',
	'د': 'D', 'ذ': 'D', 'ڈ': 'D',
	'و': 'W',
	'ب': 'B',
	'ک': 'K', 'گ': 'K',
	'ل': 'L',
	'ت': 'B', 'ث': 'B', 'پ': 'B',
	'ج': 'G', 'ح': 'G', 'خ': 'G', 'ځ': 'G', 'چ': 'G',
	'س': 'S', 'ش': 'S',
	'ص': 'C', 'ض': 'C',
	'ط': 'T', 'ظ': 'T',
	'ع': 'E', 'غ': 'E',
	'ڡ': 'F', 'ف': 'F',
	'م': 'M',
	'ه': 'H',
	'ق': 'F', // non-final ق; a final ق maps to Q instead, see qnyFinal.
	'ن': 'B', // non-final ن; a final ن maps to N instead, see qnyFinal.
	'ی': 'B', // non-final ی; a final ی maps to Y instead, see qnyFinal.
}

// qnyFinal is the position-sensitive exception of spec.md §4.2: when
// the last grapheme-bearing rune of a word is ق, ن or ی, it maps to
// Q, N or Y instead of the value mapping gives it elsewhere.
var qnyFinal = map[rune]rune{
	'ق': 'Q',
	'ن': 'N',
	'ی': 'Y',
}

// isGrapheme reports whether r carries a rasm mapping at all. Runes
// outside this set (vowels, alif, punctuation, digits) are dropped
// before the archigrapheme is computed.
func isGrapheme(r rune) bool {
	_, ok := mapping[r]
	return ok
}
