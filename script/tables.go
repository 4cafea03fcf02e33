package script

// alif is kept canonical through fold/clean so that the hamza-bearing
// variants explicitly fold onto it before being elided as a final step
// (see SPEC_FULL.md §9, Open Question (a)).
const alif = "ا"

// foldTable is the fixed character-fold table of spec.md §6. Every key
// is a dotless/variant letterform; every value is its canonical
// representative. Implementations must reproduce this table exactly.
var foldTable = map[rune]rune{
	// tāʾ marbūṭa and hāʾ variants fold to hāʾ.
	'ة': 'ه',
	'ہ': 'ه',
	'ھ': 'ه',
	'ﻫ': 'ه',

	// hamza-bearing alifs fold to the bare alif (then elided in step 4).
	'إ': 'ا',
	'أ': 'ا',
	'آ': 'ا',
	'ٱ': 'ا',

	// hamza on wāw folds to wāw.
	'ؤ': 'و',

	// yāʾ variants (including alif maqṣūra and hamza on yāʾ) fold to yāʾ.
	'ٮ': 'ی',
	'ى': 'ی',
	'ي': 'ی',
	'ئ': 'ی',

	// kāf: the Arabic kāf letter folds to the tail-less Farsi-style kāf.
	'ك': 'ک',

	// nūn variants.
	'ں': 'ن',
	'ۨ': 'ن',

	// presentation-form initials fold to their canonical letters.
	'ﺑ': 'ب',
	'ﮐ': 'ک',
	'ﻟ': 'ل',
}

// canonicalAlphabet is the set of runes clean() keeps: the rasm-bearing
// consonants, the six vowel diacritics, and alif (kept only so that the
// fold-then-delete convention of step 4 has something to delete).
var canonicalAlphabet = map[rune]bool{
	'ر': true, 'ز': true, 'ژ': true,
	'د': true, 'ذ': true, 'ڈ': true,
	'و': true,
	'ب': true,
	'ک': true, 'گ': true,
	'ل': true,
	'ت': true, 'ث': true, 'پ': true,
	'ج': true, 'ح': true, 'خ': true, 'ځ': true, 'چ': true,
	'س': true, 'ش': true,
	'ص': true, 'ض': true,
	'ط': true, 'ظ': true,
	'ع': true, 'غ': true,
	'ڡ': true, 'ف': true,
	'م': true,
	'ه': true,
	'ق': true,
	'ن': true,
	'ی': true,

	// vowel diacritics (fatḥa, ḍamma, kasra and their tanwīn forms).
	'ً': true, 'ٌ': true, 'ٍ': true,
	'َ': true, 'ُ': true, 'ِ': true,

	// alif: canonical only transiently, see package comment.
	'ا': true,
}

// isCanonical reports whether r belongs to the canonical alphabet.
func isCanonical(r rune) bool {
	return canonicalAlphabet[r]
}

// Vowels is the fixed set of vowel diacritics recognised by this
// package and by the vowel-tolerant equality check in package tagger.
const Vowels = "ًٌٍَُِ"
