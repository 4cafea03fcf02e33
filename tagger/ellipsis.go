package tagger

import (
	"strings"

	"github.com/kabikaj/quran-tagger/rasm"
	"github.com/kabikaj/quran-tagger/script"
)

// ellipsisKind classifies a recognised abbreviating formula by the
// kind of expansion it calls for, rather than by the formula's own
// wording — tagger.go only ever needs to know which of the three
// expansion strategies to run.
type ellipsisKind int

const (
	noEllipsis ellipsisKind = iota
	ellipsisEndOfSura
	ellipsisEndOfVerse
	ellipsisContinuation
)

// ellipsisResult is the outcome of checkEllipsis: whether a formula
// was recognised, what it calls for, and how many trailing text
// tokens it occupies.
type ellipsisResult struct {
	kind     ellipsisKind
	consumed int
}

func formulaRasm(word string) string {
	return rasm.Encode(script.Normalize(word, true))
}

// rasmSet returns the rasm forms of words and of each word with a
// waw prefixed (وتعالى, وذكره, …), the conjunction-like variants the
// formulae in spec.md §4.7 allow at several points.
func rasmSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words)*2)
	for _, w := range words {
		m[formulaRasm(w)] = true
		m[formulaRasm("و"+w)] = true
	}
	return m
}

var (
	rIla     = formulaRasm("إلى")
	rHatta   = formulaRasm("حتى")
	rAn      = formulaRasm("أن")
	rIdha    = formulaRasm("إذا")
	rAla     = formulaRasm("على")
	rQawl    = formulaRasm("قوله") // prefix-matched: قولهما، قولها، … share it.
	rTacala  = formulaRasm("تعالى")
	rAkhir   = formulaRasm("آخر")    // mudaf: never takes the article.
	rAkhirha = formulaRasm("آخرها")
	rTamam   = formulaRasm("تمام")   // mudaf: never takes the article.
	rKhatima = formulaRasm("خاتمة")  // mudaf: never takes the article.
	rTamamha = formulaRasm("تمامها")
	rKhatmha = formulaRasm("خاتمتها")
	rAya     = formulaRasm("الآية")
	rAyat    = formulaRasm("الآيات")
	rAyatayn = formulaRasm("الآيتين")
	rSura    = formulaRasm("السورة")
	rKullaha = formulaRasm("كلها")
	rMin     = formulaRasm("من")
	rMinha   = formulaRasm("منها")
	rAlkha   = formulaRasm("الخ")

	endVerbsSura   = rasmSet("ختم", "ختمت", "تختم", "انقضت", "تنقضي", "أتم")
	endVerbsFinish = rasmSet("فرغ", "فرغت", "يفرغ")
	reachVerbsIla  = rasmSet("انتهى", "انتهت", "بلغ", "بلغت")
	reachVerbsAla  = rasmSet("أتى", "أتيت", "يأتي")
	speechVerbs    = rasmSet("قال", "قالت", "قلت", "قرأ", "قرأت")
	godEpithets    = rasmSet("تعالى", "سبحانه", "عز", "جل", "تبارك", "الله")
	godAttributes  = rasmSet("ذكره", "شأنه", "اسمه")
)

// ellipsisMatchers is consulted in order; the first match wins. The
// relative order reflects spec.md §4.7's numbering and does not
// affect correctness since the families are mutually exclusive on
// their first one or two tokens (tail marker vs. إلى/حتى vs.
// reach-verb vs. speech-verb vs. الخ on the first; end-noun vs.
// end-verb vs. قول… on the token after إلى/حتى).
var ellipsisMatchers = []func(tokens []wordInfo, i int) (ellipsisResult, bool){
	matchTailMarker,
	matchEndNoun,
	matchEndVerb,
	matchReachVerb,
	matchSpeechVerb,
	matchQawl,
	matchAlkha,
}

// checkEllipsis implements C7 (spec.md §4.7): inspect the tokens
// starting at i (the position immediately after a surviving match's
// end) for one of the recognised abbreviating formulae.
func checkEllipsis(tokens []wordInfo, i int) ellipsisResult {
	if i < 0 || i >= len(tokens) {
		return ellipsisResult{}
	}
	for _, match := range ellipsisMatchers {
		if r, ok := match(tokens, i); ok {
			return r
		}
	}
	return ellipsisResult{}
}

// matchTailMarker recognises family 1: a bare الآية/الآيات/الآيتين/
// السورة, optionally followed by كلها.
func matchTailMarker(tokens []wordInfo, i int) (ellipsisResult, bool) {
	var kind ellipsisKind
	switch tokens[i].Rasm {
	case rAya, rAyat, rAyatayn:
		kind = ellipsisEndOfVerse
	case rSura:
		kind = ellipsisEndOfSura
	default:
		return ellipsisResult{}, false
	}
	consumed := 1
	if i+1 < len(tokens) && tokens[i+1].Rasm == rKullaha {
		consumed = 2
	}
	return ellipsisResult{kind: kind, consumed: consumed}, true
}

// matchEndNoun recognises family 2: إلى|حتى then آخر/تمام/خاتمة (or
// their -ha possessive forms), optionally clarified by السورة/الآية
// (كلها) — a bare "ila akhir" with no clarifying noun is not treated
// as an ellipsis, matching the source's fall-through behaviour.
func matchEndNoun(tokens []wordInfo, i int) (ellipsisResult, bool) {
	n := len(tokens)
	if tokens[i].Rasm != rIla && tokens[i].Rasm != rHatta {
		return ellipsisResult{}, false
	}
	if i+1 >= n {
		return ellipsisResult{}, false
	}

	switch tokens[i+1].Rasm {
	case rAkhirha, rTamamha, rKhatmha:
		return ellipsisResult{kind: ellipsisEndOfSura, consumed: 2}, true
	case rAkhir, rTamam, rKhatima:
		if i+2 >= n {
			return ellipsisResult{}, false
		}
		consumed := 3
		var kind ellipsisKind
		switch tokens[i+2].Rasm {
		case rSura:
			kind = ellipsisEndOfSura
		case rAya:
			kind = ellipsisEndOfVerse
		default:
			return ellipsisResult{}, false
		}
		if i+3 < n && tokens[i+3].Rasm == rKullaha {
			consumed = 4
		}
		return ellipsisResult{kind: kind, consumed: consumed}, true
	default:
		return ellipsisResult{}, false
	}
}

// matchEndVerb recognises family 3: إلى|حتى [أن] [إذا] then a
// completion verb, optionally followed by من (الآية|السورة) or منها.
func matchEndVerb(tokens []wordInfo, i int) (ellipsisResult, bool) {
	n := len(tokens)
	if tokens[i].Rasm != rIla && tokens[i].Rasm != rHatta {
		return ellipsisResult{}, false
	}

	j := i + 1
	if j < n && tokens[j].Rasm == rAn {
		j++
	}
	if j < n && tokens[j].Rasm == rIdha {
		j++
	}
	if j >= n {
		return ellipsisResult{}, false
	}

	var kind ellipsisKind
	switch {
	case endVerbsSura[tokens[j].Rasm]:
		kind = ellipsisEndOfSura
	case endVerbsFinish[tokens[j].Rasm]:
		kind = ellipsisEndOfSura
	default:
		return ellipsisResult{}, false
	}
	j++
	consumed := j - i

	if j < n {
		switch {
		case tokens[j].Rasm == rMinha:
			consumed = j - i + 1
		case tokens[j].Rasm == rMin && j+1 < n:
			switch tokens[j+1].Rasm {
			case rAya:
				kind = ellipsisEndOfVerse
				consumed = j - i + 2
			case rSura:
				kind = ellipsisEndOfSura
				consumed = j - i + 2
			}
		}
	}
	return ellipsisResult{kind: kind, consumed: consumed}, true
}

// matchReachVerb recognises family 4: انتهى/انتهت/بلغ/بلغت followed
// by إلى, or أتى/أتيت/يأتي followed by على, optionally trailing
// الآية. Unlike families 2 and 3 this does not require a leading
// إلى/حتى of its own — the verb's own preposition carries the sense.
func matchReachVerb(tokens []wordInfo, i int) (ellipsisResult, bool) {
	n := len(tokens)
	var consumed int
	switch {
	case reachVerbsIla[tokens[i].Rasm]:
		if i+1 >= n || tokens[i+1].Rasm != rIla {
			return ellipsisResult{}, false
		}
		consumed = 2
	case reachVerbsAla[tokens[i].Rasm]:
		if i+1 >= n || tokens[i+1].Rasm != rAla {
			return ellipsisResult{}, false
		}
		consumed = 2
	default:
		return ellipsisResult{}, false
	}
	if i+consumed < n && tokens[i+consumed].Rasm == rAya {
		consumed++
	}
	return ellipsisResult{kind: ellipsisContinuation, consumed: consumed}, true
}

// matchSpeechVerb recognises family 5: قال/قالت/قلت/قرأ/قرأت,
// optionally followed by a run of divine epithets and their
// waw-prefixed or attribute forms.
func matchSpeechVerb(tokens []wordInfo, i int) (ellipsisResult, bool) {
	if !speechVerbs[tokens[i].Rasm] {
		return ellipsisResult{}, false
	}
	consumed := 1
	n := len(tokens)
	for i+consumed < n {
		r := tokens[i+consumed].Rasm
		if godEpithets[r] || godAttributes[r] {
			consumed++
			continue
		}
		break
	}
	return ellipsisResult{kind: ellipsisContinuation, consumed: consumed}, true
}

// matchQawl recognises family 6: إلى|حتى قول(ه...) [تعالى] [epithets].
func matchQawl(tokens []wordInfo, i int) (ellipsisResult, bool) {
	n := len(tokens)
	if tokens[i].Rasm != rIla && tokens[i].Rasm != rHatta {
		return ellipsisResult{}, false
	}
	if i+1 >= n || !strings.HasPrefix(tokens[i+1].Rasm, rQawl) {
		return ellipsisResult{}, false
	}
	consumed := 2
	if i+consumed < n && tokens[i+consumed].Rasm == rTacala {
		consumed++
	}
	for i+consumed < n {
		r := tokens[i+consumed].Rasm
		if godEpithets[r] || godAttributes[r] {
			consumed++
			continue
		}
		break
	}
	return ellipsisResult{kind: ellipsisContinuation, consumed: consumed}, true
}

// matchAlkha recognises family 7: the bare abbreviation الخ.
func matchAlkha(tokens []wordInfo, i int) (ellipsisResult, bool) {
	if tokens[i].Rasm != rAlkha {
		return ellipsisResult{}, false
	}
	return ellipsisResult{kind: ellipsisEndOfSura, consumed: 1}, true
}
