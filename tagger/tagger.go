// Package tagger implements the Qur'ān quotation matcher: given a
// stream of Arabic words and a built Qur'ān index, it reports the
// spans of input text that quote or paraphrase the Qur'ān, tolerating
// missing vowelling and a handful of conventional ellipsis formulae.
package tagger

import (
	"iter"
	"sort"

	"github.com/kabikaj/quran-tagger/quran"
)

// Tag runs the matcher over words and lazily yields one Match per
// surviving, non-overlapping quotation, in increasing text-start
// order, with each Match's Spans in increasing Qur'ān-offset order.
//
// If opt.MinTokens <= 0, the sequence yields exactly one pair,
// (Match{}, ErrNonPositiveMinTokens), and nothing else — the only
// domain error this package defines.
func Tag(words []string, idx *quran.Index, sw *quran.Stopwords, opt Options) iter.Seq2[Match, error] {
	return func(yield func(Match, error) bool) {
		if opt.MinTokens <= 0 {
			yield(Match{}, ErrNonPositiveMinTokens)
			return
		}

		tokens := buildWordInfos(words)
		n := len(tokens)
		if n == 0 {
			return
		}

		endOfChains, ellipsisOf := searchChains(tokens, idx, opt.MinTokens)
		filtered := keepLongestPerEndpoint(endOfChains)
		filtered = removeOverlaps(filtered, opt.warn)
		filtered = filterCommon(filtered, tokens, sw, opt.MinUncommon, opt.SafeLength)

		ends := make([]int, 0, len(filtered))
		for e := range filtered {
			ends = append(ends, e)
		}
		sort.Ints(ends)

		// Matches are built in full, in text-start order, before any
		// ellipsis expansion runs: the continuation family (below)
		// needs to see every surviving match, including ones ending
		// later in the text than the one currently being expanded, to
		// look for a resumed quotation nearby.
		matches := make([]Match, 0, len(ends))
		pending := make([]ellipsisResult, 0, len(ends))
		for _, end := range ends {
			group := filtered[end]
			m, ok := buildMatch(tokens, idx, group, end, opt)
			if !ok {
				continue
			}
			var er ellipsisResult
			if opt.IncludeEllipses {
				er = ellipsisOf[end+1]
			}
			matches = append(matches, m)
			pending = append(pending, er)
		}

		if opt.IncludeEllipses {
			for i := range matches {
				if pending[i].kind == noEllipsis {
					continue
				}
				expandEllipsis(&matches[i], tokens, idx, matches, i, pending[i], opt)
			}
		}

		// A match that starts inside text an earlier match already
		// covers (a continuation merged into it by ellipsis expansion,
		// or one lying between the formula and that continuation) is not
		// emitted again.
		lastEnd := -1
		for i := range matches {
			if matches[i].TextStart <= lastEnd {
				continue
			}
			lastEnd = matches[i].TextEnd
			if !yield(matches[i], nil) {
				return
			}
		}
	}
}

// buildMatch turns one endpoint's surviving chain-starts into a Match,
// applying C6 (spec.md §4.6) per candidate unless RasmMatch bypasses
// it. A candidate that fails the vowel-tolerant check is dropped; if
// every candidate at this endpoint fails, the whole match is dropped.
func buildMatch(tokens []wordInfo, idx *quran.Index, group []chainStart, end int, opt Options) (Match, bool) {
	start := group[0].TextStart
	length := end - start + 1

	spans := make([]QuranSpan, 0, len(group))
	for _, cs := range group {
		if !opt.RasmMatch && !chainEqualModuloVowels(tokens, idx, cs.TextStart, cs.QStart, length) {
			continue
		}
		qEnd := cs.QStart + length - 1
		spans = append(spans, QuranSpan{
			RefStart: idx.Token(cs.QStart).Ref,
			RefEnd:   idx.Token(qEnd).Ref,
			Start:    cs.QStart,
			End:      qEnd,
		})
	}
	if len(spans) == 0 {
		return Match{}, false
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	return Match{TextStart: start, TextEnd: end, Spans: spans}, true
}

// chainEqualModuloVowels applies C6 word-by-word across a chain: the
// chain as a whole is accepted only if every one of its words is
// vowel-compatible with the corresponding Qur'ān word.
func chainEqualModuloVowels(tokens []wordInfo, idx *quran.Index, textStart, qStart, length int) bool {
	for k := 0; k < length; k++ {
		a := tokens[textStart+k].Normalised
		b := idx.Token(qStart + k).Normalised
		if !equalModuloVowels(a, b) {
			return false
		}
	}
	return true
}

// expandEllipsis implements the expansion half of C7 (spec.md §4.7):
// it grows m according to the kind of formula recognised immediately
// after m's current end. allMatches is every surviving match of this
// Tag call (self included, at index selfIndex) — the continuation
// family needs the full set to look for a nearby resumption.
func expandEllipsis(m *Match, tokens []wordInfo, idx *quran.Index, allMatches []Match, selfIndex int, er ellipsisResult, opt Options) {
	switch er.kind {
	case ellipsisEndOfSura:
		for i := range m.Spans {
			extendToSuraEnd(&m.Spans[i], idx)
		}
		m.TextEnd += er.consumed
	case ellipsisEndOfVerse:
		for i := range m.Spans {
			extendToVerseEnd(&m.Spans[i], idx)
		}
		m.TextEnd += er.consumed
	case ellipsisContinuation:
		extendContinuation(m, tokens, idx, allMatches, selfIndex, er.consumed, opt)
	}
}

// extendToSuraEnd grows span to cover every remaining token of its
// own sura.
func extendToSuraEnd(span *QuranSpan, idx *quran.Index) {
	sura := idx.Token(span.End).Ref.Sura
	q := span.End
	for q+1 < idx.Len() && idx.Token(q+1).Ref.Sura == sura {
		q++
	}
	span.End = q
	span.RefEnd = idx.Token(q).Ref
}

// extendToVerseEnd grows span to cover every remaining token of its
// own verse.
func extendToVerseEnd(span *QuranSpan, idx *quran.Index) {
	ref := idx.Token(span.End).Ref
	q := span.End
	for q+1 < idx.Len() {
		next := idx.Token(q + 1).Ref
		if next.Sura != ref.Sura || next.Verse != ref.Verse {
			break
		}
		q++
	}
	span.End = q
	span.RefEnd = idx.Token(q).Ref
}

// continuationWindow bounds how far past a recognised continuation
// formula (reach-verb, speech-verb, and "ila qawlihi" — families 4-6
// of spec.md §4.7) the matcher looks for a resumed quotation. Classical
// "ila qawlihi" citations routinely skip several intervening verses,
// so the continuation is not necessarily the very next Qur'ān token;
// it is looked for within this many trailing words instead.
const continuationWindow = 10

// continuationCandidate is one candidate resumption point:  how far it
// reaches into the Qur'ān (qEnd) and how far it reaches in the outer
// call's text coordinates (textEnd).
type continuationCandidate struct {
	qEnd    int
	textEnd int
}

// extendContinuation implements the expansion half of the
// continuation families (spec.md §4.7): after the formula, the
// continuation is found either among matches the rest of the pipeline
// already kept (preferring the one reading furthest before giving way
// to the next clause), or, failing that, by re-running the chain
// search over just the trailing window with min_tokens=1 and the
// common-word filter off — bounded by continuationWindow, so this
// never actually recurses into Tag itself. A formula not in fact
// followed by a resumed quotation leaves the match unchanged (spec.md
// §7: "ellipsis continuation not found" degrades to no ellipsis).
func extendContinuation(m *Match, tokens []wordInfo, idx *quran.Index, allMatches []Match, selfIndex, consumed int, opt Options) {
	n := len(tokens)
	resumeAt := m.TextEnd + 1 + consumed
	if resumeAt >= n {
		return
	}
	winEnd := resumeAt + continuationWindow
	if winEnd > n {
		winEnd = n
	}

	newTextEnd := -1
	for i := range m.Spans {
		span := &m.Spans[i]
		sura := idx.Token(span.End).Ref.Sura

		cand, textEnd, ok := findSurvivingContinuation(allMatches, selfIndex, resumeAt, winEnd, sura)
		if !ok {
			cand, ok = searchNestedContinuation(tokens[resumeAt:winEnd], idx, sura, opt)
			textEnd = resumeAt + cand.textEnd
		}
		if !ok {
			continue
		}

		span.End = cand.qEnd
		span.RefEnd = idx.Token(cand.qEnd).Ref
		if textEnd > newTextEnd {
			newTextEnd = textEnd
		}
	}
	if newTextEnd >= 0 {
		m.TextEnd = newTextEnd
	}
}

// findSurvivingContinuation implements the first half of spec.md
// §4.7's continuation search: among matches other than self that
// begin within [winStart, winEnd) of the outer token stream and carry
// a span starting in sura, prefer the one ending latest in the text —
// the fullest available resumption.
func findSurvivingContinuation(allMatches []Match, selfIndex, winStart, winEnd, sura int) (cand continuationCandidate, textEnd int, found bool) {
	bestTextEnd := -1
	for k := range allMatches {
		if k == selfIndex {
			continue
		}
		other := allMatches[k]
		if other.TextStart < winStart || other.TextStart >= winEnd {
			continue
		}
		for _, sp := range other.Spans {
			if sp.RefStart.Sura != sura {
				continue
			}
			if other.TextEnd > bestTextEnd {
				cand = continuationCandidate{qEnd: sp.End, textEnd: other.TextEnd}
				bestTextEnd = other.TextEnd
				found = true
			}
			break
		}
	}
	return cand, bestTextEnd, found
}

// searchNestedContinuation implements the fallback half of spec.md
// §4.7's continuation search: a bounded re-run of the C4/C5 pipeline
// over just the trailing window, with min_tokens=1 and the
// common-word filter off (min_uncommon=0 is filterCommon's no-op
// value, so it is simply not called), ellipsis expansion never
// invoked again. It takes the first result anchored at window offset
// 0 with a span starting in sura, in increasing window-end then
// Qur'ān-offset order — spec.md only requires "any" result meeting
// those constraints.
func searchNestedContinuation(window []wordInfo, idx *quran.Index, sura int, opt Options) (continuationCandidate, bool) {
	if len(window) == 0 {
		return continuationCandidate{}, false
	}

	endOfChains, _ := searchChains(window, idx, 1)
	filtered := keepLongestPerEndpoint(endOfChains)
	filtered = removeOverlaps(filtered, nil)

	ends := make([]int, 0, len(filtered))
	for e := range filtered {
		ends = append(ends, e)
	}
	sort.Ints(ends)

	for _, end := range ends {
		m, ok := buildMatch(window, idx, filtered[end], end, opt)
		if !ok || m.TextStart != 0 {
			continue
		}
		for _, sp := range m.Spans {
			if sp.RefStart.Sura == sura {
				return continuationCandidate{qEnd: sp.End, textEnd: m.TextEnd}, true
			}
		}
	}
	return continuationCandidate{}, false
}
