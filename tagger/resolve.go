package tagger

import (
	"fmt"
	"sort"

	"github.com/kabikaj/quran-tagger/quran"
)

// keepLongestPerEndpoint implements C5 Stage A (spec.md §4.5): for
// each endpoint, retain only the bucket with the maximum chain
// length.
func keepLongestPerEndpoint(endOfChains map[int]map[int][]chainStart) map[int][]chainStart {
	out := make(map[int][]chainStart, len(endOfChains))
	for end, byLength := range endOfChains {
		best := 0
		for length := range byLength {
			if length > best {
				best = length
			}
		}
		out[end] = byLength[best]
	}
	return out
}

// removeOverlaps implements C5 Stage B (spec.md §4.5): surviving
// endpoints are scanned in ascending order; an overlapping chain is
// kept only if it is strictly longer than the one already kept, and
// an equal-length overlap is a diagnostic that keeps the earlier
// match.
func removeOverlaps(filtered map[int][]chainStart, warn func(string)) map[int][]chainStart {
	ends := make([]int, 0, len(filtered))
	for e := range filtered {
		ends = append(ends, e)
	}
	sort.Ints(ends)

	kept := make(map[int][]chainStart, len(ends))
	var keptEnds []int

	for _, e := range ends {
		group := filtered[e]
		start := group[0].TextStart
		length := e - start + 1

		if len(keptEnds) == 0 {
			kept[e] = group
			keptEnds = append(keptEnds, e)
			continue
		}

		prevEnd := keptEnds[len(keptEnds)-1]
		prevStart := kept[prevEnd][0].TextStart
		prevLength := prevEnd - prevStart + 1

		if prevEnd < start {
			kept[e] = group
			keptEnds = append(keptEnds, e)
			continue
		}

		switch {
		case length > prevLength:
			delete(kept, prevEnd)
			keptEnds = keptEnds[:len(keptEnds)-1]
			kept[e] = group
			keptEnds = append(keptEnds, e)
		case length < prevLength:
			// shorter overlapping chain discarded.
		default:
			if warn != nil {
				warn(fmt.Sprintf(
					"overlapping Qur'an quotations with equal length: text span [%d,%d] vs [%d,%d]; keeping the earlier",
					start, e, prevStart, prevEnd))
			}
			// equal length: keep the earlier (already-kept) match.
		}
	}
	return kept
}

// filterCommon implements C5 Stage C (spec.md §4.5): chains shorter
// than safeLength are dropped unless they contain at least
// minUncommon tokens whose rasm is not in sw. A nil sw (no stopword
// set loaded) behaves as if the filter were disabled, per spec.md §7.
func filterCommon(filtered map[int][]chainStart, tokens []wordInfo, sw *quran.Stopwords, minUncommon, safeLength int) map[int][]chainStart {
	if minUncommon <= 0 || sw == nil {
		return filtered
	}

	out := make(map[int][]chainStart, len(filtered))
	for end, group := range filtered {
		start := group[0].TextStart
		length := end - start + 1
		if length >= safeLength {
			out[end] = group
			continue
		}

		uncommon := 0
		for k := start; k <= end; k++ {
			if !sw.Contains(tokens[k].Rasm) {
				uncommon++
			}
		}
		if uncommon >= minUncommon {
			out[end] = group
		}
	}
	return out
}
