package tagger

import "github.com/kabikaj/quran-tagger/quran"

// searchChains implements C4 (spec.md §4.4): for every input position,
// extend every co-occurring run against the index as far as possible.
//
// endOfChains is keyed by text endpoint, then by chain length, to a
// list of (text_start, q_start) anchors — spec.md §9's "dynamic
// dict-of-dict aggregation" kept in its literal two-level shape since
// Stage A (longest-per-endpoint) consumes it directly.
//
// ellipsisOf is populated lazily, once per distinct text position
// immediately following a chain's end, mirroring the source's
// memoised `ellipses` table: check_ellipsis is not idempotent-free to
// compute (it inspects several trailing tokens), so it is run at most
// once per position regardless of how many chains end there.
func searchChains(tokens []wordInfo, idx *quran.Index, minTokens int) (endOfChains map[int]map[int][]chainStart, ellipsisOf map[int]ellipsisResult) {
	n := len(tokens)
	endOfChains = make(map[int]map[int][]chainStart)
	ellipsisOf = make(map[int]ellipsisResult)

	for i := 0; i <= n-minTokens; i++ {
		for _, q := range idx.Offsets(tokens[i].Rasm) {
			j := 0
			for {
				j++
				if i+j >= n {
					break
				}
				if !containsInt(idx.Offsets(tokens[i+j].Rasm), q+j) {
					break
				}
			}
			length := j

			if _, ok := ellipsisOf[i+length]; !ok {
				ellipsisOf[i+length] = checkEllipsis(tokens, i+length)
			}

			if length >= minTokens {
				end := i + length - 1
				if endOfChains[end] == nil {
					endOfChains[end] = make(map[int][]chainStart)
				}
				endOfChains[end][length] = append(endOfChains[end][length], chainStart{TextStart: i, QStart: q})
			}
		}
	}
	return endOfChains, ellipsisOf
}

// containsInt reports whether sorted contains x. idx.Offsets always
// returns ascending token ids, so this is a binary search rather than
// a linear scan.
func containsInt(sorted []int, x int) bool {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case sorted[mid] == x:
			return true
		case sorted[mid] < x:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}
