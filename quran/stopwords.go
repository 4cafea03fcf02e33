package quran

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/kabikaj/quran-tagger/rasm"
	"github.com/kabikaj/quran-tagger/script"
)

// Stopwords is the set of rasm forms considered "common" by the
// C5-C filter (spec.md §4.5), derived offline from a morphologically
// analysed Qur'ān: tokens whose part of speech is purely functional
// (pronoun, preposition, conjunction, and the like).
type Stopwords struct {
	rasms []string // sorted, for binary search
}

// LoadStopwords reads a UTF-8 JSON array of normalised Arabic words
// (spec.md §6) and converts each to its rasm form at load time, the
// same way the Qur'ān index itself is built once and held read-only.
func LoadStopwords(r io.Reader) (*Stopwords, error) {
	var words []string
	if err := json.NewDecoder(r).Decode(&words); err != nil {
		return nil, fmt.Errorf("quran: decoding stopwords: %w", err)
	}

	rasms := make([]string, 0, len(words))
	for _, w := range words {
		rasms = append(rasms, rasm.Encode(script.Normalize(w, true)))
	}
	sort.Strings(rasms)
	return &Stopwords{rasms: rasms}, nil
}

// Contains reports whether rasmForm is a known stopword rasm.
func (s *Stopwords) Contains(rasmForm string) bool {
	if s == nil || rasmForm == "" {
		return false
	}
	i := sort.SearchStrings(s.rasms, rasmForm)
	return i < len(s.rasms) && s.rasms[i] == rasmForm
}
