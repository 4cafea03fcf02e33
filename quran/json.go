package quran

import (
	"encoding/json"
	"fmt"
	"io"
)

// tokenJSON is the on-disk shape of a single Token. qrasm and
// sura_names are not serialised: both are pure functions of qtext and
// are recomputed by buildFromTokens when the dump is reloaded, the
// same way the teacher's embedded dictionaries are shipped as plain
// word lists rather than pre-built search structures.
type tokenJSON struct {
	Sura       int    `json:"sura"`
	Verse      int    `json:"verse"`
	Word       int    `json:"word"`
	Original   string `json:"original"`
	Normalised string `json:"normalised"`
}

// indexJSON is the on-disk shape of a dumped Index.
type indexJSON struct {
	QText []tokenJSON `json:"qtext"`
}

// Dump writes idx's token stream as compact JSON to w. Pair with
// LoadIndexJSON to avoid re-parsing and re-normalising a raw Qur'ān
// source on every process start; rasm is recomputed from the stored
// normalised forms on load.
func (idx *Index) Dump(w io.Writer) error {
	doc := indexJSON{QText: make([]tokenJSON, len(idx.qtext))}
	for i, t := range idx.qtext {
		doc.QText[i] = tokenJSON{
			Sura:       t.Ref.Sura,
			Verse:      t.Ref.Verse,
			Word:       t.Ref.Word,
			Original:   t.Original,
			Normalised: t.Normalised,
		}
	}
	return json.NewEncoder(w).Encode(doc)
}

// LoadIndexJSON reads an Index previously written by Dump. qrasm and
// sura_names are rebuilt from the decoded token stream.
func LoadIndexJSON(r io.Reader) (*Index, error) {
	var doc indexJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("quran: decoding index: %w", err)
	}

	tokens := make([]Token, len(doc.QText))
	for i, t := range doc.QText {
		tokens[i] = Token{
			Ref:        Ref{Sura: t.Sura, Verse: t.Verse, Word: t.Word},
			Original:   t.Original,
			Normalised: t.Normalised,
		}
	}
	return buildFromTokens(tokens), nil
}
