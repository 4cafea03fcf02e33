// Package resultxml renders a sequence of tagger.Match values as an
// XML document. It exists purely as an alternative serialisation for
// cmd/qurantag's -format xml flag; the tagger itself never touches
// encoding/xml.
//
// All functions are safe for concurrent use by multiple goroutines.
package resultxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"iter"

	"github.com/kabikaj/quran-tagger/tagger"
)

// document is the on-the-wire shape: one <quotation> per tagger.Match,
// each nesting one or more <quranSpan> elements.
type document struct {
	XMLName   xml.Name    `xml:"quotations"`
	Quotation []quotation `xml:"quotation"`
}

type quotation struct {
	TextStart int         `xml:"textStart,attr"`
	TextEnd   int         `xml:"textEnd,attr"`
	Span      []quranSpan `xml:"quranSpan"`
}

type quranSpan struct {
	SuraStart  int `xml:"suraStart,attr"`
	VerseStart int `xml:"verseStart,attr"`
	WordStart  int `xml:"wordStart,attr"`
	SuraEnd    int `xml:"suraEnd,attr"`
	VerseEnd   int `xml:"verseEnd,attr"`
	WordEnd    int `xml:"wordEnd,attr"`
}

// Write consumes every (Match, error) pair of seq and writes the
// resulting <quotations> document to w. It stops and returns the first
// error either seq or the encoder produces.
func Write(w io.Writer, seq iter.Seq2[tagger.Match, error]) error {
	doc := document{}
	for m, err := range seq {
		if err != nil {
			return fmt.Errorf("resultxml: tagging: %w", err)
		}
		doc.Quotation = append(doc.Quotation, toQuotation(m))
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("resultxml: writing header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("resultxml: encoding: %w", err)
	}
	return nil
}

func toQuotation(m tagger.Match) quotation {
	q := quotation{TextStart: m.TextStart, TextEnd: m.TextEnd}
	for _, s := range m.Spans {
		q.Span = append(q.Span, toQuranSpan(s))
	}
	return q
}

func toQuranSpan(s tagger.QuranSpan) quranSpan {
	return quranSpan{
		SuraStart:  s.RefStart.Sura,
		VerseStart: s.RefStart.Verse,
		WordStart:  s.RefStart.Word,
		SuraEnd:    s.RefEnd.Sura,
		VerseEnd:   s.RefEnd.Verse,
		WordEnd:    s.RefEnd.Word,
	}
}

