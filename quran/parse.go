package quran

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RawWord is a single whitespace-separated word read from a Qur'ān
// source file, before normalisation.
type RawWord struct {
	Ref      Ref
	Original string
}

// Parse reads the line-oriented Qur'ān source format of spec.md §6:
// UTF-8 text, one verse per line, formatted "sura|verse|text" with the
// text itself whitespace-tokenised. Blank lines and lines beginning
// with '#' are skipped.
func Parse(r io.Reader) ([]RawWord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var words []RawWord
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("quran: line %d: expected sura|verse|text, got %q", lineNo, line)
		}

		sura, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("quran: line %d: invalid sura number: %w", lineNo, err)
		}
		verse, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("quran: line %d: invalid verse number: %w", lineNo, err)
		}

		for i, w := range strings.Fields(parts[2]) {
			words = append(words, RawWord{
				Ref:      Ref{Sura: sura, Verse: verse, Word: i + 1},
				Original: w,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("quran: reading source: %w", err)
	}
	return words, nil
}
