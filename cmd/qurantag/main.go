// Command qurantag tags one or more word-list files for Qur'an
// quotations and prints the results as JSON (default) or XML.
//
// Usage:
//
//	go run ./cmd/qurantag [flags] file...
//
// Each input file is either a JSON array of word strings, or (with
// -text) raw UTF-8 text split into words by tokenizer.Words, which
// drops whitespace, punctuation, numbers, URLs and email addresses and
// keeps a word's diacritics attached to it. With no files given,
// qurantag reads one word list from stdin.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kabikaj/quran-tagger/data"
	"github.com/kabikaj/quran-tagger/quran"
	"github.com/kabikaj/quran-tagger/resultxml"
	"github.com/kabikaj/quran-tagger/tagger"
	"github.com/kabikaj/quran-tagger/tokenizer"
)

const defaultWorkers = 4

func main() {
	quranPath := flag.String("quran", "", "path to a prepared Index JSON file (default: embedded sample)")
	stopwordsPath := flag.String("stopwords", "", "path to a stopword JSON array (default: embedded sample)")
	textMode := flag.Bool("text", false, "treat each input file as raw text, split into words by package tokenizer, instead of a JSON word array")
	format := flag.String("format", "json", "output format: json or xml")
	workers := flag.Int("workers", defaultWorkers, "maximum input files processed concurrently")

	minTokens := flag.Int("min-tokens", 5, "minimum quoted chain length, in words")
	rasmMatch := flag.Bool("rasm-match", false, "accept rasm-only matches, skipping the vowel-tolerant check")
	minUncommon := flag.Int("min-uncommon", 0, "minimum non-stopword words a short chain must contain")
	safeLength := flag.Int("safe-length", 4, "chain length at or above which the common-word filter is skipped")
	includeEllipses := flag.Bool("include-ellipses", true, "recognise and expand ellipsis formulae")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	idx, sw := loadResources(*quranPath, *stopwordsPath)

	opt := tagger.Options{
		MinTokens:       *minTokens,
		RasmMatch:       *rasmMatch,
		MinUncommon:     *minUncommon,
		SafeLength:      *safeLength,
		IncludeEllipses: *includeEllipses,
		Warn: func(msg string) {
			log.Warn().Msg(msg)
		},
	}

	files := flag.Args()
	if len(files) == 0 {
		if err := processStream(os.Stdin, "<stdin>", *textMode, idx, sw, opt, *format, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("qurantag: processing stdin")
		}
		return
	}

	if err := processFiles(files, *textMode, idx, sw, opt, *format, *workers); err != nil {
		log.Fatal().Err(err).Msg("qurantag: processing input files")
	}
}

func loadResources(quranPath, stopwordsPath string) (*quran.Index, *quran.Stopwords) {
	var idx *quran.Index
	var err error
	if quranPath != "" {
		f, openErr := os.Open(quranPath)
		if openErr != nil {
			log.Fatal().Err(openErr).Str("path", quranPath).Msg("qurantag: opening quran index")
		}
		defer func() { _ = f.Close() }()
		idx, err = quran.LoadIndexJSON(f)
	} else {
		idx, err = data.SampleIndex()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("qurantag: loading quran index")
	}
	log.Info().Int("tokens", idx.Len()).Msg("qurantag: loaded quran index")

	var sw *quran.Stopwords
	if stopwordsPath != "" {
		f, openErr := os.Open(stopwordsPath)
		if openErr != nil {
			log.Fatal().Err(openErr).Str("path", stopwordsPath).Msg("qurantag: opening stopwords")
		}
		defer func() { _ = f.Close() }()
		sw, err = quran.LoadStopwords(f)
	} else {
		sw, err = data.SampleStopwords()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("qurantag: loading stopwords")
	}

	return idx, sw
}

// processFiles runs processStream over every file in files, bounded to
// workers concurrent files at a time; results are printed in input
// order once every file has finished, mirroring the teacher's
// semaphore-bounded worker pool.
func processFiles(files []string, textMode bool, idx *quran.Index, sw *quran.Stopwords, opt tagger.Options, format string, workers int) error {
	outputs := make([][]byte, len(files))
	errs := make([]error, len(files))

	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, path := range files {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			f, err := os.Open(path)
			if err != nil {
				errs[i] = fmt.Errorf("opening %s: %w", path, err)
				return
			}
			defer func() { _ = f.Close() }()

			var buf strings.Builder
			if err := processStream(f, path, textMode, idx, sw, opt, format, &buf); err != nil {
				errs[i] = fmt.Errorf("tagging %s: %w", path, err)
				return
			}
			outputs[i] = []byte(buf.String())
		}(i, path)
	}
	wg.Wait()

	for i, path := range files {
		if errs[i] != nil {
			log.Error().Err(errs[i]).Str("path", path).Msg("qurantag: file failed")
			continue
		}
		fmt.Fprintf(os.Stdout, "==> %s <==\n", path)
		os.Stdout.Write(outputs[i])
	}
	return nil
}

// processStream reads one word list (JSON array, or raw text split by
// tokenizer.Words when textMode is set) from r, tags it, and writes the
// result to w in the requested format.
func processStream(r io.Reader, label string, textMode bool, idx *quran.Index, sw *quran.Stopwords, opt tagger.Options, format string, w io.Writer) error {
	words, err := readWords(r, textMode)
	if err != nil {
		return fmt.Errorf("reading %s: %w", label, err)
	}
	log.Debug().Str("source", label).Int("words", len(words)).Msg("qurantag: tagging")

	seq := tagger.Tag(words, idx, sw, opt)

	switch format {
	case "xml":
		return resultxml.Write(w, seq)
	case "json":
		return writeJSON(w, seq)
	default:
		return fmt.Errorf("unknown -format %q (want json or xml)", format)
	}
}

func readWords(r io.Reader, textMode bool) ([]string, error) {
	if textMode {
		raw, err := io.ReadAll(bufio.NewReader(r))
		if err != nil {
			return nil, err
		}
		return tokenizer.Words(string(raw)), nil
	}

	var words []string
	if err := json.NewDecoder(r).Decode(&words); err != nil {
		return nil, fmt.Errorf("decoding JSON word array: %w", err)
	}
	return words, nil
}

// jsonSpan and jsonMatch mirror tagger.QuranSpan/tagger.Match with
// JSON tags; tagger.Match itself carries no JSON tags since the core
// packages stay serialisation-agnostic.
type jsonSpan struct {
	RefStart string `json:"refStart"`
	RefEnd   string `json:"refEnd"`
}

type jsonMatch struct {
	TextStart int        `json:"textStart"`
	TextEnd   int        `json:"textEnd"`
	Spans     []jsonSpan `json:"spans"`
}

func writeJSON(w io.Writer, seq func(func(tagger.Match, error) bool)) error {
	var out []jsonMatch
	for m, err := range seq {
		if err != nil {
			return err
		}
		jm := jsonMatch{TextStart: m.TextStart, TextEnd: m.TextEnd}
		for _, s := range m.Spans {
			jm.Spans = append(jm.Spans, jsonSpan{
				RefStart: s.RefStart.String(),
				RefEnd:   s.RefEnd.String(),
			})
		}
		out = append(out, jm)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
