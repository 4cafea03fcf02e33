// Command qtprep prepares a Qur'an source file into the Index JSON
// that cmd/qurantag loads with its -quran flag, so a complete Qur'an
// does not need to be re-parsed and re-normalised on every process
// start (the rasm table is still recomputed on load).
//
// Usage:
//
//	go run ./cmd/qtprep -input quran.txt -output quran.json
//
// The input format is the line-oriented "sura|verse|text" format of
// package quran's Parse; the output is the JSON shape read back by
// quran.LoadIndexJSON. Package data does not read this JSON: it embeds
// and parses data/quran_sample.txt.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kabikaj/quran-tagger/quran"
)

func main() {
	inputPath := flag.String("input", "", "path to a sura|verse|text Qur'an source file (default: stdin)")
	outputPath := flag.String("output", "", "path to write the prepared Index JSON (default: stdout)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	in := os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *inputPath).Msg("qtprep: opening input")
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	words, err := quran.Parse(in)
	if err != nil {
		log.Fatal().Err(err).Msg("qtprep: parsing Qur'an source")
	}
	log.Info().Int("words", len(words)).Msg("qtprep: parsed source")

	idx := quran.Build(words)
	log.Info().Int("tokens", idx.Len()).Msg("qtprep: built index")

	out := os.Stdout
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *outputPath).Msg("qtprep: creating output")
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := idx.Dump(out); err != nil {
		log.Fatal().Err(err).Msg("qtprep: writing index JSON")
	}
	log.Info().Msg("qtprep: done")
}
