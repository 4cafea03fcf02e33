// Package data embeds the sample fixtures shared by package tests, the
// smoke driver, and cmd/qurantag's default (no -quran flag) run: a
// small Qur'an source fragment and a stopword list.
package data

import _ "embed"

//go:embed quran_sample.txt
var QuranSample []byte

//go:embed stopwords.json
var Stopwords []byte
