//go:build ignore

// e2e_pipeline runs the full quran-tagger pipeline (quran.Parse,
// quran.Build, tagger.Tag) against a fixed set of gold cases and
// writes a pass/fail report to data/e2e_pipeline.log.
//
// Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kabikaj/quran-tagger/data"
	"github.com/kabikaj/quran-tagger/quran"
	"github.com/kabikaj/quran-tagger/tagger"
)

const (
	logPath   = "data/e2e_pipeline.log"
	goldPath  = "data/golden/e2e_gold.json"
	separator = "=========================================================="
)

// goldSpan and goldCase mirror the shape of data/golden/e2e_gold.json.
type goldSpan struct {
	TextStart int    `json:"textStart"`
	TextEnd   int    `json:"textEnd"`
	RefStart  string `json:"refStart"`
	RefEnd    string `json:"refEnd"`
}

type goldCase struct {
	Name            string     `json:"name"`
	Words           []string   `json:"words"`
	MinTokens       int        `json:"minTokens"`
	RasmMatch       bool       `json:"rasmMatch"`
	MinUncommon     int        `json:"minUncommon"`
	SafeLength      int        `json:"safeLength"`
	IncludeEllipses bool       `json:"includeEllipses"`
	Expected        []goldSpan `json:"expected"`
}

type testResult struct {
	name     string
	passed   bool
	duration time.Duration
	detail   string
}

func pass(name string, start time.Time) testResult {
	return testResult{name: name, passed: true, duration: time.Since(start)}
}

func fail(name, detail string, start time.Time) testResult {
	return testResult{name: name, passed: false, duration: time.Since(start), detail: detail}
}

func loadGoldCases(path string) ([]goldCase, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var cases []goldCase
	if err := json.Unmarshal(raw, &cases); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return cases, nil
}

// runCase tags gc.Words against idx/sw and returns the observed spans
// as goldSpan, in the same shape the gold file uses, so a mismatch
// report can print expected-vs-actual with assert.Equal.
func runCase(gc goldCase, idx *quran.Index, sw *quran.Stopwords) ([]goldSpan, error) {
	opt := tagger.Options{
		MinTokens:       gc.MinTokens,
		RasmMatch:       gc.RasmMatch,
		MinUncommon:     gc.MinUncommon,
		SafeLength:      gc.SafeLength,
		IncludeEllipses: gc.IncludeEllipses,
	}

	// Non-nil, so a case with no matches compares equal to the gold
	// file's empty "expected" array.
	got := []goldSpan{}
	for m, err := range tagger.Tag(gc.Words, idx, sw, opt) {
		if err != nil {
			return nil, err
		}
		for _, s := range m.Spans {
			got = append(got, goldSpan{
				TextStart: m.TextStart,
				TextEnd:   m.TextEnd,
				RefStart:  s.RefStart.String(),
				RefEnd:    s.RefEnd.String(),
			})
		}
	}
	return got, nil
}

// mockT satisfies testify's assert.TestingT without depending on the
// testing package, so this driver can reuse testify's rich diff
// formatting from a plain main() run; the failure message is captured
// instead of calling os.Exit/panic.
type mockT struct {
	failed bool
	msgs   []string
}

func (t *mockT) Errorf(format string, args ...interface{}) {
	t.failed = true
	t.msgs = append(t.msgs, fmt.Sprintf(format, args...))
}

func runGoldCase(gc goldCase, idx *quran.Index, sw *quran.Stopwords) testResult {
	start := time.Now()
	got, err := runCase(gc, idx, sw)
	if err != nil {
		return fail(gc.Name, fmt.Sprintf("tagger.Tag error: %v", err), start)
	}

	sort.Slice(got, func(i, j int) bool { return got[i].TextStart < got[j].TextStart })
	want := gc.Expected
	sort.Slice(want, func(i, j int) bool { return want[i].TextStart < want[j].TextStart })

	mt := &mockT{}
	assert.Equal(mt, want, got, "case %q", gc.Name)
	if mt.failed {
		return fail(gc.Name, strings.Join(mt.msgs, "\n"), start)
	}
	return pass(gc.Name, start)
}

func runAllCases(cases []goldCase, idx *quran.Index, sw *quran.Stopwords) []testResult {
	results := make([]testResult, 0, len(cases))
	for _, gc := range cases {
		results = append(results, runGoldCase(gc, idx, sw))
	}
	return results
}

func writeLog(path string, results []testResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)

	now := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw, "  quran-tagger E2E Pipeline Test")
	fmt.Fprintf(bw, "  Timestamp: %s\n", now)
	fmt.Fprintf(bw, "  Go: %s  OS: %s\n", runtime.Version(), runtime.GOOS+"/"+runtime.GOARCH)
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw)

	passed, failed := 0, 0
	var totalDuration time.Duration
	for _, r := range results {
		status := "PASS"
		if !r.passed {
			status = "FAIL"
			failed++
		} else {
			passed++
		}
		totalDuration += r.duration
		fmt.Fprintf(bw, "  %-6s %-40s %s\n", status, r.name, r.duration.Round(time.Microsecond))
	}
	fmt.Fprintln(bw)

	var failures []testResult
	for _, r := range results {
		if !r.passed {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		fmt.Fprintln(bw, "--- FAILURES ---")
		for _, r := range failures {
			fmt.Fprintf(bw, "  FAIL  %-40s %s\n", r.name, r.duration.Round(time.Microsecond))
			for line := range strings.SplitSeq(r.detail, "\n") {
				fmt.Fprintf(bw, "        %s\n", line)
			}
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "  SUMMARY: %d cases | %d passed | %d failed | %s\n",
		len(results), passed, failed, totalDuration.Round(time.Microsecond))
	fmt.Fprintln(bw, separator)

	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSummary(results []testResult) {
	passed, failed := 0, 0
	for _, r := range results {
		if r.passed {
			passed++
		} else {
			failed++
			log.Printf("FAIL %s: %s", r.name, r.detail)
		}
	}
	log.Printf("%d cases | %d passed | %d failed", len(results), passed, failed)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[e2e] ")

	idx, err := data.SampleIndex()
	if err != nil {
		log.Fatalf("loading sample index: %v", err)
	}
	sw, err := data.SampleStopwords()
	if err != nil {
		log.Fatalf("loading sample stopwords: %v", err)
	}

	cases, err := loadGoldCases(goldPath)
	if err != nil {
		log.Fatalf("loading gold cases: %v", err)
	}

	start := time.Now()
	results := runAllCases(cases, idx, sw)
	log.Printf("completed %d cases in %s", len(cases), time.Since(start).Round(time.Microsecond))

	printSummary(results)

	if err := writeLog(logPath, results); err != nil {
		log.Fatalf("cannot write log: %v", err)
	}
	log.Printf("log written to %s", logPath)

	for _, r := range results {
		if !r.passed {
			os.Exit(1)
		}
	}
}
