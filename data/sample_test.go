package data

import "testing"

func TestSampleIndexBuilds(t *testing.T) {
	idx, err := SampleIndex()
	if err != nil {
		t.Fatalf("SampleIndex: %v", err)
	}
	if idx.Len() == 0 {
		t.Fatal("embedded sample index has no tokens")
	}
}

func TestSampleStopwordsLoads(t *testing.T) {
	sw, err := SampleStopwords()
	if err != nil {
		t.Fatalf("SampleStopwords: %v", err)
	}
	if sw == nil {
		t.Fatal("expected a non-nil stopword set")
	}
}
