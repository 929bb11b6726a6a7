package store

import (
	"path/filepath"
	"testing"

	"plagscan/internal/checker"
)

func TestPersistRunRoundtrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")

	matches := []checker.Match{
		{
			InputSentence:     "The quick brown fox jumps over the lazy dog.",
			InputStart:        0,
			InputEnd:          44,
			ReferenceSentence: "The quick brown fox jumps over the lazy dog.",
			ReferenceStart:    10,
			ReferenceEnd:      54,
			ReferenceDocument: "ref.txt",
			SimilarityScore:   0.97,
		},
		{
			InputSentence:     "Another lifted line.",
			InputStart:        44,
			InputEnd:          64,
			ReferenceSentence: "Another lifted line.",
			ReferenceStart:    0,
			ReferenceEnd:      20,
			ReferenceDocument: "other.md",
			SimilarityScore:   1.0,
		},
	}

	runID, err := PersistRun(dbPath, Run{
		ExaminedDocument: "essay.txt",
		Metric:           "jaccard",
		Threshold:        0.8,
		MinLength:        10,
	}, matches)
	if err != nil {
		t.Fatalf("persist run: %v", err)
	}
	if runID == 0 {
		t.Fatalf("expected a run id")
	}

	if n, err := CountRows(dbPath, "runs"); err != nil || n != 1 {
		t.Fatalf("runs count = %d, err = %v", n, err)
	}
	if n, err := CountRows(dbPath, "matches"); err != nil || n != 2 {
		t.Fatalf("matches count = %d, err = %v", n, err)
	}

	got, err := MatchesForRun(dbPath, runID)
	if err != nil {
		t.Fatalf("load matches: %v", err)
	}
	if len(got) != len(matches) {
		t.Fatalf("loaded %d matches, want %d", len(got), len(matches))
	}
	for i := range matches {
		if got[i] != matches[i] {
			t.Fatalf("match %d changed: %+v != %+v", i, got[i], matches[i])
		}
	}
}

func TestPersistRunEmptyMatches(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")

	runID, err := PersistRun(dbPath, Run{ExaminedDocument: "clean.txt", Metric: "jaro"}, nil)
	if err != nil {
		t.Fatalf("persist run: %v", err)
	}
	got, err := MatchesForRun(dbPath, runID)
	if err != nil {
		t.Fatalf("load matches: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}
