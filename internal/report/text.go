package report

import (
	"fmt"
	"io"
	"os"

	"plagscan/internal/checker"
)

// FormatMatch renders one match as the block printed incrementally during
// a run and repeated in the text report.
func FormatMatch(m checker.Match) string {
	return fmt.Sprintf(
		"Input Sentence:     %s\n"+
			"Input Position:     %d-%d\n"+
			"Reference Sentence: %s\n"+
			"Reference Position: %d-%d\n"+
			"Reference Document: %s\n"+
			"Similarity Score:   %.4f\n",
		m.InputSentence, m.InputStart, m.InputEnd,
		m.ReferenceSentence, m.ReferenceStart, m.ReferenceEnd,
		m.ReferenceDocument, m.SimilarityScore,
	)
}

// WriteText saves all matches as numbered blocks.
func WriteText(path string, matches []checker.Match) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create text report: %w", err)
	}
	defer f.Close()

	if err := writeTextTo(f, matches); err != nil {
		return err
	}
	return f.Close()
}

func writeTextTo(w io.Writer, matches []checker.Match) error {
	for i, m := range matches {
		if _, err := fmt.Fprintf(w, "Match #%d\n%s\n", i+1, FormatMatch(m)); err != nil {
			return fmt.Errorf("write text report: %w", err)
		}
	}
	return nil
}
