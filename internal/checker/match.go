package checker

import "fmt"

// Match pairs an input sentence with a similar reference sentence. All
// offsets are half-open byte ranges into the originating document.
type Match struct {
	InputSentence     string  `json:"input_sentence"`
	InputStart        int     `json:"input_start_pos"`
	InputEnd          int     `json:"input_end_pos"`
	ReferenceSentence string  `json:"reference_sentence"`
	ReferenceStart    int     `json:"reference_start_pos"`
	ReferenceEnd      int     `json:"reference_end_pos"`
	ReferenceDocument string  `json:"reference_document"`
	SimilarityScore   float64 `json:"similarity_score"`
}

// NewMatch builds a Match and rejects inconsistent offsets or scores
// immediately rather than letting them corrupt a report later.
func NewMatch(m Match) (Match, error) {
	if err := m.Validate(); err != nil {
		return Match{}, err
	}
	return m, nil
}

// Validate checks that each sentence length agrees with its offset range
// and that the score is within [0, 1].
func (m Match) Validate() error {
	if got, want := len(m.InputSentence), m.InputEnd-m.InputStart; got != want {
		return fmt.Errorf(
			"input sentence length %d does not match range [%d,%d) width %d: %q",
			got, m.InputStart, m.InputEnd, want, m.InputSentence,
		)
	}
	if got, want := len(m.ReferenceSentence), m.ReferenceEnd-m.ReferenceStart; got != want {
		return fmt.Errorf(
			"reference sentence length %d does not match range [%d,%d) width %d: %q",
			got, m.ReferenceStart, m.ReferenceEnd, want, m.ReferenceSentence,
		)
	}
	if m.SimilarityScore < 0 || m.SimilarityScore > 1 {
		return fmt.Errorf("similarity score %v outside [0,1]", m.SimilarityScore)
	}
	return nil
}
