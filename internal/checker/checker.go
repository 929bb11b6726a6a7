// Package checker finds near-duplicate sentences between an examined
// document and a set of reference documents.
package checker

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"plagscan/internal/sentence"
	"plagscan/internal/similarity"
)

// Document is one reference document. Reference order is the caller's
// slice order, which fixes the emission order of matches.
type Document struct {
	ID   string
	Text string
}

// ReportFn receives each match as soon as it is found. Nil collects
// silently (the quiet mode).
type ReportFn func(Match)

// Options configures a check run. Metric must come from similarity.Parse
// so unsupported names fail before any sentence work starts.
type Options struct {
	Threshold float64 `validate:"gt=0,lte=1"`
	MinLength int     `validate:"gte=0"`
	Metric    similarity.Metric
	Report    ReportFn
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate rejects out-of-range thresholds and lengths.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid checker options: %w", err)
	}
	return nil
}

// Check compares every input sentence against every sentence of every
// reference document and returns the matches whose score strictly exceeds
// the threshold.
//
// The scan is a deliberate full cross product with deterministic order:
// input sentences in document order, then reference documents in caller
// order, then that document's sentences in document order. Sentences
// shorter than MinLength bytes are skipped on both sides.
func Check(inputText string, references []Document, opts Options) ([]Match, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	inputSents := longEnough(sentence.Split(inputText), opts.MinLength)

	type refDoc struct {
		id    string
		sents []sentence.Sentence
	}
	refs := make([]refDoc, 0, len(references))
	for _, doc := range references {
		refs = append(refs, refDoc{
			id:    doc.ID,
			sents: longEnough(sentence.Split(doc.Text), opts.MinLength),
		})
	}

	var matches []Match
	for _, in := range inputSents {
		for _, ref := range refs {
			for _, rs := range ref.sents {
				score := opts.Metric.Score(in.Text, rs.Text)
				if score <= opts.Threshold {
					continue
				}
				m, err := NewMatch(Match{
					InputSentence:     in.Text,
					InputStart:        in.Start,
					InputEnd:          in.End,
					ReferenceSentence: rs.Text,
					ReferenceStart:    rs.Start,
					ReferenceEnd:      rs.End,
					ReferenceDocument: ref.id,
					SimilarityScore:   score,
				})
				if err != nil {
					return nil, fmt.Errorf("match %q vs %s: %w", in.Text, ref.id, err)
				}
				matches = append(matches, m)
				if opts.Report != nil {
					opts.Report(m)
				}
			}
		}
	}
	return matches, nil
}

func longEnough(sents []sentence.Sentence, minLength int) []sentence.Sentence {
	out := make([]sentence.Sentence, 0, len(sents))
	for _, s := range sents {
		if len(s.Text) >= minLength {
			out = append(out, s)
		}
	}
	return out
}
