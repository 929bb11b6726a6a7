// Package similarity scores how alike two sentences are, either over
// lower-cased word sets or over raw character sequences.
package similarity

import (
	"fmt"
	"regexp"
	"strings"
)

// Metric is a closed set of supported similarity measures, resolved from
// its CLI name once at configuration time.
type Metric int

const (
	Jaccard Metric = iota
	Cosine
	SorensenDice
	Overlap
	Tversky
	Jaro
	JaroWinkler
)

// tverskyAlpha weights the two set differences symmetrically.
const tverskyAlpha = 0.5

// winklerBoost scales the common-prefix bonus of Jaro-Winkler.
const winklerBoost = 0.1

var metricNames = map[string]Metric{
	"jaccard":       Jaccard,
	"cosine":        Cosine,
	"sorensen_dice": SorensenDice,
	"overlap":       Overlap,
	"tversky":       Tversky,
	"jaro":          Jaro,
	"jaro_winkler":  JaroWinkler,
}

// Parse maps a metric name to its Metric. Unknown names are rejected here
// so no matching work starts with an unsupported metric.
func Parse(name string) (Metric, error) {
	m, ok := metricNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unsupported similarity metric %q", name)
	}
	return m, nil
}

func (m Metric) String() string {
	for name, metric := range metricNames {
		if metric == m {
			return name
		}
	}
	return fmt.Sprintf("metric(%d)", int(m))
}

// SetBased reports whether the metric compares token sets rather than raw
// character sequences.
func (m Metric) SetBased() bool {
	return m != Jaro && m != JaroWinkler
}

// Score compares two sentences with the metric. Degenerate inputs (empty
// sentence or empty token set on either side) score 0.
func (m Metric) Score(a, b string) float64 {
	if m.SetBased() {
		return m.scoreSets(Tokens(a), Tokens(b))
	}
	switch m {
	case Jaro:
		return jaro(a, b)
	default:
		return jaroWinkler(a, b)
	}
}

func (m Metric) scoreSets(a, b map[string]struct{}) float64 {
	inter := float64(intersection(a, b))
	la, lb := float64(len(a)), float64(len(b))

	switch m {
	case Jaccard:
		union := la + lb - inter
		if union == 0 {
			return 0
		}
		return inter / union
	case Cosine:
		if la == 0 || lb == 0 {
			return 0
		}
		return inter / (la * lb)
	case SorensenDice:
		if la+lb == 0 {
			return 0
		}
		return 2 * inter / (la + lb)
	case Overlap:
		smaller := min(la, lb)
		if smaller == 0 {
			return 0
		}
		return inter / smaller
	default: // Tversky
		denom := inter + tverskyAlpha*(la-inter) + (1-tverskyAlpha)*(lb-inter)
		if denom == 0 {
			return 0
		}
		return inter / denom
	}
}

var wordPattern = regexp.MustCompile(`\w+`)

// Tokens extracts the lower-cased word set of a sentence.
func Tokens(s string) map[string]struct{} {
	words := wordPattern.FindAllString(strings.ToLower(s), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func intersection(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}

// jaro computes the Jaro similarity over the byte sequences: characters
// match when equal and within max(len1,len2)/2-1 of each other, each
// matched character is consumed once, and half of the out-of-order matched
// pairs count as transpositions.
func jaro(s1, s2 string) float64 {
	if len(s1) == 0 || len(s2) == 0 {
		return 0
	}

	window := max(len(s1), len(s2))/2 - 1
	if window < 0 {
		window = 0
	}

	matched1 := make([]bool, len(s1))
	matched2 := make([]bool, len(s2))
	matches := 0
	for i := 0; i < len(s1); i++ {
		lo := max(0, i-window)
		hi := min(i+window+1, len(s2))
		for j := lo; j < hi; j++ {
			if !matched2[j] && s1[i] == s2[j] {
				matched1[i] = true
				matched2[j] = true
				matches++
				break
			}
		}
	}
	if matches == 0 {
		return 0
	}

	transpositions := 0
	j := 0
	for i := 0; i < len(s1); i++ {
		if !matched1[i] {
			continue
		}
		for !matched2[j] {
			j++
		}
		if s1[i] != s2[j] {
			transpositions++
		}
		j++
	}
	transpositions /= 2

	m := float64(matches)
	return (m/float64(len(s1)) + m/float64(len(s2)) + (m-float64(transpositions))/m) / 3
}

// jaroWinkler boosts the Jaro score by a bonus for up to 4 leading
// identical characters.
func jaroWinkler(s1, s2 string) float64 {
	score := jaro(s1, s2)

	prefix := 0
	for i := 0; i < min(len(s1), len(s2)) && i < 4; i++ {
		if s1[i] != s2[i] {
			break
		}
		prefix++
	}
	return score + float64(prefix)*winklerBoost*(1-score)
}
