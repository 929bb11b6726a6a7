// Package sentence splits raw text into sentences while tracking the exact
// byte offsets of each one. Offsets are half-open: text[Start:End] == Text.
package sentence

import "strings"

type Sentence struct {
	Text  string
	Start int
	End   int
}

// Split breaks text into sentences covering the whole input in order.
//
// A sentence boundary sits after '.', '?' or '!' followed by a whitespace
// character; the whitespace stays with the sentence it terminates. Two
// abbreviation shapes suppress the boundary: a dotted pair such as "e.g."
// or "A.B.", and a capitalized two-letter abbreviation such as "Mr." or
// "Dr.". The heuristic knowingly keeps "Mr. Smith" in one sentence.
//
// Leading whitespace of a range is skipped (it trails the previous
// sentence) and all-whitespace ranges are dropped. Empty input yields nil.
func Split(text string) []Sentence {
	positions := splitPositions(text)

	sentences := make([]Sentence, 0, len(positions)-1)
	for i := 0; i+1 < len(positions); i++ {
		start, end := positions[i], positions[i+1]
		for start < end && isSpace(text[start]) {
			start++
		}
		s := text[start:end]
		if strings.TrimSpace(s) == "" {
			continue
		}
		sentences = append(sentences, Sentence{Text: s, Start: start, End: end})
	}
	return sentences
}

// splitPositions returns the ordered range boundaries, always beginning
// with 0 and ending with len(text).
func splitPositions(text string) []int {
	positions := []int{0}
	for i := 1; i < len(text); i++ {
		if isSpace(text[i]) && boundaryBefore(text, i) {
			positions = append(positions, i+1)
		}
	}
	return append(positions, len(text))
}

// boundaryBefore reports whether the whitespace at index i ends a sentence.
func boundaryBefore(text string, i int) bool {
	p := text[i-1]
	if p != '.' && p != '?' && p != '!' {
		return false
	}
	// Dotted abbreviation or initials chain: "e.g. ", "A.B. ".
	if i >= 4 && isWord(text[i-4]) && text[i-3] == '.' && isWord(text[i-2]) {
		return false
	}
	// Capitalized two-letter abbreviation: "Mr. ", "Dr. ".
	if i >= 3 && isUpper(text[i-3]) && isLower(text[i-2]) && text[i-1] == '.' {
		return false
	}
	return true
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isWord(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || isUpper(b) || isLower(b)
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
