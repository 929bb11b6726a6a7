// Package report renders check results as JSON, plain text, and an
// interactive HTML document.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"plagscan/internal/checker"
)

// WriteJSON saves the matches as an indented list-of-objects array.
func WriteJSON(path string, matches []checker.Match) error {
	if matches == nil {
		matches = []checker.Match{}
	}
	raw, err := json.MarshalIndent(matches, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal matches: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}
	return nil
}

// ReadJSON loads a previously written match list, re-validating every
// record so corrupt offsets are caught before rendering.
func ReadJSON(path string) ([]checker.Match, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json report: %w", err)
	}
	var matches []checker.Match
	if err := json.Unmarshal(raw, &matches); err != nil {
		return nil, fmt.Errorf("parse json report: %w", err)
	}
	for i, m := range matches {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("match %d: %w", i, err)
		}
	}
	return matches, nil
}
