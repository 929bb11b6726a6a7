// Package workspace manages the per-user directory holding default
// settings, the results database, and generated reports.
package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const BaseDirName = "PlagScan"

// Settings are the persisted run defaults; CLI flags override them.
type Settings struct {
	DefaultMetric       string  `json:"default_metric"`
	SimilarityThreshold float64 `json:"similarity_threshold"`
	MinSentenceLength   int     `json:"min_sentence_length"`
}

func DefaultSettings() Settings {
	return Settings{
		DefaultMetric:       "jaccard",
		SimilarityThreshold: 0.8,
		MinSentenceLength:   10,
	}
}

func EnsureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

// EnsureAt creates the workspace layout under base and seeds settings.json
// with defaults if it does not exist yet.
func EnsureAt(base string) (string, error) {
	paths := []string{
		filepath.Join(base, "configs"),
		filepath.Join(base, "reports"),
	}

	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	settingsPath := SettingsPath(base)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		raw, marshalErr := json.MarshalIndent(DefaultSettings(), "", "  ")
		if marshalErr != nil {
			return "", fmt.Errorf("marshal settings: %w", marshalErr)
		}
		if writeErr := os.WriteFile(settingsPath, raw, 0o644); writeErr != nil {
			return "", fmt.Errorf("write settings: %w", writeErr)
		}
	}

	return base, nil
}

func SettingsPath(base string) string {
	return filepath.Join(base, "configs", "settings.json")
}

// DatabasePath is where run results are recorded by default.
func DatabasePath(base string) string {
	return filepath.Join(base, "results.db")
}

// ReportsDir is the default output directory for generated reports.
func ReportsDir(base string) string {
	return filepath.Join(base, "reports")
}

// LoadSettings reads settings.json, falling back to defaults for a
// missing file.
func LoadSettings(base string) (Settings, error) {
	raw, err := os.ReadFile(SettingsPath(base))
	if os.IsNotExist(err) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return s, nil
}
