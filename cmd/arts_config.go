package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xiuxian-tools/gongfa-planner/plan"
)

// ArtEntry describes one cultivation art in an arts yaml file.
type ArtEntry struct {
	ID         string  `yaml:"id"`
	Difficulty float64 `yaml:"difficulty"`
	Primary    bool    `yaml:"primary"`
	Replicas   int     `yaml:"replicas"`
	MaxLevel   int     `yaml:"max_level"`
}

// SettingsSection mirrors plan.Settings in yaml form. CLI flags that were
// explicitly set take precedence over this section.
type SettingsSection struct {
	Speed     float64 `yaml:"speed"`
	Reduction float64 `yaml:"reduction"`
	Mode      string  `yaml:"mode"`
	Target    float64 `yaml:"target"`
	Exact     bool    `yaml:"exact"`
}

// ArtsFile represents the full arts yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ArtsFile struct {
	Version  string           `yaml:"version"`
	Arts     []ArtEntry       `yaml:"arts"`
	Settings *SettingsSection `yaml:"settings"`
}

// loadArtsFile parses an arts yaml file.
// Uses strict field checking so typos fail instead of silently defaulting.
func loadArtsFile(path string) (*ArtsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read arts file: %w", err)
	}
	var artsFile ArtsFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&artsFile); err != nil {
		return nil, fmt.Errorf("parse arts yaml: %w", err)
	}
	return &artsFile, nil
}

// validateArts checks the boundary preconditions the planning engine assumes.
func validateArts(entries []ArtEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("arts file lists no arts")
	}
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.ID == "" {
			return fmt.Errorf("art with empty id")
		}
		if seen[entry.ID] {
			return fmt.Errorf("duplicate art id %q", entry.ID)
		}
		seen[entry.ID] = true
		if entry.Difficulty <= 0 {
			return fmt.Errorf("art %q: difficulty must be > 0, got %v", entry.ID, entry.Difficulty)
		}
		if entry.Replicas < 0 {
			return fmt.Errorf("art %q: replicas must be >= 0, got %d", entry.ID, entry.Replicas)
		}
		if entry.MaxLevel != 0 && !plan.IsCheckpoint(entry.MaxLevel) {
			return fmt.Errorf("art %q: max_level %d is not on the checkpoint grid (%d..%d step %d)",
				entry.ID, entry.MaxLevel, plan.LevelMin, plan.LevelMax, plan.LevelStep)
		}
	}
	return nil
}

// validateSettings checks the global planning parameters at the CLI boundary;
// the engine itself assumes sanitized settings.
func validateSettings(settings plan.Settings) error {
	if settings.Speed <= 0 {
		return fmt.Errorf("speed must be > 0, got %v", settings.Speed)
	}
	if settings.ReductionPercent < 0 || settings.ReductionPercent > 100 {
		return fmt.Errorf("reduction must be in [0,100], got %v", settings.ReductionPercent)
	}
	if !plan.IsValidMode(string(settings.Mode)) {
		return fmt.Errorf("unknown mode %q (want %q or %q)", settings.Mode, plan.ModeResourceFloor, plan.ModeTimeBudget)
	}
	return nil
}

// toSpecs converts validated file entries into engine inputs.
func toSpecs(entries []ArtEntry) []plan.ArtSpec {
	specs := make([]plan.ArtSpec, 0, len(entries))
	for _, entry := range entries {
		specs = append(specs, plan.ArtSpec{
			ID:         entry.ID,
			Difficulty: entry.Difficulty,
			Primary:    entry.Primary,
			Replicas:   entry.Replicas,
			MaxLevel:   entry.MaxLevel,
		})
	}
	return specs
}
