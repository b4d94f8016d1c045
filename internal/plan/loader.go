package plan

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a GeneratedWorkflow from a JSON file
func Load(path string) (*GeneratedWorkflow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workflow file: %w", err)
	}

	var w GeneratedWorkflow
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("unmarshal workflow: %w", err)
	}

	// Validate the loaded workflow using domain validation
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("validate workflow: %w", err)
	}

	return &w, nil
}

// Save writes a GeneratedWorkflow to a JSON file
func Save(w *GeneratedWorkflow, path string) error {
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal workflow: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write workflow file: %w", err)
	}

	return nil
}
