package ux

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/planwright/internal/errors"
)

// PathDefaults provides the conventional project file locations.
type PathDefaults struct {
	PlanwrightDir string
}

// NewPathDefaults roots the defaults at ./.planwright.
func NewPathDefaults() *PathDefaults {
	return &PathDefaults{PlanwrightDir: ".planwright"}
}

// WorkflowFile returns the default workflow output path.
func (pd *PathDefaults) WorkflowFile() string {
	return filepath.Join(pd.PlanwrightDir, "workflow.json")
}

// ReportFile returns the default quality-report output path.
func (pd *PathDefaults) ReportFile() string {
	return filepath.Join(pd.PlanwrightDir, "report.json")
}

// ProfilesDir returns the project gate-profile directory.
func (pd *PathDefaults) ProfilesDir() string {
	return filepath.Join(pd.PlanwrightDir, "profiles")
}

// SessionFile returns the saved interview session path.
func (pd *PathDefaults) SessionFile() string {
	return filepath.Join(pd.PlanwrightDir, "interview.json")
}

// DocumentFile returns the default requirements document path, used
// when generate is invoked with no input argument.
func (pd *PathDefaults) DocumentFile() string {
	return "PRD.md"
}

// EnsureDir creates the planwright directory if needed.
func (pd *PathDefaults) EnsureDir() error {
	if err := os.MkdirAll(pd.PlanwrightDir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeDirectoryFailed,
			fmt.Sprintf("creating %s", pd.PlanwrightDir), err)
	}
	return nil
}

// ValidateRequiredFile checks that an input file exists and points
// the user at the command that creates it.
func ValidateRequiredFile(path, fileType, creationCommand string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%s not found at %s\n\nRun '%s' to create it", fileType, path, creationCommand)
	} else if err != nil {
		return fmt.Errorf("access %s: %w", path, err)
	}
	return nil
}

// SuggestNextSteps returns a contextual hint based on which project
// artifacts already exist.
func SuggestNextSteps() string {
	defaults := NewPathDefaults()

	if _, err := os.Stat(defaults.DocumentFile()); os.IsNotExist(err) {
		return "Write a PRD.md or run 'planwright interview' to build one interactively"
	}
	if _, err := os.Stat(defaults.WorkflowFile()); os.IsNotExist(err) {
		return "Generate a workflow with 'planwright generate --in PRD.md'"
	}
	if _, err := os.Stat(defaults.ReportFile()); os.IsNotExist(err) {
		return "Validate the workflow with 'planwright validate'"
	}
	return "Review the plan with 'planwright review'"
}
