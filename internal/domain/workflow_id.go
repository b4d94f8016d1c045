package domain

import (
	"fmt"
	"regexp"
)

// WorkflowID represents a unique identifier for a generated workflow.
type WorkflowID string

var (
	// workflowIDPattern mirrors the task ID format
	workflowIDPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

	// maxWorkflowIDLength is the maximum allowed length for a workflow ID
	maxWorkflowIDLength = 100
)

// NewWorkflowID creates a new WorkflowID value object with validation
func NewWorkflowID(value string) (WorkflowID, error) {
	id := WorkflowID(value)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// Validate checks if the workflow ID is valid
func (w WorkflowID) Validate() error {
	s := string(w)

	if s == "" {
		return fmt.Errorf("workflow ID cannot be empty")
	}

	if len(s) > maxWorkflowIDLength {
		return fmt.Errorf("workflow ID %q exceeds maximum length of %d characters", s, maxWorkflowIDLength)
	}

	if !workflowIDPattern.MatchString(s) {
		return fmt.Errorf("workflow ID %q must start with a letter and contain only lowercase letters, numbers, and hyphens", s)
	}

	return nil
}

// String returns the string representation
func (w WorkflowID) String() string {
	return string(w)
}
