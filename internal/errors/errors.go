package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Requirement document errors (PRD-001 to PRD-099)
	ErrCodeDocNotFound ErrorCode = "PRD-001"
	ErrCodeDocEmpty    ErrorCode = "PRD-002"

	// Workflow errors (WF-001 to WF-099)
	ErrCodeWorkflowNotFound ErrorCode = "WF-001"
	ErrCodeWorkflowInvalid  ErrorCode = "WF-002"
	ErrCodeWorkflowMarshal  ErrorCode = "WF-003"
	ErrCodeWorkflowRejected ErrorCode = "WF-004"

	// Dependency graph errors (GRAPH-001 to GRAPH-099)
	ErrCodeGraphCyclicDep   ErrorCode = "GRAPH-001"
	ErrCodeGraphTaskMissing ErrorCode = "GRAPH-002"

	// Quality gate errors (GATE-001 to GATE-099)
	ErrCodeGateUnknown        ErrorCode = "GATE-001"
	ErrCodeGateProfileUnknown ErrorCode = "GATE-002"
	ErrCodeGateProfileInvalid ErrorCode = "GATE-003"

	// Tool orchestration errors (TOOL-001 to TOOL-099)
	ErrCodeToolProviderUnknown ErrorCode = "TOOL-001"

	// Formatting errors (FMT-001 to FMT-099)
	ErrCodeFormatUnknown   ErrorCode = "FMT-001"
	ErrCodeFormatUnmarshal ErrorCode = "FMT-002"

	// Interview errors (INTERVIEW-001 to INTERVIEW-099)
	ErrCodeInterviewPresetUnknown  ErrorCode = "INTERVIEW-001"
	ErrCodeInterviewAlreadyStarted ErrorCode = "INTERVIEW-002"
	ErrCodeInterviewNotComplete    ErrorCode = "INTERVIEW-003"
	ErrCodeInterviewAnswerRequired ErrorCode = "INTERVIEW-004"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeDirectoryFailed ErrorCode = "IO-004"
)

// PlanwrightError represents an enhanced error with code, suggestions, and documentation
type PlanwrightError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *PlanwrightError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *PlanwrightError) Unwrap() error {
	return e.Cause
}

// New creates a new PlanwrightError
func New(code ErrorCode, message string) *PlanwrightError {
	return &PlanwrightError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new PlanwrightError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *PlanwrightError {
	return &PlanwrightError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *PlanwrightError) WithSuggestion(suggestion string) *PlanwrightError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *PlanwrightError) WithSuggestions(suggestions ...string) *PlanwrightError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *PlanwrightError) WithDocs(url string) *PlanwrightError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewDocNotFoundError creates a requirements document not found error
func NewDocNotFoundError(path string) *PlanwrightError {
	return New(ErrCodeDocNotFound, fmt.Sprintf("requirements document not found: %s", path)).
		WithSuggestion("Run 'planwright interview' to draft a requirements document").
		WithSuggestion("Check if the file path is correct").
		WithDocs("https://github.com/felixgeelhaar/planwright#input-documents")
}

// NewWorkflowInvalidError creates a workflow validation error
func NewWorkflowInvalidError(details string) *PlanwrightError {
	return New(ErrCodeWorkflowInvalid, fmt.Sprintf("invalid workflow: %s", details)).
		WithSuggestion("Run 'planwright validate --in <file>' to see validation issues").
		WithDocs("https://github.com/felixgeelhaar/planwright#workflow-schema")
}

// NewGateProfileUnknownError creates an unknown gate profile error
func NewGateProfileUnknownError(name string) *PlanwrightError {
	return New(ErrCodeGateProfileUnknown, fmt.Sprintf("unknown gate profile: %s", name)).
		WithSuggestion("Use one of the built-in profiles: standard, strict, enterprise").
		WithSuggestion("Check .planwright/profiles/ for custom profile definitions").
		WithDocs("https://github.com/felixgeelhaar/planwright#quality-gates")
}

// NewInterviewPresetUnknownError creates an unknown interview preset error
func NewInterviewPresetUnknownError(name string) *PlanwrightError {
	return New(ErrCodeInterviewPresetUnknown, fmt.Sprintf("unknown interview preset: %s", name)).
		WithSuggestion("Use one of: feature, api, ui, quick").
		WithDocs("https://github.com/felixgeelhaar/planwright#interview-mode")
}
