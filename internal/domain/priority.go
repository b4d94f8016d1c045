package domain

import "fmt"

// Priority represents a requirement or task priority level.
// This is a value object that enforces valid priority values.
type Priority string

// Valid priority levels
const (
	PriorityHigh   Priority = "high"   // Must have
	PriorityMedium Priority = "medium" // Should have
	PriorityLow    Priority = "low"    // Nice to have
)

// NewPriority creates a new Priority value object with validation
func NewPriority(value string) (Priority, error) {
	p := Priority(value)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// ParsePriority converts a string into a Priority, falling back to
// medium for unrecognized values. Extraction heuristics feed this,
// so it never fails.
func ParsePriority(value string) Priority {
	switch Priority(value) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(value)
	default:
		return PriorityMedium
	}
}

// Validate checks if the priority is valid
func (p Priority) Validate() error {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return nil
	default:
		return fmt.Errorf("invalid priority %q: must be high, medium, or low", string(p))
	}
}

// String returns the string representation
func (p Priority) String() string {
	return string(p)
}

// IsHigherThan checks if this priority is higher than another
func (p Priority) IsHigherThan(other Priority) bool {
	return priorityRank(p) > priorityRank(other)
}

// IsLowerThan checks if this priority is lower than another
func (p Priority) IsLowerThan(other Priority) bool {
	return priorityRank(p) < priorityRank(other)
}

// priorityRank returns the numeric rank of a priority (higher = more important)
func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}
