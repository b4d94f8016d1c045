package domain

import "fmt"

// Complexity represents the complexity tier of a requirement set or task.
type Complexity string

// Valid complexity tiers
const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// NewComplexity creates a new Complexity value object with validation
func NewComplexity(value string) (Complexity, error) {
	c := Complexity(value)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks if the complexity tier is valid
func (c Complexity) Validate() error {
	switch c {
	case ComplexitySimple, ComplexityModerate, ComplexityComplex:
		return nil
	default:
		return fmt.Errorf("invalid complexity %q: must be simple, moderate, or complex", string(c))
	}
}

// String returns the string representation
func (c Complexity) String() string {
	return string(c)
}

// Rank returns the numeric rank of a complexity tier (higher = more complex)
func (c Complexity) Rank() int {
	switch c {
	case ComplexityComplex:
		return 3
	case ComplexityModerate:
		return 2
	case ComplexitySimple:
		return 1
	default:
		return 0
	}
}
