package domain

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// genValidPriority generates valid Priority values for property testing
func genValidPriority() *rapid.Generator[Priority] {
	return rapid.SampledFrom([]Priority{PriorityHigh, PriorityMedium, PriorityLow})
}

// genInvalidPriority generates invalid Priority strings
func genInvalidPriority() *rapid.Generator[string] {
	return rapid.OneOf(
		// Empty string
		rapid.Just(""),
		// Wrong case or padding
		rapid.SampledFrom([]string{"High", "MEDIUM", "Low ", " high", "low "}),
		// Wrong vocabulary
		rapid.SampledFrom([]string{"P0", "P1", "critical", "urgent", "none"}),
		// Random strings
		rapid.StringMatching(`[A-Za-z]{1,10}`).Filter(func(s string) bool {
			return s != "high" && s != "medium" && s != "low"
		}),
	)
}

// TestPriority_ValidPrioritiesAlwaysValidate tests that all valid priorities pass validation
func TestPriority_ValidPrioritiesAlwaysValidate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		validPriority := genValidPriority().Draw(t, "valid_priority")

		if err := validPriority.Validate(); err != nil {
			t.Fatalf("valid priority %q should pass validation: %v", validPriority, err)
		}

		str := validPriority.String()
		if str != "high" && str != "medium" && str != "low" {
			t.Fatalf("String() should return high, medium, or low, got %q", str)
		}
	})
}

// TestPriority_InvalidPrioritiesFail tests that invalid priorities fail validation
func TestPriority_InvalidPrioritiesFail(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		invalidPriorityStr := genInvalidPriority().Draw(t, "invalid_priority")
		invalidPriority := Priority(invalidPriorityStr)

		err := invalidPriority.Validate()
		if err == nil {
			t.Fatalf("invalid priority %q should fail validation", invalidPriorityStr)
		}
		if !strings.Contains(err.Error(), "must be high, medium, or low") {
			t.Errorf("error should mention valid values: %v", err)
		}
	})
}

// TestPriority_ParseNeverFails tests that ParsePriority always yields a valid priority
func TestPriority_ParseNeverFails(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.OneOf(
			genInvalidPriority(),
			rapid.Just("high"),
			rapid.Just("medium"),
			rapid.Just("low"),
		).Draw(t, "input")

		p := ParsePriority(input)
		if err := p.Validate(); err != nil {
			t.Fatalf("ParsePriority(%q) returned invalid priority %q: %v", input, p, err)
		}
	})
}

// TestPriority_ComparisonIsComplete tests that any two priorities compare exactly one way
func TestPriority_ComparisonIsComplete(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		priority1 := genValidPriority().Draw(t, "priority1")
		priority2 := genValidPriority().Draw(t, "priority2")

		trueCount := 0
		if priority1.IsHigherThan(priority2) {
			trueCount++
		}
		if priority1.IsLowerThan(priority2) {
			trueCount++
		}
		if priority1 == priority2 {
			trueCount++
		}

		if trueCount != 1 {
			t.Fatalf("comparison completeness violated: %s vs %s has %d true conditions (should be exactly 1)", priority1, priority2, trueCount)
		}
	})
}

// TestPriority_RoundTripThroughString tests that priorities survive round-trip through String()
func TestPriority_RoundTripThroughString(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		priority1 := genValidPriority().Draw(t, "priority")

		priority2, err := NewPriority(priority1.String())
		if err != nil {
			t.Fatalf("round-trip should not produce error: %v", err)
		}
		if priority1 != priority2 {
			t.Fatalf("round-trip should preserve value: %q != %q", priority1, priority2)
		}
	})
}
