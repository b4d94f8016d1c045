package domain

import "fmt"

// Strategy represents a delivery strategy used to shape the phase plan.
type Strategy string

// Valid strategies
const (
	StrategySystematic Strategy = "systematic"
	StrategyAgile      Strategy = "agile"
	StrategyMVP        Strategy = "mvp"
)

// ParseStrategy converts a string into a Strategy. Unrecognized values
// fall back to systematic rather than failing.
func ParseStrategy(value string) Strategy {
	switch Strategy(value) {
	case StrategySystematic, StrategyAgile, StrategyMVP:
		return Strategy(value)
	default:
		return StrategySystematic
	}
}

// Validate checks if the strategy is valid
func (s Strategy) Validate() error {
	switch s {
	case StrategySystematic, StrategyAgile, StrategyMVP:
		return nil
	default:
		return fmt.Errorf("invalid strategy %q: must be systematic, agile, or mvp", string(s))
	}
}

// String returns the string representation
func (s Strategy) String() string {
	return string(s)
}
