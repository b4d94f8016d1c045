package domain

import "fmt"

// GateID identifies a quality gate in the registry.
type GateID string

// The built-in quality gates.
const (
	GateCompleteness GateID = "completeness"
	GateConsistency  GateID = "consistency"
	GateFeasibility  GateID = "feasibility"
	GateSecurity     GateID = "security"
	GateTestability  GateID = "testability"
)

// AllGates returns the built-in gate identifiers in execution order.
func AllGates() []GateID {
	return []GateID{
		GateCompleteness,
		GateConsistency,
		GateFeasibility,
		GateSecurity,
		GateTestability,
	}
}

// GateProfile names a gate selection. Unlike strategies and output
// formats, an unknown profile is an error rather than a silent
// fallback: profiles gate releases, so a typo must not quietly relax
// validation.
type GateProfile string

const (
	ProfileStandard   GateProfile = "standard"
	ProfileStrict     GateProfile = "strict"
	ProfileEnterprise GateProfile = "enterprise"
)

// NewGateProfile validates a profile name.
func NewGateProfile(s string) (GateProfile, error) {
	switch GateProfile(s) {
	case ProfileStandard, ProfileStrict, ProfileEnterprise:
		return GateProfile(s), nil
	default:
		return "", fmt.Errorf("unknown gate profile: %q (valid: standard, strict, enterprise)", s)
	}
}

// String returns the profile name.
func (p GateProfile) String() string {
	return string(p)
}
