package gates

import (
	"context"
	"time"

	"github.com/felixgeelhaar/planwright/internal/domain"
)

// Gate is one named validation rule. The registry is built once at
// process start and never mutated afterwards.
type Gate struct {
	ID          domain.GateID
	Category    string
	Blocking    bool
	Timeout     time.Duration
	Remediation string
	Metrics     []MetricTarget

	check func(ctx context.Context, in *Input) []Issue
}

const defaultGateTimeout = 5 * time.Second

// registry holds the built-in gates in execution order.
var registry = buildRegistry()

func buildRegistry() []Gate {
	return []Gate{
		{
			ID:          domain.GateCompleteness,
			Category:    "structure",
			Blocking:    true,
			Timeout:     defaultGateTimeout,
			Remediation: "add phases and tasks until every phase has described work",
			Metrics: []MetricTarget{
				{Name: "phase_count", Target: 2, Warning: 1, Critical: 0},
				{Name: "empty_phases", Target: 0, Warning: 1, Critical: 2},
			},
			check: checkCompleteness,
		},
		{
			ID:          domain.GateConsistency,
			Category:    "structure",
			Blocking:    false,
			Timeout:     defaultGateTimeout,
			Remediation: "consolidate task ownership and fix dangling dependency references",
			Metrics: []MetricTarget{
				{Name: "distinct_personas", Target: 3, Warning: 4, Critical: 6},
				{Name: "unknown_dependencies", Target: 0, Warning: 1, Critical: 3},
			},
			check: checkConsistency,
		},
		{
			ID:          domain.GateFeasibility,
			Category:    "planning",
			Blocking:    true,
			Timeout:     defaultGateTimeout,
			Remediation: "cut scope, extend the timeline, or add parallel capacity",
			Metrics: []MetricTarget{
				{Name: "overflow_days", Target: 0, Warning: 2, Critical: 5},
			},
			check: checkFeasibility,
		},
		{
			ID:          domain.GateSecurity,
			Category:    "coverage",
			Blocking:    false,
			Timeout:     defaultGateTimeout,
			Remediation: "add at least one security-owned task (threat model, auth review, dependency audit)",
			Metrics: []MetricTarget{
				{Name: "security_tasks", Target: 1, Warning: 0, Critical: 0},
			},
			check: checkSecurity,
		},
		{
			ID:          domain.GateTestability,
			Category:    "coverage",
			Blocking:    false,
			Timeout:     defaultGateTimeout,
			Remediation: "plan test tasks alongside implementation; aim for at least one in five",
			Metrics: []MetricTarget{
				{Name: "test_ratio", Target: 0.2, Warning: 0.15, Critical: 0.05},
			},
			check: checkTestability,
		},
	}
}

// profileGates maps a profile to the gates it runs, in registry
// order. Standard covers structure and planning; strict adds the
// testability coverage gate; enterprise runs everything.
var profileGates = map[domain.GateProfile][]domain.GateID{
	domain.ProfileStandard: {
		domain.GateCompleteness,
		domain.GateConsistency,
		domain.GateFeasibility,
	},
	domain.ProfileStrict: {
		domain.GateCompleteness,
		domain.GateConsistency,
		domain.GateFeasibility,
		domain.GateTestability,
	},
	domain.ProfileEnterprise: {
		domain.GateCompleteness,
		domain.GateConsistency,
		domain.GateFeasibility,
		domain.GateSecurity,
		domain.GateTestability,
	},
}

// GatesFor returns the gates a profile selects. An extra id list
// (from a loaded profile override or a persona template) extends the
// selection without duplicates.
func GatesFor(profile domain.GateProfile, extra ...domain.GateID) []Gate {
	ids := profileGates[profile]
	if ids == nil {
		ids = profileGates[domain.ProfileStandard]
	}

	want := make(map[domain.GateID]bool, len(ids)+len(extra))
	for _, id := range ids {
		want[id] = true
	}
	for _, id := range extra {
		want[id] = true
	}

	var selected []Gate
	for _, g := range registry {
		if want[g.ID] {
			selected = append(selected, g)
		}
	}
	return selected
}

// Lookup returns the gate with the given id.
func Lookup(id domain.GateID) (Gate, bool) {
	for _, g := range registry {
		if g.ID == id {
			return g, true
		}
	}
	return Gate{}, false
}
