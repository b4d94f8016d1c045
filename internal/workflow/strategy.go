package workflow

import "github.com/felixgeelhaar/planwright/internal/domain"

// phaseIntent tags what a phase is for; task patterns key off it.
type phaseIntent int

const (
	intentDiscover phaseIntent = iota
	intentDesign
	intentBuild
	intentVerify
	intentRelease
)

// phaseTemplate is one entry of a strategy's static phase list. The
// task list starts empty and is filled per document.
type phaseTemplate struct {
	id              string
	name            string
	description     string
	nominalDuration string
	milestones      []string
	deliverables    []string
	intent          phaseIntent
}

// phaseTemplates returns the ordered phase skeleton for a strategy.
// The tables are static; callers receive a fresh slice header but
// must not mutate the shared entries.
func phaseTemplates(s domain.Strategy) []phaseTemplate {
	switch s {
	case domain.StrategyAgile:
		return agilePhases
	case domain.StrategyMVP:
		return mvpPhases
	default:
		return systematicPhases
	}
}

var systematicPhases = []phaseTemplate{
	{
		id:              "phase-discovery",
		name:            "Discovery & Requirements",
		description:     "Clarify scope, constraints, and success criteria before any build work starts.",
		nominalDuration: "1 week",
		milestones:      []string{"Requirements signed off"},
		deliverables:    []string{"Requirement inventory", "Constraint register"},
		intent:          intentDiscover,
	},
	{
		id:              "phase-design",
		name:            "Architecture & Design",
		description:     "Settle the system structure and interface contracts.",
		nominalDuration: "1 week",
		milestones:      []string{"Architecture review passed"},
		deliverables:    []string{"Architecture outline", "Interface contracts"},
		intent:          intentDesign,
	},
	{
		id:              "phase-build",
		name:            "Implementation",
		description:     "Build the planned functionality requirement by requirement.",
		nominalDuration: "3 weeks",
		milestones:      []string{"Feature complete"},
		deliverables:    []string{"Working implementation"},
		intent:          intentBuild,
	},
	{
		id:              "phase-verify",
		name:            "Verification",
		description:     "Prove the implementation against its acceptance criteria and quality attributes.",
		nominalDuration: "1 week",
		milestones:      []string{"All gates green"},
		deliverables:    []string{"Test report"},
		intent:          intentVerify,
	},
	{
		id:              "phase-release",
		name:            "Rollout",
		description:     "Ship, observe, and hand over.",
		nominalDuration: "1 week",
		milestones:      []string{"In production"},
		deliverables:    []string{"Runbook", "Monitoring dashboard"},
		intent:          intentRelease,
	},
}

var agilePhases = []phaseTemplate{
	{
		id:              "phase-foundations",
		name:            "Sprint 0: Foundations",
		description:     "Just enough architecture and tooling to start delivering.",
		nominalDuration: "1 week",
		milestones:      []string{"Walking skeleton running"},
		deliverables:    []string{"Project skeleton", "Delivery pipeline"},
		intent:          intentDesign,
	},
	{
		id:              "phase-delivery",
		name:            "Iterative Delivery",
		description:     "Deliver requirements in thin vertical slices with continuous feedback.",
		nominalDuration: "4 weeks",
		milestones:      []string{"Each increment demoed"},
		deliverables:    []string{"Shippable increments"},
		intent:          intentBuild,
	},
	{
		id:              "phase-hardening",
		name:            "Hardening & Release",
		description:     "Stabilize, verify quality attributes, and release.",
		nominalDuration: "1 week",
		milestones:      []string{"Release cut"},
		deliverables:    []string{"Release notes", "Test report"},
		intent:          intentVerify,
	},
}

var mvpPhases = []phaseTemplate{
	{
		id:              "phase-core",
		name:            "Core Build",
		description:     "Implement only what proves the product hypothesis.",
		nominalDuration: "2 weeks",
		milestones:      []string{"Core journey works end to end"},
		deliverables:    []string{"Minimum viable product"},
		intent:          intentBuild,
	},
	{
		id:              "phase-launch",
		name:            "Launch & Learn",
		description:     "Ship to first users and instrument for learning.",
		nominalDuration: "1 week",
		milestones:      []string{"First users onboarded"},
		deliverables:    []string{"Launch checklist", "Usage metrics"},
		intent:          intentRelease,
	},
}
