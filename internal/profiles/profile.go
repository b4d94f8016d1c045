package profiles

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/errors"
	"github.com/felixgeelhaar/planwright/internal/gates"
)

// Profile is a named gate selection with execution overrides. The
// built-in profiles mirror the standard/strict/enterprise presets;
// project-level files can extend or replace them.
type Profile struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Gates lists the gate identifiers this profile runs, in order.
	Gates []string `yaml:"gates" json:"gates"`

	// GateTimeout overrides the per-gate timeout when positive.
	GateTimeout time.Duration `yaml:"gate_timeout,omitempty" json:"gate_timeout,omitempty"`

	// FailOn is the issue severity that makes the profile reject the
	// workflow: "critical" (default), "major", or "minor".
	FailOn string `yaml:"fail_on,omitempty" json:"fail_on,omitempty"`
}

// Validate checks that every referenced gate exists and the fail
// threshold is recognized.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.New(errors.ErrCodeGateProfileInvalid, "profile has no name")
	}
	if len(p.Gates) == 0 {
		return errors.New(errors.ErrCodeGateProfileInvalid,
			fmt.Sprintf("profile %q selects no gates", p.Name))
	}
	for _, id := range p.Gates {
		if _, ok := gates.Lookup(domain.GateID(id)); !ok {
			return errors.New(errors.ErrCodeGateUnknown,
				fmt.Sprintf("profile %q references unknown gate %q", p.Name, id)).
				WithSuggestion("valid gates: completeness, consistency, feasibility, security, testability")
		}
	}
	switch p.FailOn {
	case "", "critical", "major", "minor":
	default:
		return errors.New(errors.ErrCodeGateProfileInvalid,
			fmt.Sprintf("profile %q has invalid fail_on %q", p.Name, p.FailOn))
	}
	return nil
}

// GateIDs returns the selection as typed identifiers.
func (p *Profile) GateIDs() []domain.GateID {
	ids := make([]domain.GateID, len(p.Gates))
	for i, g := range p.Gates {
		ids[i] = domain.GateID(g)
	}
	return ids
}

// Merge layers an override onto the profile. Only fields the
// override actually sets replace the base values.
func (p *Profile) Merge(override *Profile) *Profile {
	merged := *p
	if override.Description != "" {
		merged.Description = override.Description
	}
	if len(override.Gates) > 0 {
		merged.Gates = override.Gates
	}
	if override.GateTimeout > 0 {
		merged.GateTimeout = override.GateTimeout
	}
	if override.FailOn != "" {
		merged.FailOn = override.FailOn
	}
	return &merged
}

// Rejects reports whether a finished report fails this profile. A
// failed blocking gate always rejects; otherwise the profile's
// severity threshold decides.
func (p *Profile) Rejects(report *gates.Report) bool {
	for _, res := range report.Results {
		if res.Blocking && !res.Passed {
			return true
		}
	}

	switch p.FailOn {
	case "minor":
		return report.Summary.CriticalIssues > 0 ||
			report.Summary.MajorIssues > 0 ||
			report.Summary.MinorIssues > 0
	case "major":
		return report.Summary.CriticalIssues > 0 || report.Summary.MajorIssues > 0
	default:
		return report.Summary.CriticalIssues > 0
	}
}
