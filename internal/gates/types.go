package gates

import (
	"time"

	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

// IssueSeverity grades a single finding inside a gate result.
type IssueSeverity string

const (
	SeverityCritical IssueSeverity = "critical"
	SeverityMajor    IssueSeverity = "major"
	SeverityMinor    IssueSeverity = "minor"
)

// Score penalties per issue severity, subtracted from a starting
// score of 100 and clamped at zero.
const (
	penaltyCritical = 40
	penaltyMajor    = 20
	penaltyMinor    = 10
)

// Issue is one finding produced by a gate.
type Issue struct {
	Severity    IssueSeverity `json:"severity"`
	Description string        `json:"description"`
	Remediation string        `json:"remediation,omitempty"`
}

// MetricTarget declares the thresholds a gate reports against.
type MetricTarget struct {
	Name     string  `json:"name"`
	Target   float64 `json:"target"`
	Warning  float64 `json:"warning"`
	Critical float64 `json:"critical"`
}

// MetricStatus grades an observed metric value against its target's
// thresholds.
type MetricStatus string

const (
	MetricOK       MetricStatus = "ok"
	MetricWarning  MetricStatus = "warning"
	MetricCritical MetricStatus = "critical"
)

// Grade compares an observed value to the thresholds. Thresholds
// below the target make it a floor (higher is better, e.g.
// test_ratio); thresholds above make it a ceiling (lower is better,
// e.g. overflow_days).
func (m MetricTarget) Grade(observed float64) MetricStatus {
	if m.Warning < m.Target {
		switch {
		case observed <= m.Critical:
			return MetricCritical
		case observed <= m.Warning:
			return MetricWarning
		}
		return MetricOK
	}
	switch {
	case observed >= m.Critical:
		return MetricCritical
	case observed >= m.Warning:
		return MetricWarning
	}
	return MetricOK
}

// MetricReading pairs an observed value with the target it is
// measured against.
type MetricReading struct {
	Name     string       `json:"name"`
	Observed float64      `json:"observed"`
	Target   float64      `json:"target"`
	Status   MetricStatus `json:"status"`
}

// Input bundles everything the gates inspect. Gates treat it as
// read-only.
type Input struct {
	Workflow *plan.GeneratedWorkflow

	// TimelineDays is the caller-supplied timeline constraint in
	// working days, zero when no constraint was given.
	TimelineDays int

	// UnknownDependencies carries dependency ids the analyzer could
	// not resolve, surfaced here as consistency findings instead of
	// analyzer failures.
	UnknownDependencies []domain.TaskID
}

// Result is the outcome of one executed gate.
type Result struct {
	Gate            domain.GateID      `json:"gate"`
	Category        string             `json:"category"`
	Blocking        bool               `json:"blocking"`
	Passed          bool               `json:"passed"`
	Score           int                `json:"score"`
	Issues          []Issue            `json:"issues,omitempty"`
	Metrics         map[string]float64 `json:"metrics,omitempty"`
	Readings        []MetricReading    `json:"metric_readings,omitempty"`
	Recommendations []string           `json:"recommendations,omitempty"`
	Evidence        []string           `json:"evidence,omitempty"`
	Duration        time.Duration      `json:"duration"`
}

// Summary tallies a report.
type Summary struct {
	Passed           int      `json:"passed"`
	Failed           int      `json:"failed"`
	CriticalIssues   int      `json:"critical_issues"`
	MajorIssues      int      `json:"major_issues"`
	MinorIssues      int      `json:"minor_issues"`
	ImprovementAreas []string `json:"improvement_areas,omitempty"`
}

// Report aggregates all executed gates.
type Report struct {
	Profile      domain.GateProfile `json:"profile"`
	OverallScore float64            `json:"overall_score"`
	Results      []Result           `json:"results"`
	Summary      Summary            `json:"summary"`
	GeneratedAt  time.Time          `json:"generated_at"`
}

// Acceptable reports whether the workflow clears the profile: no
// critical issue may remain, regardless of profile.
func (r *Report) Acceptable() bool {
	return r.Summary.CriticalIssues == 0
}

// scoreIssues computes a gate score from its findings.
func scoreIssues(issues []Issue) int {
	score := 100
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityCritical:
			score -= penaltyCritical
		case SeverityMajor:
			score -= penaltyMajor
		case SeverityMinor:
			score -= penaltyMinor
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

// passed reports whether a finding set clears the gate: minor issues
// alone do not fail it.
func passed(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityCritical || issue.Severity == SeverityMajor {
			return false
		}
	}
	return true
}
