package gates

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/log"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

// Runner executes gate selections. Safe for concurrent use; all
// state lives in the per-call report.
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a Runner. A nil logger falls back to the default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Runner{logger: logger}
}

// Run executes every gate the profile selects against the input and
// aggregates the report. A gate that times out or panics is recorded
// as failed with a synthetic critical issue; it never aborts the
// remaining gates.
func (r *Runner) Run(ctx context.Context, profile domain.GateProfile, in *Input, extra ...domain.GateID) *Report {
	report := &Report{
		Profile:     profile,
		GeneratedAt: time.Now().UTC(),
	}

	selected := GatesFor(profile, extra...)
	for _, gate := range selected {
		result := r.runGate(ctx, gate, in)
		report.Results = append(report.Results, result)
	}

	finalize(report)

	r.logger.DebugContext(ctx, "quality gates complete",
		"profile", profile.String(),
		"gates", len(selected),
		"score", report.OverallScore,
		"critical_issues", report.Summary.CriticalIssues,
	)
	return report
}

// RunSelection executes an explicit gate-id list, as resolved from a
// loaded profile file. Unknown ids are skipped; a positive timeout
// overrides every gate's own.
func (r *Runner) RunSelection(ctx context.Context, name domain.GateProfile, ids []domain.GateID, timeout time.Duration, in *Input) *Report {
	report := &Report{
		Profile:     name,
		GeneratedAt: time.Now().UTC(),
	}

	for _, id := range ids {
		gate, ok := Lookup(id)
		if !ok {
			continue
		}
		if timeout > 0 {
			gate.Timeout = timeout
		}
		report.Results = append(report.Results, r.runGate(ctx, gate, in))
	}

	finalize(report)
	return report
}

// runGate executes one gate under its own timeout with panic
// recovery.
func (r *Runner) runGate(ctx context.Context, gate Gate, in *Input) Result {
	start := time.Now()

	gateCtx, cancel := context.WithTimeout(ctx, gate.Timeout)
	defer cancel()

	done := make(chan []Issue, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- []Issue{{
					Severity:    SeverityCritical,
					Description: fmt.Sprintf("gate %s failed internally: %v", gate.ID, rec),
					Remediation: gate.Remediation,
				}}
			}
		}()
		done <- gate.check(gateCtx, in)
	}()

	var issues []Issue
	select {
	case issues = <-done:
	case <-gateCtx.Done():
		issues = []Issue{{
			Severity:    SeverityCritical,
			Description: fmt.Sprintf("gate %s exceeded its %s timeout", gate.ID, gate.Timeout),
			Remediation: gate.Remediation,
		}}
	}

	metrics := metricsFor(gate.ID, in)
	result := Result{
		Gate:     gate.ID,
		Category: gate.Category,
		Blocking: gate.Blocking,
		Passed:   passed(issues),
		Score:    scoreIssues(issues),
		Issues:   issues,
		Metrics:  metrics,
		Readings: readingsFor(gate.Metrics, metrics),
		Duration: time.Since(start),
	}
	if !result.Passed {
		result.Recommendations = append(result.Recommendations, gate.Remediation)
		r.logger.WarnContext(ctx, "quality gate failed",
			"gate", string(gate.ID),
			"score", result.Score,
			"issues", len(issues),
		)
	}
	return result
}

// readingsFor grades each observed metric against the gate's declared
// target. Metrics without an observation (e.g. overflow_days with no
// timeline) are omitted.
func readingsFor(targets []MetricTarget, observed map[string]float64) []MetricReading {
	var readings []MetricReading
	for _, target := range targets {
		value, ok := observed[target.Name]
		if !ok {
			continue
		}
		readings = append(readings, MetricReading{
			Name:     target.Name,
			Observed: value,
			Target:   target.Target,
			Status:   target.Grade(value),
		})
	}
	return readings
}

// metricsFor reports the observed values behind each gate's metric
// targets.
func metricsFor(id domain.GateID, in *Input) map[string]float64 {
	w := in.Workflow
	switch id {
	case domain.GateCompleteness:
		empty := 0
		for _, p := range w.Phases {
			if len(p.Tasks) == 0 {
				empty++
			}
		}
		return map[string]float64{
			"phase_count":  float64(len(w.Phases)),
			"empty_phases": float64(empty),
		}
	case domain.GateConsistency:
		personas := make(map[domain.Persona]bool)
		for _, t := range w.AllTasks() {
			personas[t.Persona] = true
		}
		return map[string]float64{
			"distinct_personas":    float64(len(personas)),
			"unknown_dependencies": float64(len(in.UnknownDependencies)),
		}
	case domain.GateFeasibility:
		total := 0
		for _, t := range w.AllTasks() {
			total += t.EstimatedHours
		}
		m := map[string]float64{"total_hours": float64(total)}
		if in.TimelineDays > 0 {
			available := in.TimelineDays * plan.HoursPerDay
			overflow := 0.0
			if total > available {
				overflow = float64(total-available) / float64(plan.HoursPerDay)
			}
			m["available_hours"] = float64(available)
			m["overflow_days"] = overflow
		}
		return m
	case domain.GateSecurity:
		count := 0
		for _, t := range w.AllTasks() {
			if t.Persona == domain.PersonaSecurity {
				count++
			}
		}
		return map[string]float64{"security_tasks": float64(count)}
	case domain.GateTestability:
		return map[string]float64{"test_ratio": testRatio(w)}
	default:
		return nil
	}
}

// finalize computes the aggregate score and summary tallies.
func finalize(report *Report) {
	if len(report.Results) == 0 {
		return
	}

	total := 0
	for _, res := range report.Results {
		total += res.Score
		if res.Passed {
			report.Summary.Passed++
		} else {
			report.Summary.Failed++
			report.Summary.ImprovementAreas = append(report.Summary.ImprovementAreas, res.Category)
		}
		for _, issue := range res.Issues {
			switch issue.Severity {
			case SeverityCritical:
				report.Summary.CriticalIssues++
			case SeverityMajor:
				report.Summary.MajorIssues++
			case SeverityMinor:
				report.Summary.MinorIssues++
			}
		}
	}
	report.OverallScore = float64(total) / float64(len(report.Results))
	report.Summary.ImprovementAreas = dedupe(report.Summary.ImprovementAreas)
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
