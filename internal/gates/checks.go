package gates

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

// checkCompleteness verifies the workflow has substance: at least one
// phase, no empty phases, and no task without a description.
func checkCompleteness(_ context.Context, in *Input) []Issue {
	var issues []Issue

	if len(in.Workflow.Phases) == 0 {
		return []Issue{{
			Severity:    SeverityCritical,
			Description: "workflow has no phases",
			Remediation: "generation must produce at least one phase; regenerate from a richer document",
		}}
	}

	for _, phase := range in.Workflow.Phases {
		if len(phase.Tasks) == 0 {
			issues = append(issues, Issue{
				Severity:    SeverityMajor,
				Description: fmt.Sprintf("phase %q has no tasks", phase.Name),
				Remediation: "add tasks or remove the phase",
			})
		}
		for _, task := range phase.Tasks {
			if strings.TrimSpace(task.Description) == "" {
				issues = append(issues, Issue{
					Severity:    SeverityMinor,
					Description: fmt.Sprintf("task %s has no description", task.ID),
				})
			}
		}
	}
	return issues
}

// checkConsistency flags persona fragmentation and dangling
// dependency references.
func checkConsistency(_ context.Context, in *Input) []Issue {
	var issues []Issue

	personas := make(map[domain.Persona]bool)
	for _, task := range in.Workflow.AllTasks() {
		personas[task.Persona] = true
	}
	if len(personas) > 3 {
		issues = append(issues, Issue{
			Severity:    SeverityMinor,
			Description: fmt.Sprintf("workflow spreads across %d personas; coordination overhead grows past three", len(personas)),
			Remediation: "merge adjacent specializations or split the workflow",
		})
	}

	for _, id := range in.UnknownDependencies {
		issues = append(issues, Issue{
			Severity:    SeverityMajor,
			Description: fmt.Sprintf("dependency references unknown task %s", id),
			Remediation: "fix or remove the dangling reference",
		})
	}
	return issues
}

// checkFeasibility compares total estimated hours against the
// timeline constraint. Overflow beyond 20% of the available hours is
// a critical finding with the delay estimated in working days.
func checkFeasibility(_ context.Context, in *Input) []Issue {
	if in.TimelineDays <= 0 {
		return nil
	}

	total := 0
	for _, task := range in.Workflow.AllTasks() {
		total += task.EstimatedHours
	}

	available := in.TimelineDays * plan.HoursPerDay
	if float64(total) <= float64(available)*1.2 {
		return nil
	}

	overflowDays := int(math.Ceil(float64(total-available) / float64(plan.HoursPerDay)))
	return []Issue{{
		Severity: SeverityCritical,
		Description: fmt.Sprintf("estimated %dh exceeds the %dh available in %d days; roughly %d days over",
			total, available, in.TimelineDays, overflowDays),
		Remediation: "cut scope or extend the timeline",
	}}
}

// checkSecurity requires at least one security-attributable task.
func checkSecurity(_ context.Context, in *Input) []Issue {
	for _, task := range in.Workflow.AllTasks() {
		if task.Persona == domain.PersonaSecurity {
			return nil
		}
		text := strings.ToLower(task.Title + " " + task.Description)
		if strings.Contains(text, "security") {
			return nil
		}
	}
	return []Issue{{
		Severity:    SeverityMajor,
		Description: "no task addresses security",
		Remediation: "add a security review or threat-modeling task",
	}}
}

// checkTestability requires at least 20% of tasks to be QA-owned or
// test-titled.
func checkTestability(_ context.Context, in *Input) []Issue {
	tasks := in.Workflow.AllTasks()
	if len(tasks) == 0 {
		return nil
	}

	testable := 0
	for _, task := range tasks {
		if task.Persona == domain.PersonaQA || strings.Contains(strings.ToLower(task.Title), "test") {
			testable++
		}
	}

	ratio := float64(testable) / float64(len(tasks))
	if ratio >= 0.2 {
		return nil
	}
	return []Issue{{
		Severity: SeverityMajor,
		Description: fmt.Sprintf("only %d of %d tasks are test-related (%.0f%%, minimum 20%%)",
			testable, len(tasks), ratio*100),
		Remediation: "add test tasks for each implementation phase",
	}}
}

// testRatio is exposed for metric reporting.
func testRatio(w *plan.GeneratedWorkflow) float64 {
	tasks := w.AllTasks()
	if len(tasks) == 0 {
		return 0
	}
	testable := 0
	for _, task := range tasks {
		if task.Persona == domain.PersonaQA || strings.Contains(strings.ToLower(task.Title), "test") {
			testable++
		}
	}
	return float64(testable) / float64(len(tasks))
}
