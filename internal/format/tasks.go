package format

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/planwright/internal/plan"
)

// renderTasks produces the per-task breakdown: every task with its
// metadata and acceptance criteria, grouped by phase.
func renderTasks(w *plan.GeneratedWorkflow, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Task Breakdown: %s\n\n", w.Title)

	for _, phase := range w.Phases {
		fmt.Fprintf(&b, "## %s\n\n", phase.Name)

		for _, task := range phase.Tasks {
			fmt.Fprintf(&b, "### %s: %s\n\n", task.ID, task.Title)
			if task.Description != "" {
				fmt.Fprintf(&b, "%s\n\n", task.Description)
			}

			fmt.Fprintf(&b, "- Persona: %s\n", task.Persona)
			fmt.Fprintf(&b, "- Complexity: %s\n", task.Complexity)
			if opts.IncludeEstimates {
				fmt.Fprintf(&b, "- Estimated: %dh\n", task.EstimatedHours)
			}
			if len(task.DependsOn) > 0 {
				deps := make([]string, len(task.DependsOn))
				for i, d := range task.DependsOn {
					deps[i] = string(d)
				}
				fmt.Fprintf(&b, "- Depends on: %s\n", strings.Join(deps, ", "))
			}
			if len(task.ToolProviders) > 0 {
				fmt.Fprintf(&b, "- Tool providers: %s\n", strings.Join(task.ToolProviders, ", "))
			}
			b.WriteString("\n")

			if len(task.AcceptanceCriteria) > 0 {
				b.WriteString("Acceptance criteria:\n")
				for _, c := range task.AcceptanceCriteria {
					fmt.Fprintf(&b, "- %s\n", c)
				}
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
