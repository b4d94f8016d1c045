package format

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/planwright/internal/plan"
)

// renderRoadmap produces the phase-by-phase summary: milestones,
// deliverables, and the top risks, without per-task detail.
func renderRoadmap(w *plan.GeneratedWorkflow, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", w.Title)
	fmt.Fprintf(&b, "Strategy: %s | Lead persona: %s", w.Strategy, w.Persona)
	if opts.IncludeEstimates {
		fmt.Fprintf(&b, " | Estimated: %s (%dh)", w.EstimatedDuration, w.TotalHours)
	}
	b.WriteString("\n\n")

	for i, phase := range w.Phases {
		fmt.Fprintf(&b, "## Phase %d: %s (%s)\n\n", i+1, phase.Name, phase.NominalDuration)
		if phase.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", phase.Description)
		}
		if opts.IncludeEstimates {
			fmt.Fprintf(&b, "Tasks: %d, %dh total\n\n", len(phase.Tasks), phaseHours(phase))
		} else {
			fmt.Fprintf(&b, "Tasks: %d\n\n", len(phase.Tasks))
		}

		writeList(&b, "Milestones", phase.Milestones)
		writeList(&b, "Deliverables", phase.Deliverables)
	}

	if len(w.Risks) > 0 {
		b.WriteString("## Top Risks\n\n")
		for i, risk := range w.Risks {
			if i == 5 {
				break
			}
			fmt.Fprintf(&b, "- [%s] %s (score %.1f)\n", risk.Category, risk.Description, risk.Score())
		}
		b.WriteString("\n")
	}

	if len(w.ParallelStreams) > 0 {
		b.WriteString("## Parallel Opportunities\n\n")
		for _, group := range w.ParallelStreams {
			ids := make([]string, len(group.TaskIDs))
			for i, id := range group.TaskIDs {
				ids[i] = string(id)
			}
			fmt.Fprintf(&b, "- Level %d: %s\n", group.Level, strings.Join(ids, ", "))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func phaseHours(phase plan.Phase) int {
	total := 0
	for _, task := range phase.Tasks {
		total += task.EstimatedHours
	}
	return total
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
