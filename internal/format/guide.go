package format

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/planwright/internal/persona"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

// renderGuide produces the detailed guide: an executive summary, the
// full task tables, dependency and tooling sections, and guidance for
// the lead persona.
func renderGuide(w *plan.GeneratedWorkflow, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Implementation Guide: %s\n\n", w.Title)

	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "This plan follows the %s strategy across %d phases, led by the %s persona.",
		w.Strategy, len(w.Phases), w.Persona)
	if opts.IncludeEstimates {
		fmt.Fprintf(&b, " Total effort is estimated at %dh (%s).", w.TotalHours, w.EstimatedDuration)
	}
	b.WriteString("\n\n")

	tpl := persona.MustGet(w.Persona)
	b.WriteString("## Persona Guidance\n\n")
	fmt.Fprintf(&b, "Expertise: %s\n\n", strings.Join(tpl.Expertise, ", "))
	fmt.Fprintf(&b, "Focus areas: %s\n\n", strings.Join(tpl.FocusAreas, ", "))

	b.WriteString("## Phase Detail\n\n")
	for i, phase := range w.Phases {
		fmt.Fprintf(&b, "### Phase %d: %s\n\n", i+1, phase.Name)
		if phase.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", phase.Description)
		}

		if opts.IncludeEstimates {
			b.WriteString("| Task | Persona | Complexity | Hours | Depends On |\n")
			b.WriteString("|------|---------|------------|-------|------------|\n")
		} else {
			b.WriteString("| Task | Persona | Complexity | Depends On |\n")
			b.WriteString("|------|---------|------------|------------|\n")
		}
		for _, task := range phase.Tasks {
			deps := make([]string, len(task.DependsOn))
			for j, d := range task.DependsOn {
				deps[j] = string(d)
			}
			if opts.IncludeEstimates {
				fmt.Fprintf(&b, "| %s: %s | %s | %s | %d | %s |\n",
					task.ID, task.Title, task.Persona, task.Complexity,
					task.EstimatedHours, strings.Join(deps, ", "))
			} else {
				fmt.Fprintf(&b, "| %s: %s | %s | %s | %s |\n",
					task.ID, task.Title, task.Persona, task.Complexity,
					strings.Join(deps, ", "))
			}
		}
		b.WriteString("\n")
	}

	if w.Dependencies != nil && len(w.Dependencies.CriticalPath) > 0 {
		b.WriteString("## Critical Path\n\n")
		ids := make([]string, len(w.Dependencies.CriticalPath))
		for i, id := range w.Dependencies.CriticalPath {
			ids[i] = string(id)
		}
		fmt.Fprintf(&b, "%s\n\n", strings.Join(ids, " -> "))
		if opts.IncludeEstimates {
			fmt.Fprintf(&b, "Project duration along the path: %dh\n\n", w.Dependencies.ProjectDuration)
		}
	}

	if w.ToolPlan != nil && len(w.ToolPlan.Providers) > 0 {
		b.WriteString("## Tool Orchestration\n\n")
		for _, p := range w.ToolPlan.Providers {
			fmt.Fprintf(&b, "- %s (%s, confidence %.2f)\n", p.Name, p.Capability, p.Confidence)
		}
		b.WriteString("\n")
		if len(w.ToolPlan.Fallbacks) > 0 {
			b.WriteString("Fallback routes:\n")
			for _, route := range w.ToolPlan.Fallbacks {
				fmt.Fprintf(&b, "- %s -> %s (capability loss %.0f%%)\n",
					route.Provider, route.Fallback, route.CapabilityLoss*100)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
