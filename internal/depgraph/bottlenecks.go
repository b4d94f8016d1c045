package depgraph

import (
	"fmt"

	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

// Resource and fan-out thresholds for bottleneck detection.
const (
	resourceWarningHours  = 80
	resourceCriticalHours = 160
	fanLimit              = 3
)

// findBottlenecks detects two bottleneck kinds: personas carrying a
// schedule-overlapping workload past the hour thresholds, and nodes
// with excessive dependency fan-in or fan-out.
func findBottlenecks(g *graph, s *schedule) []plan.Bottleneck {
	var bottlenecks []plan.Bottleneck

	// Resource bottlenecks: group tasks by persona.
	byPersona := make(map[domain.Persona][]domain.TaskID)
	for _, id := range g.order {
		p := g.tasks[id].Persona
		byPersona[p] = append(byPersona[p], id)
	}

	for _, p := range domain.AllPersonas() {
		ids := byPersona[p]
		if len(ids) < 2 {
			continue
		}

		total := 0
		for _, id := range ids {
			total += g.duration(id)
		}
		if total <= resourceWarningHours || !anyOverlap(s, ids) {
			continue
		}

		severity := "warning"
		if total > resourceCriticalHours {
			severity = "critical"
		}
		bottlenecks = append(bottlenecks, plan.Bottleneck{
			Kind:        "resource",
			Severity:    severity,
			Persona:     p,
			TaskIDs:     append([]domain.TaskID(nil), ids...),
			Description: fmt.Sprintf("%s persona carries %dh of overlapping work", p, total),
		})
	}

	// Dependency bottlenecks: more than fanLimit incoming or outgoing
	// edges. Critical severity when the node sits on the critical path.
	for _, id := range g.order {
		in := len(g.incoming[id])
		out := len(g.outgoing[id])
		if in <= fanLimit && out <= fanLimit {
			continue
		}

		severity := "warning"
		if s.nodes[id].Critical {
			severity = "critical"
		}
		bottlenecks = append(bottlenecks, plan.Bottleneck{
			Kind:        "dependency",
			Severity:    severity,
			TaskIDs:     []domain.TaskID{id},
			Description: fmt.Sprintf("task %s has %d incoming and %d outgoing dependencies", id, in, out),
		})
	}

	return bottlenecks
}

// anyOverlap reports whether any two of the tasks overlap in the
// computed schedule.
func anyOverlap(s *schedule, ids []domain.TaskID) bool {
	for i := 0; i < len(ids); i++ {
		a := s.nodes[ids[i]]
		for j := i + 1; j < len(ids); j++ {
			b := s.nodes[ids[j]]
			if a.EarliestStart < b.EarliestStart+b.Duration &&
				b.EarliestStart < a.EarliestStart+a.Duration {
				return true
			}
		}
	}
	return false
}
