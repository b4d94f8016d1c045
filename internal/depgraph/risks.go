package depgraph

import (
	"fmt"
	"sort"

	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

// Fixed risk parameters per category.
const (
	technicalRiskProbability = 0.4
	technicalRiskImpact      = 7.0
	timelineRiskProbability  = 0.3
	timelineRiskImpact       = 6.0
)

// assessRisks derives risk entries: every complex task contributes a
// technical risk with a persona-specific mitigation, and every
// critical-path task a timeline risk. Results are sorted by
// descending score with task id as tiebreaker.
func assessRisks(g *graph, s *schedule, criticalPath []domain.TaskID) []plan.Risk {
	var risks []plan.Risk

	for _, id := range g.order {
		task := g.tasks[id]
		if task.Complexity != domain.ComplexityComplex {
			continue
		}
		risks = append(risks, plan.Risk{
			Category:    "technical",
			TaskID:      id,
			Description: fmt.Sprintf("task %s is classified complex and may exceed its estimate", id),
			Probability: technicalRiskProbability,
			Impact:      technicalRiskImpact,
			Mitigation:  mitigationFor(task.Persona),
		})
	}

	onPath := make(map[domain.TaskID]bool, len(criticalPath))
	for _, id := range criticalPath {
		onPath[id] = true
	}
	for _, id := range g.order {
		if !onPath[id] {
			continue
		}
		risks = append(risks, plan.Risk{
			Category:    "timeline",
			TaskID:      id,
			Description: fmt.Sprintf("task %s is on the critical path; any delay moves the finish date", id),
			Probability: timelineRiskProbability,
			Impact:      timelineRiskImpact,
			Mitigation:  "track progress daily and keep a buffer for downstream tasks",
		})
	}

	sort.SliceStable(risks, func(i, j int) bool {
		if risks[i].Score() != risks[j].Score() {
			return risks[i].Score() > risks[j].Score()
		}
		return risks[i].TaskID < risks[j].TaskID
	})

	return risks
}

// mitigationFor returns the persona-specific mitigation for a complex
// task.
func mitigationFor(p domain.Persona) string {
	switch p {
	case domain.PersonaFrontend:
		return "prototype the interaction early and review with design"
	case domain.PersonaBackend:
		return "spike the data model and contract before full implementation"
	case domain.PersonaSecurity:
		return "run a threat-modeling session before the task starts"
	case domain.PersonaQA:
		return "define acceptance criteria and automation strategy up front"
	case domain.PersonaPerformance:
		return "establish a performance baseline and budget first"
	case domain.PersonaDevOps:
		return "rehearse the rollout in a staging environment"
	default:
		return "split the task into independently reviewable slices"
	}
}
