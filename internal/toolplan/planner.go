package toolplan

import (
	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/extract"
	"github.com/felixgeelhaar/planwright/internal/log"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

// Planner builds tool-orchestration plans. Stateless; the catalog and
// trigger tables are read-only after initialization, so concurrent
// calls need no coordination.
type Planner struct {
	logger *log.Logger
}

// NewPlanner creates a Planner. A nil logger falls back to the
// default.
func NewPlanner(logger *log.Logger) *Planner {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Planner{logger: logger}
}

// Plan scores the document's aggregate needs, selects the providers
// that clear the confidence and affinity thresholds, and lays out
// orchestration steps, a parallelization plan, and fallback routes.
// A document that triggers nothing yields an empty but non-nil plan.
func (p *Planner) Plan(set *extract.RequirementSet, primary domain.Persona, phases []plan.Phase) *plan.ToolOrchestrationPlan {
	scores := analyzeNeeds(set)
	selected := selectProviders(scores, primary)

	out := &plan.ToolOrchestrationPlan{
		Providers: make([]plan.SelectedProvider, 0, len(selected)),
		Steps:     []plan.OrchestrationStep{},
	}
	for _, spec := range selected {
		out.Providers = append(out.Providers, plan.SelectedProvider{
			Name:       spec.Name,
			Capability: string(spec.Capability),
			Confidence: spec.Confidence,
			Persona:    primary,
		})
	}

	out.Steps = buildSteps(selected, phases)
	out.ParallelGroups = parallelizable(selected)
	for _, spec := range selected {
		out.Fallbacks = append(out.Fallbacks, plan.FallbackRoute{
			Provider:       spec.Name,
			Fallback:       spec.Fallback,
			CapabilityLoss: spec.CapabilityLoss,
		})
	}

	p.logger.Debug("tool orchestration planned",
		"providers", len(out.Providers),
		"steps", len(out.Steps),
	)
	return out
}

// selectProviders picks catalog entries whose need score, confidence,
// and persona affinity clear the thresholds, in catalog order.
func selectProviders(scores map[Need]float64, primary domain.Persona) []providerSpec {
	var selected []providerSpec
	for _, spec := range catalog {
		if scores[spec.Capability] < needScoreThreshold {
			continue
		}
		if spec.Confidence < confidenceThreshold {
			continue
		}
		if spec.affinityFor(primary) < affinityThreshold {
			continue
		}
		selected = append(selected, spec)
	}
	return selected
}

// buildSteps pairs each phase with the selected providers its tasks
// reference. A phase whose tasks carry no provider hints is paired
// with every selected provider so no phase goes uncovered.
func buildSteps(selected []providerSpec, phases []plan.Phase) []plan.OrchestrationStep {
	steps := []plan.OrchestrationStep{}
	order := 1

	for _, phase := range phases {
		referenced := make(map[string]bool)
		for _, task := range phase.Tasks {
			for _, name := range task.ToolProviders {
				referenced[name] = true
			}
		}

		for _, spec := range selected {
			if len(referenced) > 0 && !referenced[spec.Name] {
				continue
			}
			steps = append(steps, plan.OrchestrationStep{
				Order:    order,
				PhaseID:  phase.ID,
				Provider: spec.Name,
				Purpose:  spec.Purpose,
			})
			order++
		}
	}
	return steps
}

// parallelizable groups providers that can run independently. Every
// catalog entry serves a distinct capability, so all selected
// providers form one parallel group when there are at least two.
func parallelizable(selected []providerSpec) [][]string {
	if len(selected) < 2 {
		return nil
	}
	group := make([]string, 0, len(selected))
	for _, spec := range selected {
		group = append(group, spec.Name)
	}
	return [][]string{group}
}
