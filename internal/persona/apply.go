package persona

import (
	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

// Apply enriches a task slice in place with the persona template's
// tool providers and adjusted effort estimates. The work domain is
// derived per task from its assigned persona.
func Apply(tasks []plan.Task, tpl Template) {
	for i := range tasks {
		task := &tasks[i]
		domainKey := WorkDomain(task.Persona)

		task.EstimatedHours = tpl.AdjustHours(task.EstimatedHours, task.Complexity, domainKey)
		task.ToolProviders = tpl.ProvidersFor(domainKey)
	}
}

// WorkDomain maps a persona to the work domain used for estimation
// factors and provider additions.
func WorkDomain(p domain.Persona) string {
	switch p {
	case domain.PersonaFrontend:
		return "ui"
	case domain.PersonaBackend:
		return "api"
	case domain.PersonaSecurity:
		return "security"
	case domain.PersonaQA:
		return "testing"
	case domain.PersonaPerformance:
		return "performance"
	default:
		return "general"
	}
}
