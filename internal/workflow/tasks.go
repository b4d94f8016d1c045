package workflow

import (
	"strings"

	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/extract"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

// Base effort hours per complexity tier for generated tasks, before
// the persona template's estimation factors apply.
func baseHours(c domain.Complexity) int {
	switch c {
	case domain.ComplexitySimple:
		return 4
	case domain.ComplexityComplex:
		return 16
	default:
		return 8
	}
}

// fillTasks produces the task list for one phase from the extracted
// document. Pattern tasks inside a phase are chained; tasks derived
// from individual requirements stay independent so the analyzer can
// surface them as parallel work.
func fillTasks(tpl phaseTemplate, doc *extract.Result, primary domain.Persona, ids domain.IDGenerator) []plan.Task {
	switch tpl.intent {
	case intentDiscover:
		return chain(
			newTask(ids, "Clarify requirements and scope",
				"Walk the requirement inventory with stakeholders and close open questions.",
				domain.PersonaArchitect, domain.ComplexitySimple),
			newTask(ids, "Map constraints and assumptions",
				"Record delivery constraints and validate the assumptions the plan rests on.",
				domain.PersonaArchitect, domain.ComplexitySimple),
		)
	case intentDesign:
		return chain(
			newTask(ids, "Design system architecture",
				"Lay out components, data flow, and failure handling for the planned scope.",
				domain.PersonaArchitect, doc.Complexity),
			newTask(ids, "Define interface contracts",
				"Pin down the contracts between components before implementation starts.",
				primary, doc.Complexity),
		)
	case intentBuild:
		return buildTasks(doc, primary, ids)
	case intentVerify:
		return verifyTasks(doc, ids)
	case intentRelease:
		return chain(
			newTask(ids, "Prepare rollout and runbook",
				"Script the deployment, rollback, and operational handover.",
				domain.PersonaDevOps, domain.ComplexityModerate),
			newTask(ids, "Set up post-release monitoring",
				"Wire dashboards and alerts for the shipped functionality.",
				domain.PersonaDevOps, domain.ComplexitySimple),
		)
	default:
		return nil
	}
}

// buildTasks derives one implementation task per functional and
// technical requirement. A document with no requirements still gets
// one core task so the workflow is never empty.
func buildTasks(doc *extract.Result, primary domain.Persona, ids domain.IDGenerator) []plan.Task {
	reqs := append(append([]extract.Requirement(nil),
		doc.Requirements.Functional...),
		doc.Requirements.Technical...)

	if len(reqs) == 0 {
		return []plan.Task{newTask(ids, "Implement core functionality",
			"The document yielded no discrete requirements; build the core capability it describes.",
			primary, doc.Complexity)}
	}

	tasks := make([]plan.Task, 0, len(reqs))
	for _, req := range reqs {
		task := newTask(ids, "Implement: "+summarize(req.Content),
			req.Content, primary, doc.Complexity)
		task.AcceptanceCriteria = req.AcceptanceCriteria
		tasks = append(tasks, task)
	}
	return tasks
}

// verifyTasks derives one validation task per non-functional
// requirement plus a fixed regression pass, and a security review
// whenever the document touches security at all.
func verifyTasks(doc *extract.Result, ids domain.IDGenerator) []plan.Task {
	var tasks []plan.Task
	for _, req := range doc.Requirements.NonFunctional {
		task := newTask(ids, "Validate: "+summarize(req.Content),
			req.Content, domain.PersonaQA, domain.ComplexityModerate)
		task.AcceptanceCriteria = req.AcceptanceCriteria
		tasks = append(tasks, task)
	}

	tasks = append(tasks, newTask(ids, "Run integration and regression test pass",
		"Exercise the assembled system against every acceptance criterion.",
		domain.PersonaQA, domain.ComplexityModerate))

	if mentionsSecurity(doc) {
		tasks = append(tasks, newTask(ids, "Security review of the release candidate",
			"Review authentication, authorization, and data handling before release.",
			domain.PersonaSecurity, domain.ComplexityModerate))
	}
	return tasks
}

func mentionsSecurity(doc *extract.Result) bool {
	if doc.RecommendedPersona == domain.PersonaSecurity {
		return true
	}
	for _, req := range doc.Requirements.All() {
		if strings.Contains(strings.ToLower(req.Content), "security") {
			return true
		}
	}
	return false
}

func newTask(ids domain.IDGenerator, title, description string, p domain.Persona, c domain.Complexity) plan.Task {
	return plan.Task{
		ID:             ids.TaskID(),
		Title:          title,
		Description:    description,
		Persona:        p,
		Complexity:     c,
		EstimatedHours: baseHours(c),
	}
}

// chain links pattern tasks sequentially within a phase.
func chain(tasks ...plan.Task) []plan.Task {
	for i := 1; i < len(tasks); i++ {
		tasks[i].DependsOn = []domain.TaskID{tasks[i-1].ID}
	}
	return tasks
}

const summaryLimit = 60

// summarize shortens requirement text into a task title.
func summarize(content string) string {
	content = strings.TrimSpace(content)
	if len(content) <= summaryLimit {
		return content
	}
	cut := strings.LastIndex(content[:summaryLimit], " ")
	if cut <= 0 {
		cut = summaryLimit
	}
	return content[:cut] + "..."
}
