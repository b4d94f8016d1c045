package workflow

import (
	"context"
	"time"

	"github.com/felixgeelhaar/planwright/internal/depgraph"
	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/extract"
	"github.com/felixgeelhaar/planwright/internal/fingerprint"
	"github.com/felixgeelhaar/planwright/internal/gates"
	"github.com/felixgeelhaar/planwright/internal/log"
	"github.com/felixgeelhaar/planwright/internal/persona"
	"github.com/felixgeelhaar/planwright/internal/plan"
	"github.com/felixgeelhaar/planwright/internal/toolplan"
)

// Generator turns an extraction result into a phased workflow. One
// Generate call owns its whole object graph; concurrent calls need no
// coordination because the strategy and persona tables are read-only.
type Generator struct {
	logger   *log.Logger
	ids      domain.IDGenerator
	analyzer *depgraph.Analyzer
	planner  *toolplan.Planner
}

// NewGenerator creates a Generator. Nil arguments fall back to the
// default logger and random id generation.
func NewGenerator(logger *log.Logger, ids domain.IDGenerator) *Generator {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	if ids == nil {
		ids = domain.NewRandomIDGenerator()
	}
	return &Generator{
		logger:   logger,
		ids:      ids,
		analyzer: depgraph.NewAnalyzer(logger),
		planner:  toolplan.NewPlanner(logger),
	}
}

// Generate assembles the workflow: strategy phases filled with tasks,
// persona estimation applied, then dependency analysis and tool
// orchestration attached per the options. It never fails; malformed
// input degrades to a minimal single-phase workflow.
func (g *Generator) Generate(ctx context.Context, doc *extract.Result, opts Options) *plan.GeneratedWorkflow {
	strategy := domain.ParseStrategy(opts.Strategy)
	primary := doc.RecommendedPersona
	if primary == "" {
		primary = domain.PersonaArchitect
	}
	tpl := persona.MustGet(primary)

	w := &plan.GeneratedWorkflow{
		ID:        g.ids.WorkflowID(),
		Title:     title(doc),
		Strategy:  strategy,
		Persona:   primary,
		CreatedAt: time.Now().UTC(),
		CreatedBy: opts.CreatedBy,
	}

	for _, pt := range phaseTemplates(strategy) {
		phase := plan.Phase{
			ID:              pt.id,
			Name:            pt.name,
			Description:     pt.description,
			NominalDuration: pt.nominalDuration,
			Tasks:           fillTasks(pt, doc, primary, g.ids),
			Deliverables:    pt.deliverables,
		}
		if opts.CreateMilestones {
			phase.Milestones = pt.milestones
		}

		persona.Apply(phase.Tasks, tpl)
		addProviders(phase.Tasks, opts.ToolProviders)
		for i := range phase.Tasks {
			phase.Tasks[i].PhaseID = phase.ID
		}
		w.Phases = append(w.Phases, phase)
	}

	// Estimates are always computed; the include flag only controls
	// how the formatter reports them.
	for _, task := range w.AllTasks() {
		w.TotalHours += task.EstimatedHours
	}
	w.EstimatedDuration = plan.FormatDuration(w.TotalHours)

	if opts.IncludeDependencies || opts.IncludeRisks || opts.IdentifyParallel {
		analysis := g.analyzer.Analyze(w.Phases)
		if opts.IncludeDependencies {
			w.Dependencies = analysis
		}
		if opts.IncludeRisks {
			w.Risks = analysis.Risks
		}
		if opts.IdentifyParallel {
			w.ParallelStreams = analysis.ParallelGroups
		}
	}

	w.ToolPlan = g.planner.Plan(&doc.Requirements, primary, w.Phases)

	if fp, err := fingerprint.Workflow(w); err == nil {
		w.Fingerprint = fp
	} else {
		g.logger.WarnContext(ctx, "workflow fingerprint failed", "error", err)
	}

	g.logger.InfoContext(ctx, "workflow generated",
		"workflow_id", string(w.ID),
		"strategy", strategy.String(),
		"persona", string(primary),
		"phases", len(w.Phases),
		"tasks", len(w.AllTasks()),
		"total_hours", w.TotalHours,
	)
	return w
}

// GateInput prepares the quality-validator input for a generated
// workflow. Unknown dependency ids come from the attached analysis
// when present, otherwise from a fresh one.
func (g *Generator) GateInput(w *plan.GeneratedWorkflow, opts Options) *gates.Input {
	analysis := w.Dependencies
	if analysis == nil {
		analysis = g.analyzer.Analyze(w.Phases)
	}
	return &gates.Input{
		Workflow:            w,
		TimelineDays:        opts.TimelineDays,
		UnknownDependencies: analysis.UnknownDependencies,
	}
}

func title(doc *extract.Result) string {
	if doc.Title != "" {
		return doc.Title
	}
	return "Untitled Workflow"
}

// addProviders appends caller-requested provider identifiers to every
// task, skipping duplicates.
func addProviders(tasks []plan.Task, extra []string) {
	if len(extra) == 0 {
		return
	}
	for i := range tasks {
		have := make(map[string]bool, len(tasks[i].ToolProviders))
		for _, p := range tasks[i].ToolProviders {
			have[p] = true
		}
		for _, p := range extra {
			if !have[p] {
				tasks[i].ToolProviders = append(tasks[i].ToolProviders, p)
			}
		}
	}
}
