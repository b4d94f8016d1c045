package depgraph

import (
	"github.com/felixgeelhaar/planwright/internal/log"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

// Analyzer computes dependency analyses. Stateless and safe for
// concurrent use; every call works on its own graph.
type Analyzer struct {
	logger *log.Logger
}

// NewAnalyzer creates an Analyzer. A nil logger falls back to the
// default.
func NewAnalyzer(logger *log.Logger) *Analyzer {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Analyzer{logger: logger}
}

// Analyze builds the dependency graph for an ordered phase structure
// and computes scheduling metrics, the critical path, parallel
// opportunities, bottlenecks, and risks. An empty phase list yields an
// empty analysis; cyclic declarations leave the affected nodes
// unleveled instead of failing.
func (a *Analyzer) Analyze(phases []plan.Phase) *plan.DependencyAnalysis {
	g := build(phases)

	analysis := &plan.DependencyAnalysis{
		UnknownDependencies: g.unknown,
	}
	if len(g.order) == 0 {
		return analysis
	}

	s := computeSchedule(g)
	path := criticalPath(g, s)
	levels, unleveled := computeLevels(g)

	analysis.Nodes = make([]plan.DependencyNode, 0, len(g.order))
	for _, id := range g.order {
		analysis.Nodes = append(analysis.Nodes, *s.nodes[id])
	}
	analysis.Edges = g.edges
	analysis.CriticalPath = path
	analysis.Levels = levels
	analysis.Unleveled = unleveled
	analysis.ParallelGroups = parallelGroups(g, levels)
	analysis.Bottlenecks = findBottlenecks(g, s)
	analysis.Risks = assessRisks(g, s, path)
	analysis.ProjectDuration = s.finish

	a.logger.Debug("dependency analysis complete",
		"tasks", len(g.order),
		"edges", len(g.edges),
		"critical_path", len(path),
		"parallel_groups", len(analysis.ParallelGroups),
		"unleveled", len(unleveled),
	)

	return analysis
}
