// Package depgraph builds a task dependency graph from a phase/task
// structure and computes critical-path scheduling metrics over it.
package depgraph

import (
	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

// graph is the working representation used by the analyzer passes.
// Node order follows phase/task order so output is deterministic.
type graph struct {
	order    []domain.TaskID
	tasks    map[domain.TaskID]*plan.Task
	edges    []plan.DependencyEdge
	incoming map[domain.TaskID][]int // edge indices
	outgoing map[domain.TaskID][]int
	unknown  []domain.TaskID
}

// build constructs the graph: one node per task, one edge per declared
// dependency, plus one sequencing edge between each adjacent phase
// pair. Dependencies referencing unknown task ids are skipped and
// recorded.
func build(phases []plan.Phase) *graph {
	g := &graph{
		tasks:    make(map[domain.TaskID]*plan.Task),
		incoming: make(map[domain.TaskID][]int),
		outgoing: make(map[domain.TaskID][]int),
	}

	for pi := range phases {
		for ti := range phases[pi].Tasks {
			task := &phases[pi].Tasks[ti]
			g.order = append(g.order, task.ID)
			g.tasks[task.ID] = task
		}
	}

	addEdge := func(edge plan.DependencyEdge) {
		for _, existing := range g.edges {
			if existing.From == edge.From && existing.To == edge.To {
				return
			}
		}
		idx := len(g.edges)
		g.edges = append(g.edges, edge)
		g.incoming[edge.To] = append(g.incoming[edge.To], idx)
		g.outgoing[edge.From] = append(g.outgoing[edge.From], idx)
	}

	// Declared dependencies: finish-to-start, zero lag.
	for _, id := range g.order {
		task := g.tasks[id]
		for _, dep := range task.DependsOn {
			if _, ok := g.tasks[dep]; !ok {
				g.unknown = append(g.unknown, dep)
				continue
			}
			addEdge(plan.DependencyEdge{
				From: dep,
				To:   task.ID,
				Kind: plan.EdgeFinishToStart,
			})
		}
	}

	// Phase sequencing: last task of phase i feeds the first task of
	// phase i+1 so the scheduler respects phase ordering even without
	// declared dependencies between them.
	prev := -1
	for pi := range phases {
		if len(phases[pi].Tasks) == 0 {
			continue
		}
		if prev >= 0 {
			from := phases[prev].Tasks[len(phases[prev].Tasks)-1].ID
			to := phases[pi].Tasks[0].ID
			addEdge(plan.DependencyEdge{
				From: from,
				To:   to,
				Kind: plan.EdgePhaseOrder,
			})
		}
		prev = pi
	}

	return g
}

// duration returns a task's scheduling duration in hours.
func (g *graph) duration(id domain.TaskID) int {
	if task, ok := g.tasks[id]; ok {
		return task.EstimatedHours
	}
	return 0
}
