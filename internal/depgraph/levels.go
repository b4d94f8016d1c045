package depgraph

import (
	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

// computeLevels groups nodes into dependency levels by repeatedly
// extracting every not-yet-placed node whose predecessors are all
// placed. When a pass places nothing, a cycle is blocking progress:
// level construction stops and the remaining nodes stay unleveled.
func computeLevels(g *graph) (levels [][]domain.TaskID, unleveled []domain.TaskID) {
	placed := make(map[domain.TaskID]bool, len(g.order))
	remaining := len(g.order)

	for remaining > 0 {
		var level []domain.TaskID
		for _, id := range g.order {
			if placed[id] {
				continue
			}
			ready := true
			for _, ei := range g.incoming[id] {
				if !placed[g.edges[ei].From] {
					ready = false
					break
				}
			}
			if ready {
				level = append(level, id)
			}
		}

		if len(level) == 0 {
			break
		}

		for _, id := range level {
			placed[id] = true
		}
		remaining -= len(level)
		levels = append(levels, level)
	}

	for _, id := range g.order {
		if !placed[id] {
			unleveled = append(unleveled, id)
		}
	}
	return levels, unleveled
}

// parallelGroups returns the levels that present a genuine parallel
// opportunity: more than one task and no resource conflict, where two
// tasks assigned to the same persona conflict.
func parallelGroups(g *graph, levels [][]domain.TaskID) []plan.ParallelGroup {
	var groups []plan.ParallelGroup
	for i, level := range levels {
		if len(level) < 2 {
			continue
		}

		seen := make(map[domain.Persona]bool, len(level))
		conflict := false
		for _, id := range level {
			p := g.tasks[id].Persona
			if seen[p] {
				conflict = true
				break
			}
			seen[p] = true
		}
		if conflict {
			continue
		}

		groups = append(groups, plan.ParallelGroup{
			Level:   i,
			TaskIDs: append([]domain.TaskID(nil), level...),
		})
	}
	return groups
}
