package depgraph

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

// genAcyclicPhase draws a single phase whose tasks only depend on
// earlier tasks, so the declared edges can never form a cycle.
func genAcyclicPhase(t *rapid.T) plan.Phase {
	personas := domain.AllPersonas()
	count := rapid.IntRange(1, 12).Draw(t, "count")

	tasks := make([]plan.Task, 0, count)
	for i := 0; i < count; i++ {
		tk := plan.Task{
			ID:             domain.TaskID(fmt.Sprintf("task-%03d", i+1)),
			Title:          fmt.Sprintf("task %d", i+1),
			Persona:        personas[rapid.IntRange(0, len(personas)-1).Draw(t, "persona")],
			Complexity:     domain.ComplexityModerate,
			EstimatedHours: rapid.IntRange(1, 80).Draw(t, "hours"),
		}
		for j := 0; j < i; j++ {
			if rapid.Bool().Draw(t, "edge") {
				tk.DependsOn = append(tk.DependsOn, tasks[j].ID)
			}
		}
		tasks = append(tasks, tk)
	}
	return plan.Phase{ID: "phase-1", Tasks: tasks}
}

func TestSlackZeroMatchesCriticalFlag(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	rapid.Check(t, func(t *rapid.T) {
		analysis := analyzer.Analyze([]plan.Phase{genAcyclicPhase(t)})

		for _, n := range analysis.Nodes {
			if n.Critical != (n.Slack == 0) {
				t.Fatalf("node %s: slack=%d critical=%v", n.TaskID, n.Slack, n.Critical)
			}
			if n.Slack < 0 {
				t.Fatalf("node %s: negative slack %d", n.TaskID, n.Slack)
			}
		}
	})
}

func TestCriticalPathIsContiguous(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	rapid.Check(t, func(t *rapid.T) {
		analysis := analyzer.Analyze([]plan.Phase{genAcyclicPhase(t)})

		if len(analysis.Nodes) > 0 && len(analysis.CriticalPath) == 0 {
			t.Fatalf("non-empty graph must have a critical path")
		}

		edges := map[[2]domain.TaskID]bool{}
		for _, e := range analysis.Edges {
			edges[[2]domain.TaskID{e.From, e.To}] = true
		}
		critical := map[domain.TaskID]bool{}
		for _, n := range analysis.Nodes {
			if n.Critical {
				critical[n.TaskID] = true
			}
		}

		for i, id := range analysis.CriticalPath {
			if !critical[id] {
				t.Fatalf("path member %s is not flagged critical", id)
			}
			if i > 0 && !edges[[2]domain.TaskID{analysis.CriticalPath[i-1], id}] {
				t.Fatalf("no edge between consecutive path members %s and %s",
					analysis.CriticalPath[i-1], id)
			}
		}
	})
}

func TestProjectDurationIsMaxFinish(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	rapid.Check(t, func(t *rapid.T) {
		analysis := analyzer.Analyze([]plan.Phase{genAcyclicPhase(t)})

		max := 0
		for _, n := range analysis.Nodes {
			if finish := n.EarliestStart + n.Duration; finish > max {
				max = finish
			}
		}
		if analysis.ProjectDuration != max {
			t.Fatalf("duration %d, want max finish %d", analysis.ProjectDuration, max)
		}
	})
}
