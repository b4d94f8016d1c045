package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

func task(id string, hours int, p domain.Persona, deps ...string) plan.Task {
	t := plan.Task{
		ID:             domain.TaskID(id),
		Title:          id,
		Persona:        p,
		Complexity:     domain.ComplexityModerate,
		EstimatedHours: hours,
	}
	for _, d := range deps {
		t.DependsOn = append(t.DependsOn, domain.TaskID(d))
	}
	return t
}

func TestAnalyzeEmptyPhases(t *testing.T) {
	analysis := NewAnalyzer(nil).Analyze(nil)

	assert.Empty(t, analysis.Nodes)
	assert.Empty(t, analysis.CriticalPath)
	assert.Empty(t, analysis.Bottlenecks)
	assert.Empty(t, analysis.Risks)
	assert.Zero(t, analysis.ProjectDuration)
}

func TestAnalyzeTwoPhaseFanOut(t *testing.T) {
	// Phase A has one 16h task feeding phase B's two independent
	// tasks (24h and 32h). The B tasks must form a parallel
	// opportunity and must not both sit on the critical path.
	phases := []plan.Phase{
		{
			ID:    "phase-a",
			Tasks: []plan.Task{task("task-a", 16, domain.PersonaArchitect)},
		},
		{
			ID: "phase-b",
			Tasks: []plan.Task{
				task("task-b1", 24, domain.PersonaFrontend, "task-a"),
				task("task-b2", 32, domain.PersonaBackend, "task-a"),
			},
		},
	}

	analysis := NewAnalyzer(nil).Analyze(phases)

	require.Len(t, analysis.Nodes, 3)
	assert.Equal(t, 48, analysis.ProjectDuration)

	// Parallel opportunity contains both B tasks.
	require.Len(t, analysis.ParallelGroups, 1)
	assert.ElementsMatch(t,
		[]domain.TaskID{"task-b1", "task-b2"},
		analysis.ParallelGroups[0].TaskIDs)

	// Critical path runs through the longer B task only.
	assert.Equal(t, []domain.TaskID{"task-a", "task-b2"}, analysis.CriticalPath)

	byID := map[domain.TaskID]plan.DependencyNode{}
	for _, n := range analysis.Nodes {
		byID[n.TaskID] = n
	}
	assert.True(t, byID["task-a"].Critical)
	assert.True(t, byID["task-b2"].Critical)
	assert.False(t, byID["task-b1"].Critical)
	assert.Equal(t, 8, byID["task-b1"].Slack)
}

func TestAnalyzeInsertsPhaseOrderingEdge(t *testing.T) {
	// No declared dependencies at all: the phase edge alone must
	// serialize the phases.
	phases := []plan.Phase{
		{ID: "phase-1", Tasks: []plan.Task{task("task-one", 8, domain.PersonaBackend)}},
		{ID: "phase-2", Tasks: []plan.Task{task("task-two", 8, domain.PersonaFrontend)}},
	}

	analysis := NewAnalyzer(nil).Analyze(phases)

	require.Len(t, analysis.Edges, 1)
	assert.Equal(t, plan.EdgePhaseOrder, analysis.Edges[0].Kind)
	assert.Equal(t, 16, analysis.ProjectDuration)
}

func TestAnalyzeSkipsUnknownDependencies(t *testing.T) {
	phases := []plan.Phase{
		{ID: "phase-1", Tasks: []plan.Task{task("task-one", 8, domain.PersonaBackend, "task-ghost")}},
	}

	analysis := NewAnalyzer(nil).Analyze(phases)

	assert.Empty(t, analysis.Edges)
	assert.Equal(t, []domain.TaskID{"task-ghost"}, analysis.UnknownDependencies)
}

func TestAnalyzeToleratesCycles(t *testing.T) {
	phases := []plan.Phase{
		{
			ID: "phase-1",
			Tasks: []plan.Task{
				task("task-x", 8, domain.PersonaBackend, "task-y"),
				task("task-y", 8, domain.PersonaFrontend, "task-x"),
				task("task-z", 4, domain.PersonaQA),
			},
		},
	}

	analysis := NewAnalyzer(nil).Analyze(phases)

	// task-z levels normally; the cycle members stay unleveled.
	assert.ElementsMatch(t, []domain.TaskID{"task-x", "task-y"}, analysis.Unleveled)
	require.Len(t, analysis.Levels, 1)
	assert.Equal(t, []domain.TaskID{"task-z"}, analysis.Levels[0])
}

func TestResourceBottleneck(t *testing.T) {
	// Two 48h backend tasks with no dependency between them overlap
	// at start and exceed the warning threshold together.
	phases := []plan.Phase{
		{
			ID: "phase-1",
			Tasks: []plan.Task{
				task("task-one", 48, domain.PersonaBackend),
				task("task-two", 48, domain.PersonaBackend),
			},
		},
	}

	analysis := NewAnalyzer(nil).Analyze(phases)

	require.NotEmpty(t, analysis.Bottlenecks)
	b := analysis.Bottlenecks[0]
	assert.Equal(t, "resource", b.Kind)
	assert.Equal(t, domain.PersonaBackend, b.Persona)
	assert.Equal(t, "warning", b.Severity)
}

func TestDependencyBottleneck(t *testing.T) {
	tasks := []plan.Task{
		task("task-hub", 8, domain.PersonaArchitect),
		task("task-s1", 4, domain.PersonaFrontend, "task-hub"),
		task("task-s2", 4, domain.PersonaBackend, "task-hub"),
		task("task-s3", 4, domain.PersonaQA, "task-hub"),
		task("task-s4", 4, domain.PersonaDevOps, "task-hub"),
	}
	phases := []plan.Phase{{ID: "phase-1", Tasks: tasks}}

	analysis := NewAnalyzer(nil).Analyze(phases)

	var dep *plan.Bottleneck
	for i := range analysis.Bottlenecks {
		if analysis.Bottlenecks[i].Kind == "dependency" {
			dep = &analysis.Bottlenecks[i]
		}
	}
	require.NotNil(t, dep, "fan-out of 4 should flag a dependency bottleneck")
	assert.Equal(t, []domain.TaskID{"task-hub"}, dep.TaskIDs)
	assert.Equal(t, "critical", dep.Severity, "hub is on the critical path")
}

func TestRiskAssessment(t *testing.T) {
	complexTask := task("task-hard", 40, domain.PersonaSecurity)
	complexTask.Complexity = domain.ComplexityComplex

	phases := []plan.Phase{
		{ID: "phase-1", Tasks: []plan.Task{complexTask, task("task-easy", 4, domain.PersonaQA)}},
	}

	analysis := NewAnalyzer(nil).Analyze(phases)

	require.NotEmpty(t, analysis.Risks)

	kinds := map[string]int{}
	for _, r := range analysis.Risks {
		kinds[r.Category]++
	}
	assert.GreaterOrEqual(t, kinds["technical"], 1, "complex task should add a technical risk")
	assert.GreaterOrEqual(t, kinds["timeline"], 1, "critical-path task should add a timeline risk")

	// Sorted by descending score.
	for i := 1; i < len(analysis.Risks); i++ {
		assert.GreaterOrEqual(t, analysis.Risks[i-1].Score(), analysis.Risks[i].Score())
	}
}
