package toolplan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/extract"
	"github.com/felixgeelhaar/planwright/internal/persona"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

func requirementSet(contents ...string) *extract.RequirementSet {
	set := &extract.RequirementSet{}
	for i, c := range contents {
		set.Functional = append(set.Functional, extract.Requirement{
			ID:       fmt.Sprintf("req-%03d", i+1),
			Content:  c,
			Priority: domain.PriorityMedium,
		})
	}
	return set
}

func TestUIDocumentSelectsUIStudio(t *testing.T) {
	set := requirementSet(
		"Build React components for the dashboard",
		"All components must meet accessibility standards",
	)

	p := NewPlanner(nil).Plan(set, domain.PersonaFrontend, nil)

	names := make([]string, 0, len(p.Providers))
	for _, sp := range p.Providers {
		names = append(names, sp.Name)
	}
	assert.Contains(t, names, persona.ProviderUIStudio)

	for _, sp := range p.Providers {
		assert.Equal(t, domain.PersonaFrontend, sp.Persona)
		assert.GreaterOrEqual(t, sp.Confidence, confidenceThreshold)
	}
}

func TestAffinityFiltersOutPoorFit(t *testing.T) {
	// The same UI-heavy text planned for a backend persona must not
	// pick the UI provider: backend affinity sits below the cutoff.
	set := requirementSet("Build React components with accessibility in mind")

	p := NewPlanner(nil).Plan(set, domain.PersonaBackend, nil)

	for _, sp := range p.Providers {
		assert.NotEqual(t, persona.ProviderUIStudio, sp.Name)
	}
}

func TestWeakSignalsSelectNothing(t *testing.T) {
	set := requirementSet("Users can update their profile name")

	p := NewPlanner(nil).Plan(set, domain.PersonaArchitect, nil)

	assert.Empty(t, p.Providers)
	assert.Empty(t, p.Steps)
	assert.Empty(t, p.ParallelGroups)
	assert.Empty(t, p.Fallbacks)
	assert.NotNil(t, p, "empty document still yields a plan")
}

func TestEveryProviderGetsAFallbackRoute(t *testing.T) {
	set := requirementSet(
		"Automate the regression test suite with full coverage",
		"Benchmark performance and track latency budgets",
	)

	p := NewPlanner(nil).Plan(set, domain.PersonaQA, nil)

	require.NotEmpty(t, p.Providers)
	require.Len(t, p.Fallbacks, len(p.Providers))
	for i, route := range p.Fallbacks {
		assert.Equal(t, p.Providers[i].Name, route.Provider)
		assert.NotEmpty(t, route.Fallback)
		assert.Greater(t, route.CapabilityLoss, 0.0)
		assert.Less(t, route.CapabilityLoss, 1.0)
	}
}

func TestStepsFollowTaskProviderHints(t *testing.T) {
	set := requirementSet(
		"Automate tests with regression coverage and test automation",
		"Benchmark performance under load with latency targets",
	)
	phases := []plan.Phase{
		{
			ID: "phase-build",
			Tasks: []plan.Task{{
				ID:            "task-001",
				Title:         "implement suite",
				ToolProviders: []string{persona.ProviderTestHarness},
			}},
		},
		{
			ID:    "phase-verify",
			Tasks: []plan.Task{{ID: "task-002", Title: "sign off"}},
		},
	}

	p := NewPlanner(nil).Plan(set, domain.PersonaQA, phases)

	require.Len(t, p.Providers, 2, "test-harness and perf-lab")

	// phase-build references only test-harness; phase-verify has no
	// hints and pairs with both providers.
	var buildSteps, verifySteps []plan.OrchestrationStep
	for _, s := range p.Steps {
		switch s.PhaseID {
		case "phase-build":
			buildSteps = append(buildSteps, s)
		case "phase-verify":
			verifySteps = append(verifySteps, s)
		}
	}
	require.Len(t, buildSteps, 1)
	assert.Equal(t, persona.ProviderTestHarness, buildSteps[0].Provider)
	assert.Len(t, verifySteps, 2)

	// Step order is globally sequential.
	for i, s := range p.Steps {
		assert.Equal(t, i+1, s.Order)
	}
}

func TestIndependentProvidersParallelize(t *testing.T) {
	set := requirementSet(
		"Automate tests with regression coverage and test automation",
		"Benchmark performance under load with latency targets",
	)

	p := NewPlanner(nil).Plan(set, domain.PersonaQA, nil)

	require.Len(t, p.ParallelGroups, 1)
	assert.ElementsMatch(t,
		[]string{persona.ProviderTestHarness, persona.ProviderPerfLab},
		p.ParallelGroups[0])
}

func TestNeedScoringAccumulatesAcrossRequirements(t *testing.T) {
	set := requirementSet(
		"Integrate the payments API",
		"Write integration documentation for the API endpoint",
	)

	scores := analyzeNeeds(set)
	// req1: api(1). req2: api(1) + documentation(2) + integration(1) + endpoint(1).
	assert.InDelta(t, 6.0, scores[NeedDocsLookup], 0.001)
}

func TestCatalogLookup(t *testing.T) {
	assert.True(t, KnownProvider(persona.ProviderDocsIndex))
	assert.False(t, KnownProvider("crystal-ball"))

	names := ProviderNames()
	require.Len(t, names, len(catalog))
	assert.Contains(t, names, persona.ProviderTestHarness)
}
