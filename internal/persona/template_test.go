package persona

import (
	"testing"

	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

func TestRegistryCoversAllPersonas(t *testing.T) {
	for _, p := range domain.AllPersonas() {
		tpl, ok := Get(p)
		if !ok {
			t.Errorf("no template registered for persona %v", p)
			continue
		}
		if tpl.Persona != p {
			t.Errorf("template for %v claims persona %v", p, tpl.Persona)
		}
		if tpl.Estimation.BaseMultiplier <= 0 {
			t.Errorf("persona %v has non-positive base multiplier", p)
		}
		if len(tpl.PreferredProviders) == 0 {
			t.Errorf("persona %v has no preferred providers", p)
		}
		if len(tpl.QualityGates) == 0 {
			t.Errorf("persona %v mandates no quality gates", p)
		}
	}
}

func TestMustGetFallsBackToArchitect(t *testing.T) {
	tpl := MustGet(domain.Persona("unknown"))
	if tpl.Persona != domain.PersonaArchitect {
		t.Errorf("fallback persona = %v, want architect", tpl.Persona)
	}
}

func TestAdjustHours(t *testing.T) {
	tpl := Template{
		Estimation: EstimationFactors{
			BaseMultiplier: 1.2,
			ComplexityFactor: map[domain.Complexity]float64{
				domain.ComplexityComplex: 1.5,
			},
			DomainFactor:    map[string]float64{"security": 0.9},
			QualityOverhead: 0.25,
		},
	}

	// 40 × 1.2 × 1.5 × 0.9 × 1.25 = 81
	if got := tpl.AdjustHours(40, domain.ComplexityComplex, "security"); got != 81 {
		t.Errorf("AdjustHours = %d, want 81", got)
	}

	// Unknown tier and domain use factor 1.0: 40 × 1.2 × 1.25 = 60
	if got := tpl.AdjustHours(40, domain.ComplexitySimple, "general"); got != 60 {
		t.Errorf("AdjustHours with defaults = %d, want 60", got)
	}
}

func TestProvidersForAddsDomainProviders(t *testing.T) {
	tpl := MustGet(domain.PersonaFrontend)

	providers := tpl.ProvidersFor("ui")
	if !contains(providers, ProviderUIStudio) {
		t.Errorf("ui domain should include %s, got %v", ProviderUIStudio, providers)
	}

	// No duplicate when the provider is already preferred.
	count := 0
	for _, p := range providers {
		if p == ProviderUIStudio {
			count++
		}
	}
	if count != 1 {
		t.Errorf("provider union should deduplicate, got %v", providers)
	}
}

func TestApplyAdjustsTasks(t *testing.T) {
	tasks := []plan.Task{
		{
			ID:             domain.TaskID("task-001"),
			Title:          "Harden token exchange",
			Persona:        domain.PersonaSecurity,
			Complexity:     domain.ComplexityComplex,
			EstimatedHours: 20,
		},
	}

	Apply(tasks, MustGet(domain.PersonaSecurity))

	if tasks[0].EstimatedHours == 20 {
		t.Error("Apply should adjust estimated hours")
	}
	if len(tasks[0].ToolProviders) == 0 {
		t.Error("Apply should assign tool providers")
	}
}
