package persona

import (
	"github.com/felixgeelhaar/planwright/internal/domain"
)

// registry is the static persona template registry, built once at
// package init and never mutated afterwards.
var registry = buildRegistry()

// Get returns the template for a persona.
func Get(p domain.Persona) (Template, bool) {
	tpl, ok := registry[p]
	return tpl, ok
}

// MustGet returns the template for a persona, falling back to the
// architect template for unknown values so callers degrade instead of
// failing.
func MustGet(p domain.Persona) Template {
	if tpl, ok := registry[p]; ok {
		return tpl
	}
	return registry[domain.PersonaArchitect]
}

func defaultComplexityFactors() map[domain.Complexity]float64 {
	return map[domain.Complexity]float64{
		domain.ComplexitySimple:   0.8,
		domain.ComplexityModerate: 1.0,
		domain.ComplexityComplex:  1.5,
	}
}

func buildRegistry() map[domain.Persona]Template {
	return map[domain.Persona]Template{
		domain.PersonaFrontend: {
			Persona:            domain.PersonaFrontend,
			Expertise:          []string{"component design", "state management", "responsive layout", "accessibility"},
			FocusAreas:         []string{"user experience", "visual consistency", "interaction latency"},
			PreferredProviders: []string{ProviderUIStudio, ProviderDocsIndex},
			QualityGates:       []string{"completeness", "consistency", "testability"},
			Estimation: EstimationFactors{
				BaseMultiplier:   1.0,
				ComplexityFactor: defaultComplexityFactors(),
				DomainFactor:     map[string]float64{"ui": 0.9, "api": 1.2},
				QualityOverhead:  0.1,
			},
		},
		domain.PersonaBackend: {
			Persona:            domain.PersonaBackend,
			Expertise:          []string{"service design", "data modeling", "api contracts", "integration"},
			FocusAreas:         []string{"correctness", "data integrity", "throughput"},
			PreferredProviders: []string{ProviderDocsIndex, ProviderFrameworkGuide},
			QualityGates:       []string{"completeness", "consistency", "feasibility", "testability"},
			Estimation: EstimationFactors{
				BaseMultiplier:   1.0,
				ComplexityFactor: defaultComplexityFactors(),
				DomainFactor:     map[string]float64{"api": 0.9, "ui": 1.3},
				QualityOverhead:  0.1,
			},
		},
		domain.PersonaSecurity: {
			Persona:            domain.PersonaSecurity,
			Expertise:          []string{"threat modeling", "authentication", "encryption", "compliance"},
			FocusAreas:         []string{"attack surface", "data protection", "auditability"},
			PreferredProviders: []string{ProviderAnalysisEngine, ProviderDocsIndex},
			QualityGates:       []string{"completeness", "security", "feasibility"},
			Estimation: EstimationFactors{
				BaseMultiplier:   1.2,
				ComplexityFactor: defaultComplexityFactors(),
				DomainFactor:     map[string]float64{"security": 0.9},
				QualityOverhead:  0.25,
			},
		},
		domain.PersonaArchitect: {
			Persona:            domain.PersonaArchitect,
			Expertise:          []string{"system decomposition", "integration patterns", "technology selection"},
			FocusAreas:         []string{"maintainability", "scalability", "clear boundaries"},
			PreferredProviders: []string{ProviderAnalysisEngine, ProviderFrameworkGuide},
			QualityGates:       []string{"completeness", "consistency", "feasibility"},
			Estimation: EstimationFactors{
				BaseMultiplier:   1.1,
				ComplexityFactor: defaultComplexityFactors(),
				DomainFactor:     map[string]float64{},
				QualityOverhead:  0.15,
			},
		},
		domain.PersonaQA: {
			Persona:            domain.PersonaQA,
			Expertise:          []string{"test strategy", "automation", "acceptance criteria", "regression"},
			FocusAreas:         []string{"coverage", "defect detection", "verification depth"},
			PreferredProviders: []string{ProviderTestHarness, ProviderDocsIndex},
			QualityGates:       []string{"completeness", "testability"},
			Estimation: EstimationFactors{
				BaseMultiplier:   0.9,
				ComplexityFactor: defaultComplexityFactors(),
				DomainFactor:     map[string]float64{"testing": 0.85},
				QualityOverhead:  0.2,
			},
		},
		domain.PersonaPerformance: {
			Persona:            domain.PersonaPerformance,
			Expertise:          []string{"profiling", "load testing", "caching", "query optimization"},
			FocusAreas:         []string{"latency", "resource budget", "degradation behavior"},
			PreferredProviders: []string{ProviderPerfLab, ProviderAnalysisEngine},
			QualityGates:       []string{"completeness", "feasibility"},
			Estimation: EstimationFactors{
				BaseMultiplier:   1.1,
				ComplexityFactor: defaultComplexityFactors(),
				DomainFactor:     map[string]float64{"performance": 0.9},
				QualityOverhead:  0.15,
			},
		},
		domain.PersonaDevOps: {
			Persona:            domain.PersonaDevOps,
			Expertise:          []string{"ci/cd", "containerization", "observability", "release management"},
			FocusAreas:         []string{"repeatable delivery", "environment parity", "rollback safety"},
			PreferredProviders: []string{ProviderFrameworkGuide, ProviderDocsIndex},
			QualityGates:       []string{"completeness", "feasibility"},
			Estimation: EstimationFactors{
				BaseMultiplier:   1.0,
				ComplexityFactor: defaultComplexityFactors(),
				DomainFactor:     map[string]float64{},
				QualityOverhead:  0.1,
			},
		},
	}
}
