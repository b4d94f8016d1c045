// Package persona holds the static registry of domain-specialization
// templates. The registry is built once at process start and read-only
// afterwards; applying a template never mutates it.
package persona

import (
	"math"

	"github.com/felixgeelhaar/planwright/internal/domain"
)

// EstimationFactors adjust raw effort hours for a persona.
type EstimationFactors struct {
	// BaseMultiplier scales every estimate for this persona.
	BaseMultiplier float64
	// ComplexityFactor scales by task complexity tier.
	ComplexityFactor map[domain.Complexity]float64
	// DomainFactor scales by work domain ("ui", "api", "security", ...).
	// Domains without an entry use 1.0.
	DomainFactor map[string]float64
	// QualityOverhead is the validation overhead fraction (0.1 = +10%).
	QualityOverhead float64
}

// Template is one persona's configuration: expertise tags, focus
// areas, preferred tool providers, mandated quality gates, and
// estimation factors.
type Template struct {
	Persona            domain.Persona
	Expertise          []string
	FocusAreas         []string
	PreferredProviders []string
	QualityGates       []string
	Estimation         EstimationFactors
}

// AdjustHours applies the template's estimation model:
// hours × base × complexity[tier] × domain × (1 + overhead),
// rounded to the nearest whole hour.
func (t Template) AdjustHours(hours int, tier domain.Complexity, domainKey string) int {
	complexityFactor, ok := t.Estimation.ComplexityFactor[tier]
	if !ok {
		complexityFactor = 1.0
	}
	domainFactor, ok := t.Estimation.DomainFactor[domainKey]
	if !ok {
		domainFactor = 1.0
	}

	adjusted := float64(hours) *
		t.Estimation.BaseMultiplier *
		complexityFactor *
		domainFactor *
		(1 + t.Estimation.QualityOverhead)

	return int(math.Round(adjusted))
}

// GateIDs returns the quality gates this persona mandates as typed
// identifiers, for merging into a profile's gate selection.
func (t Template) GateIDs() []domain.GateID {
	ids := make([]domain.GateID, len(t.QualityGates))
	for i, g := range t.QualityGates {
		ids[i] = domain.GateID(g)
	}
	return ids
}

// ProvidersFor returns the union of the template's preferred providers
// and context-driven additions for the given work domain.
func (t Template) ProvidersFor(domainKey string) []string {
	providers := append([]string(nil), t.PreferredProviders...)

	for _, extra := range domainProviders[domainKey] {
		if !contains(providers, extra) {
			providers = append(providers, extra)
		}
	}
	return providers
}

// domainProviders maps work domains to providers every persona picks
// up when operating in that domain.
var domainProviders = map[string][]string{
	"ui":          {ProviderUIStudio},
	"api":         {ProviderDocsIndex},
	"security":    {ProviderAnalysisEngine},
	"testing":     {ProviderTestHarness},
	"performance": {ProviderPerfLab},
}

// Tool provider identifiers. Providers are named capabilities, not
// specific products.
const (
	ProviderDocsIndex      = "docs-index"
	ProviderAnalysisEngine = "analysis-engine"
	ProviderUIStudio       = "ui-studio"
	ProviderTestHarness    = "test-harness"
	ProviderFrameworkGuide = "framework-guide"
	ProviderPerfLab        = "perf-lab"
)

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
