package toolplan

import (
	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/persona"
)

// providerSpec is one catalog entry. The catalog is static
// configuration built once at process start.
type providerSpec struct {
	Name       string
	Capability Need
	Confidence float64

	// affinity scores the provider's fit per persona; personas not
	// listed use defaultAffinity.
	affinity map[domain.Persona]float64

	Fallback       string
	CapabilityLoss float64
	Purpose        string
}

const defaultAffinity = 0.6

// KnownProvider reports whether a provider name exists in the catalog.
func KnownProvider(name string) bool {
	for _, spec := range catalog {
		if spec.Name == name {
			return true
		}
	}
	return false
}

// ProviderNames lists the catalog's provider identifiers in selection
// order.
func ProviderNames() []string {
	names := make([]string, len(catalog))
	for i, spec := range catalog {
		names[i] = spec.Name
	}
	return names
}

func (p providerSpec) affinityFor(d domain.Persona) float64 {
	if v, ok := p.affinity[d]; ok {
		return v
	}
	return defaultAffinity
}

// Selection thresholds. A provider is picked when its need score,
// capability confidence, and persona affinity all clear these.
const (
	needScoreThreshold  = 2.0
	confidenceThreshold = 0.7
	affinityThreshold   = 0.5
)

// catalog lists the known providers in selection order, reusing the
// provider identifiers the persona templates assign to tasks.
var catalog = []providerSpec{
	{
		Name:           persona.ProviderDocsIndex,
		Capability:     NeedDocsLookup,
		Confidence:     0.9,
		affinity:       map[domain.Persona]float64{domain.PersonaBackend: 0.9, domain.PersonaArchitect: 0.8},
		Fallback:       "manual documentation search",
		CapabilityLoss: 0.3,
		Purpose:        "look up API and integration documentation",
	},
	{
		Name:           persona.ProviderAnalysisEngine,
		Capability:     NeedComplexAnalysis,
		Confidence:     0.85,
		affinity:       map[domain.Persona]float64{domain.PersonaArchitect: 0.9, domain.PersonaSecurity: 0.9},
		Fallback:       "manual architecture review",
		CapabilityLoss: 0.4,
		Purpose:        "deep structural and security analysis",
	},
	{
		Name:           persona.ProviderUIStudio,
		Capability:     NeedUIGeneration,
		Confidence:     0.8,
		affinity:       map[domain.Persona]float64{domain.PersonaFrontend: 0.95, domain.PersonaBackend: 0.4},
		Fallback:       "hand-built components",
		CapabilityLoss: 0.5,
		Purpose:        "generate interface components and layouts",
	},
	{
		Name:           persona.ProviderTestHarness,
		Capability:     NeedTestAutomation,
		Confidence:     0.9,
		affinity:       map[domain.Persona]float64{domain.PersonaQA: 0.95},
		Fallback:       "manually scripted tests",
		CapabilityLoss: 0.35,
		Purpose:        "scaffold and run automated test suites",
	},
	{
		Name:           persona.ProviderFrameworkGuide,
		Capability:     NeedFrameworkGuidance,
		Confidence:     0.75,
		affinity:       map[domain.Persona]float64{domain.PersonaFrontend: 0.8, domain.PersonaBackend: 0.8},
		Fallback:       "official framework documentation",
		CapabilityLoss: 0.2,
		Purpose:        "apply framework conventions and upgrade paths",
	},
	{
		Name:           persona.ProviderPerfLab,
		Capability:     NeedPerfValidation,
		Confidence:     0.8,
		affinity:       map[domain.Persona]float64{domain.PersonaPerformance: 0.95, domain.PersonaDevOps: 0.8},
		Fallback:       "ad-hoc profiling",
		CapabilityLoss: 0.45,
		Purpose:        "validate latency and throughput targets",
	},
}
