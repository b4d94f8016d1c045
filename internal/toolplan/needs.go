package toolplan

import (
	"strings"

	"github.com/felixgeelhaar/planwright/internal/extract"
)

// Need is an aggregate capability requirement detected in the
// document, matched against provider capabilities during selection.
type Need string

const (
	NeedDocsLookup        Need = "docs-lookup"
	NeedComplexAnalysis   Need = "complex-analysis"
	NeedUIGeneration      Need = "ui-generation"
	NeedTestAutomation    Need = "test-automation"
	NeedFrameworkGuidance Need = "framework-guidance"
	NeedPerfValidation    Need = "perf-validation"
)

// allNeeds fixes the evaluation order so plans are deterministic.
var allNeeds = []Need{
	NeedDocsLookup,
	NeedComplexAnalysis,
	NeedUIGeneration,
	NeedTestAutomation,
	NeedFrameworkGuidance,
	NeedPerfValidation,
}

type trigger struct {
	word   string
	weight float64
}

// needTriggers maps each need to its trigger vocabulary. A match adds
// the trigger's weight once per requirement.
var needTriggers = map[Need][]trigger{
	NeedDocsLookup: {
		{"api", 1}, {"documentation", 2}, {"integration", 1},
		{"sdk", 2}, {"endpoint", 1}, {"third-party", 1},
	},
	NeedComplexAnalysis: {
		{"architecture", 2}, {"algorithm", 2}, {"migration", 2},
		{"refactor", 1}, {"analysis", 1}, {"scalability", 1},
	},
	NeedUIGeneration: {
		{"user interface", 2}, {"component", 1}, {"react", 2},
		{"frontend", 2}, {"accessibility", 1}, {"design", 1}, {"responsive", 1},
	},
	NeedTestAutomation: {
		{"test", 2}, {"automation", 2}, {"coverage", 1},
		{"regression", 1}, {"qa", 1},
	},
	NeedFrameworkGuidance: {
		{"framework", 2}, {"library", 1}, {"best practice", 1}, {"convention", 1},
	},
	NeedPerfValidation: {
		{"performance", 2}, {"benchmark", 2}, {"latency", 1},
		{"throughput", 1}, {"load", 1},
	},
}

// analyzeNeeds accumulates weighted trigger scores over every
// requirement in the set, including constraints.
func analyzeNeeds(set *extract.RequirementSet) map[Need]float64 {
	scores := make(map[Need]float64, len(allNeeds))

	var texts []string
	for _, req := range set.All() {
		texts = append(texts, strings.ToLower(req.Content))
	}
	for _, c := range set.Constraints {
		texts = append(texts, strings.ToLower(c))
	}

	for _, need := range allNeeds {
		for _, text := range texts {
			for _, t := range needTriggers[need] {
				if strings.Contains(text, t.word) {
					scores[need] += t.weight
				}
			}
		}
	}
	return scores
}
