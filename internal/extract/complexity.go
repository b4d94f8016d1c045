package extract

import (
	"strings"

	"github.com/felixgeelhaar/planwright/internal/domain"
)

// Complexity vocabularies with their score weights.
var (
	simpleVocab = []string{
		"simple", "basic", "straightforward", "minimal", "crud", "prototype",
	}

	moderateVocab = []string{
		"integration", "workflow", "dashboard", "reporting",
		"authentication", "notification", "search",
	}

	complexVocab = []string{
		"distributed", "real-time", "machine learning", "microservice",
		"multi-tenant", "encryption", "concurrent", "high availability",
		"event-driven",
	}
)

// Score weights and tier cut points.
const (
	simpleWeight   = 1
	moderateWeight = 1
	complexWeight  = 2

	moderateCutoff = 5 // score <= 0 simple, <= 5 moderate, else complex
)

// scoreComplexity maps a document and its requirement set to a
// complexity tier. The score starts at zero, drops for simple
// vocabulary, rises for moderate and complex vocabulary, and rises
// further with requirement and constraint volume.
func scoreComplexity(text string, set *RequirementSet) domain.Complexity {
	lower := strings.ToLower(text)

	score := 0
	score -= simpleWeight * countMatches(lower, simpleVocab)
	score += moderateWeight * countMatches(lower, moderateVocab)
	score += complexWeight * countMatches(lower, complexVocab)

	// Requirement volume
	switch count := set.Count(); {
	case count > 15:
		score += 3
	case count > 8:
		score += 2
	case count > 4:
		score++
	}

	// Constraint and assumption volume
	switch extras := len(set.Constraints) + len(set.Assumptions); {
	case extras > 5:
		score += 2
	case extras > 2:
		score++
	}

	switch {
	case score <= 0:
		return domain.ComplexitySimple
	case score <= moderateCutoff:
		return domain.ComplexityModerate
	default:
		return domain.ComplexityComplex
	}
}
