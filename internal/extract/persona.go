package extract

import (
	"strings"

	"github.com/felixgeelhaar/planwright/internal/domain"
)

// personaKeywords maps each persona to its trigger vocabulary. Scoring
// counts keyword occurrences over the whole document, so it is
// independent of line order.
var personaKeywords = map[domain.Persona][]string{
	domain.PersonaFrontend: {
		"ui", "interface", "react", "component", "css", "responsive",
		"accessibility", "frontend", "design system",
	},
	domain.PersonaBackend: {
		"endpoint", "service", "database", "backend", "rest", "graphql",
		"business logic", "schema",
	},
	domain.PersonaSecurity: {
		"security", "auth", "oauth", "encryption", "threat", "vulnerability",
		"compliance", "audit",
	},
	domain.PersonaArchitect: {
		"architecture", "system design", "integration", "infrastructure",
		"modular", "scalable",
	},
	domain.PersonaQA: {
		"test", "quality", "validation", "verification", "coverage",
		"regression",
	},
	domain.PersonaPerformance: {
		"performance", "latency", "throughput", "optimization", "load",
		"benchmark", "caching",
	},
	domain.PersonaDevOps: {
		"deploy", "ci/cd", "docker", "kubernetes", "monitoring",
		"provisioning", "terraform",
	},
}

// Targeted score boosts applied on top of raw keyword counts.
const (
	uiMentionBoost  = 3 // requirement text mentions "user interface"
	complianceBoost = 4 // a constraint names regulatory compliance
)

var complianceVocab = []string{"compliance", "regulatory", "gdpr", "hipaa", "pci", "sox"}

// recommendPersona scores each persona against the document and
// returns the strongest match. Ties and all-zero scores fall back to
// the architect persona.
func recommendPersona(text string, set *RequirementSet) domain.Persona {
	lower := strings.ToLower(text)

	scores := make(map[domain.Persona]int, len(personaKeywords))
	for persona, keywords := range personaKeywords {
		scores[persona] = countMatches(lower, keywords)
	}

	for _, req := range set.All() {
		if strings.Contains(strings.ToLower(req.Content), "user interface") {
			scores[domain.PersonaFrontend] += uiMentionBoost
		}
	}

	for _, constraint := range set.Constraints {
		if containsAny(strings.ToLower(constraint), complianceVocab) {
			scores[domain.PersonaSecurity] += complianceBoost
		}
	}

	best := domain.PersonaArchitect
	bestScore := 0
	tied := false
	for _, persona := range domain.AllPersonas() {
		score := scores[persona]
		switch {
		case score > bestScore:
			best = persona
			bestScore = score
			tied = false
		case score == bestScore && score > 0 && persona != best:
			tied = true
		}
	}

	if bestScore == 0 || tied {
		return domain.PersonaArchitect
	}
	return best
}
