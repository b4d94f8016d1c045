package extract

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/planwright/internal/domain"
)

// Classification vocabularies. A section is technical if its title or
// body names infrastructure concerns, non-functional if it names
// quality attributes, otherwise functional.
var (
	technicalVocab = []string{
		"api", "database", "framework", "infrastructure", "deployment",
		"integration", "schema", "migration", "server", "docker",
		"kubernetes", "cache", "queue", "pipeline",
	}

	nonFunctionalVocab = []string{
		"performance", "security", "scalability", "usability",
		"reliability", "availability", "latency", "accessibility",
		"maintainability", "compliance",
	}
)

// requirementKind labels the classification outcome for one section.
type requirementKind int

const (
	kindFunctional requirementKind = iota
	kindNonFunctional
	kindTechnical
)

// classifySection decides which requirement category a section feeds.
func classifySection(s Section) requirementKind {
	text := strings.ToLower(s.Title + " " + strings.Join(s.Body, " "))

	if containsAny(text, technicalVocab) {
		return kindTechnical
	}
	if containsAny(text, nonFunctionalVocab) {
		return kindNonFunctional
	}
	return kindFunctional
}

// isConstraintSection reports whether a section lists constraints.
func isConstraintSection(title string) bool {
	t := strings.ToLower(title)
	return strings.Contains(t, "constraint") || strings.Contains(t, "limitation")
}

// isAssumptionSection reports whether a section lists assumptions.
func isAssumptionSection(title string) bool {
	return strings.Contains(strings.ToLower(title), "assumption")
}

// detectPriority infers a priority from requirement phrasing.
func detectPriority(content string) domain.Priority {
	text := strings.ToLower(content)
	switch {
	case strings.Contains(text, "must") || strings.Contains(text, "critical") || strings.Contains(text, "required"):
		return domain.PriorityHigh
	case strings.Contains(text, "could") || strings.Contains(text, "nice to have") || strings.Contains(text, "optional"):
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}

// buildRequirements converts the qualifying lines and criteria of a
// section into Requirement values. The id sequence is shared across
// sections so ids stay unique within one document.
func buildRequirements(s Section, nextID *int) []Requirement {
	var reqs []Requirement

	add := func(content string, criteria []string) {
		*nextID++
		reqs = append(reqs, Requirement{
			ID:                 fmt.Sprintf("req-%03d", *nextID),
			Content:            content,
			Priority:           detectPriority(content),
			Section:            s.Title,
			AcceptanceCriteria: criteria,
		})
	}

	items := bodyItems(s.Body)
	for i, item := range items {
		// Attach the section's criteria to its first requirement so
		// they are kept without being duplicated per line.
		if i == 0 && len(s.Criteria) > 0 {
			add(item, s.Criteria)
			continue
		}
		add(item, nil)
	}

	// A section with criteria but no body lines still carries intent.
	if len(items) == 0 && len(s.Criteria) > 0 {
		add(s.Title, s.Criteria)
	}

	return reqs
}

func containsAny(text string, vocab []string) bool {
	for _, word := range vocab {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

func countMatches(text string, vocab []string) int {
	count := 0
	for _, word := range vocab {
		count += strings.Count(text, word)
	}
	return count
}
