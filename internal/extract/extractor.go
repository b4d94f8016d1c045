// Package extract converts free-text requirements documents into
// structured requirement sets. Regex-driven heuristics live behind
// this narrow interface so downstream scheduling and validation can be
// tested independently of parsing accuracy.
package extract

import (
	"strings"

	"github.com/felixgeelhaar/planwright/internal/log"
)

// Extractor parses requirements documents. Stateless and safe for
// concurrent use.
type Extractor struct {
	logger *log.Logger
}

// New creates an Extractor. A nil logger falls back to the default.
func New(logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Extractor{logger: logger}
}

// Extract parses a raw document into a requirement set with derived
// metadata. Empty or malformed input never fails; it yields an empty
// set classified as simple.
func (e *Extractor) Extract(text string) *Result {
	sections := splitSections(text)
	return e.fromSections(text, sections)
}

// ExtractSections parses a document that arrived pre-segmented into
// named sections.
func (e *Extractor) ExtractSections(sections []Section) *Result {
	var b strings.Builder
	for _, s := range sections {
		b.WriteString(s.Title)
		b.WriteString("\n")
		b.WriteString(strings.Join(s.Body, "\n"))
		b.WriteString("\n")
	}
	return e.fromSections(b.String(), sections)
}

func (e *Extractor) fromSections(text string, sections []Section) *Result {
	set := RequirementSet{}
	nextID := 0

	for _, section := range sections {
		if isConstraintSection(section.Title) {
			set.Constraints = append(set.Constraints, bodyItems(section.Body)...)
			continue
		}
		if isAssumptionSection(section.Title) {
			set.Assumptions = append(set.Assumptions, bodyItems(section.Body)...)
			continue
		}

		reqs := buildRequirements(section, &nextID)
		switch classifySection(section) {
		case kindTechnical:
			set.Technical = append(set.Technical, reqs...)
		case kindNonFunctional:
			set.NonFunctional = append(set.NonFunctional, reqs...)
		default:
			set.Functional = append(set.Functional, reqs...)
		}
	}

	complexity := scoreComplexity(text, &set)
	persona := recommendPersona(text, &set)

	result := &Result{
		Title:              deriveTitle(sections),
		Requirements:       set,
		Complexity:         complexity,
		RecommendedPersona: persona,
		Estimate:           estimateEffort(&set, complexity),
	}

	e.logger.Debug("document extracted",
		"requirements", set.Count(),
		"complexity", complexity.String(),
		"persona", persona.String(),
		"estimated_hours", result.Estimate.Hours,
	)

	return result
}

// deriveTitle uses the first named section heading, falling back to
// the first body line, then to a fixed default.
func deriveTitle(sections []Section) string {
	for _, s := range sections {
		if s.Title != "" && s.Title != "Overview" {
			return s.Title
		}
	}
	for _, s := range sections {
		for _, line := range s.Body {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				if len(trimmed) > 80 {
					trimmed = trimmed[:80]
				}
				return trimmed
			}
		}
	}
	return "Untitled Requirements"
}
