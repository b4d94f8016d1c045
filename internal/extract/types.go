package extract

import (
	"github.com/felixgeelhaar/planwright/internal/domain"
)

// Requirement is a single extracted requirement line.
type Requirement struct {
	ID                 string          `json:"id"`
	Content            string          `json:"content"`
	Priority           domain.Priority `json:"priority"`
	Section            string          `json:"section"`
	AcceptanceCriteria []string        `json:"acceptance_criteria,omitempty"`
}

// RequirementSet holds all requirements extracted from one document.
// Immutable once produced by the Extractor.
type RequirementSet struct {
	Functional    []Requirement `json:"functional"`
	NonFunctional []Requirement `json:"non_functional"`
	Technical     []Requirement `json:"technical"`
	Constraints   []string      `json:"constraints,omitempty"`
	Assumptions   []string      `json:"assumptions,omitempty"`
}

// Count returns the total number of requirements across all categories.
func (s *RequirementSet) Count() int {
	return len(s.Functional) + len(s.NonFunctional) + len(s.Technical)
}

// All returns every requirement in category order.
func (s *RequirementSet) All() []Requirement {
	all := make([]Requirement, 0, s.Count())
	all = append(all, s.Functional...)
	all = append(all, s.NonFunctional...)
	all = append(all, s.Technical...)
	return all
}

// Estimate is a rough effort figure with a confidence score.
type Estimate struct {
	Hours      int     `json:"hours"`
	Confidence float64 `json:"confidence"` // 0..1
}

// Result is the full output of a document extraction.
type Result struct {
	Title              string            `json:"title"`
	Requirements       RequirementSet    `json:"requirements"`
	Complexity         domain.Complexity `json:"complexity"`
	RecommendedPersona domain.Persona    `json:"recommended_persona"`
	Estimate           Estimate          `json:"estimate"`
}

// Section is a named slice of the input document. Documents may arrive
// pre-segmented; otherwise the extractor detects headings itself.
type Section struct {
	Title    string
	Body     []string
	Criteria []string
}
