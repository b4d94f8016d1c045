package extract

import (
	"strings"
	"testing"

	"github.com/felixgeelhaar/planwright/internal/domain"
)

const samplePRD = `# Customer Portal

## Features
- Users must be able to register and log in
- Users should see an order history dashboard
- Given a logged-in user, when they open the portal, then their orders load

## API Design
- The REST api must expose order endpoints
- The database schema should support soft deletes

## Performance
- Page loads should complete within 2 seconds

## Constraints
- Must comply with GDPR regulatory requirements

## Assumptions
- Payment processing is handled by an external provider
`

func TestExtractClassifiesSections(t *testing.T) {
	result := New(nil).Extract(samplePRD)
	set := result.Requirements

	if len(set.Functional) == 0 {
		t.Error("expected functional requirements from Features section")
	}
	if len(set.Technical) == 0 {
		t.Error("expected technical requirements from API Design section")
	}
	if len(set.NonFunctional) == 0 {
		t.Error("expected non-functional requirements from Performance section")
	}
	if len(set.Constraints) != 1 {
		t.Errorf("constraints = %d, want 1", len(set.Constraints))
	}
	if len(set.Assumptions) != 1 {
		t.Errorf("assumptions = %d, want 1", len(set.Assumptions))
	}
}

func TestExtractAttachesCriteria(t *testing.T) {
	result := New(nil).Extract(samplePRD)

	found := false
	for _, req := range result.Requirements.All() {
		for _, c := range req.AcceptanceCriteria {
			if strings.Contains(strings.ToLower(c), "given a logged-in user") {
				found = true
			}
		}
	}
	if !found {
		t.Error("given/when/then line should be attached as acceptance criteria")
	}
}

func TestExtractPriorityDetection(t *testing.T) {
	result := New(nil).Extract(samplePRD)

	var mustReq *Requirement
	for i, req := range result.Requirements.Functional {
		if strings.Contains(req.Content, "register and log in") {
			mustReq = &result.Requirements.Functional[i]
		}
	}
	if mustReq == nil {
		t.Fatal("registration requirement not extracted")
	}
	if mustReq.Priority != domain.PriorityHigh {
		t.Errorf("'must' requirement priority = %v, want high", mustReq.Priority)
	}
}

func TestExtractTitle(t *testing.T) {
	result := New(nil).Extract(samplePRD)
	if result.Title != "Customer Portal" {
		t.Errorf("title = %q, want Customer Portal", result.Title)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	tests := []string{"", "   \n\n  ", "no headings just noise"}

	for _, input := range tests {
		result := New(nil).Extract(input)
		if result == nil {
			t.Fatal("Extract should never return nil")
		}
		if result.Complexity != domain.ComplexitySimple && result.Requirements.Count() == 0 {
			t.Errorf("empty-ish input should classify simple, got %v", result.Complexity)
		}
		if result.Estimate.Hours <= 0 {
			t.Errorf("estimate should carry base hours even for empty input, got %d", result.Estimate.Hours)
		}
	}
}

func TestRecommendPersonaSecurity(t *testing.T) {
	doc := `# Identity Hardening
## Security
- Implement OAuth2 token exchange
- Perform threat modeling for the auth flows
- All data at rest requires encryption
`
	result := New(nil).Extract(doc)
	if result.RecommendedPersona != domain.PersonaSecurity {
		t.Errorf("persona = %v, want security", result.RecommendedPersona)
	}
}

func TestRecommendPersonaFrontend(t *testing.T) {
	doc := `# Component Library
## Features
- Build React component primitives for the design system
- Ensure accessibility of every ui component
- Responsive layouts with css grid
`
	result := New(nil).Extract(doc)
	if result.RecommendedPersona != domain.PersonaFrontend {
		t.Errorf("persona = %v, want frontend", result.RecommendedPersona)
	}
}

func TestRecommendPersonaDefaultsToArchitect(t *testing.T) {
	result := New(nil).Extract("# Plain\n## Things\n- do the thing\n- do the other thing\n")
	if result.RecommendedPersona != domain.PersonaArchitect {
		t.Errorf("persona = %v, want architect fallback", result.RecommendedPersona)
	}
}

func TestComplianceConstraintBoostsSecurity(t *testing.T) {
	doc := `# Billing
## Features
- Generate invoices monthly
## Constraints
- Processing must satisfy PCI regulatory compliance
`
	result := New(nil).Extract(doc)
	if result.RecommendedPersona != domain.PersonaSecurity {
		t.Errorf("persona = %v, want security via compliance boost", result.RecommendedPersona)
	}
}

func TestSectionHeadingStyles(t *testing.T) {
	doc := "# Markdown Heading\n- item one\n\n2. Numbered Heading\n- item two\n\nREQUIREMENTS OVERVIEW\n- item three\n\nDelivery Notes:\n- item four\n"
	sections := splitSections(doc)

	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = s.Title
	}

	want := []string{"Markdown Heading", "Numbered Heading", "REQUIREMENTS OVERVIEW", "Delivery Notes"}
	if len(titles) != len(want) {
		t.Fatalf("sections = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("section %d = %q, want %q", i, titles[i], want[i])
		}
	}
}

func TestEstimateScalesWithRequirements(t *testing.T) {
	small := New(nil).Extract("# A\n## Features\n- one thing\n")
	large := New(nil).Extract(samplePRD)

	if large.Estimate.Hours <= small.Estimate.Hours {
		t.Errorf("larger document should estimate more hours: %d vs %d", large.Estimate.Hours, small.Estimate.Hours)
	}
	if small.Estimate.Confidence < large.Estimate.Confidence {
		t.Errorf("simpler document should not be less confident: %v vs %v", small.Estimate.Confidence, large.Estimate.Confidence)
	}
}
