package domain

import "fmt"

// Persona represents a domain-specialization profile used to bias task
// generation, tool selection, and effort estimation.
type Persona string

// Valid personas
const (
	PersonaFrontend    Persona = "frontend"
	PersonaBackend     Persona = "backend"
	PersonaSecurity    Persona = "security"
	PersonaArchitect   Persona = "architect"
	PersonaQA          Persona = "qa"
	PersonaPerformance Persona = "performance"
	PersonaDevOps      Persona = "devops"
)

// AllPersonas returns every valid persona in registry order.
// Dispatch over personas should range over this slice so a new persona
// only needs to be added here and in the template registry.
func AllPersonas() []Persona {
	return []Persona{
		PersonaFrontend,
		PersonaBackend,
		PersonaSecurity,
		PersonaArchitect,
		PersonaQA,
		PersonaPerformance,
		PersonaDevOps,
	}
}

// NewPersona creates a new Persona value object with validation
func NewPersona(value string) (Persona, error) {
	p := Persona(value)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate checks if the persona is valid
func (p Persona) Validate() error {
	for _, known := range AllPersonas() {
		if p == known {
			return nil
		}
	}
	return fmt.Errorf("invalid persona %q", string(p))
}

// String returns the string representation
func (p Persona) String() string {
	return string(p)
}
