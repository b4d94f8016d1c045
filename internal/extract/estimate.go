package extract

import (
	"github.com/felixgeelhaar/planwright/internal/domain"
)

// Base hours per complexity tier.
const (
	baseHoursSimple   = 20
	baseHoursModerate = 80
	baseHoursComplex  = 200
)

// Per-requirement additions and priority surcharge.
const (
	hoursPerFunctional    = 2
	hoursPerNonFunctional = 3
	hoursPerTechnical     = 4
	hoursPerHighPriority  = 2
)

// Confidence model: fixed baseline, reduced for high complexity and
// heavy constraint/assumption load, floored at a minimum.
const (
	confidenceBaseline    = 0.8
	complexityPenalty     = 0.15
	constraintPenalty     = 0.1
	constraintPenaltyAt   = 3
	constraintPenaltyMore = 6
	confidenceFloor       = 0.3
)

// estimateEffort derives an effort figure from the classified
// requirement set and its complexity tier.
func estimateEffort(set *RequirementSet, complexity domain.Complexity) Estimate {
	var hours int
	switch complexity {
	case domain.ComplexityComplex:
		hours = baseHoursComplex
	case domain.ComplexityModerate:
		hours = baseHoursModerate
	default:
		hours = baseHoursSimple
	}

	hours += hoursPerFunctional * len(set.Functional)
	hours += hoursPerNonFunctional * len(set.NonFunctional)
	hours += hoursPerTechnical * len(set.Technical)

	for _, req := range set.All() {
		if req.Priority == domain.PriorityHigh {
			hours += hoursPerHighPriority
		}
	}

	confidence := confidenceBaseline
	if complexity == domain.ComplexityComplex {
		confidence -= complexityPenalty
	}
	extras := len(set.Constraints) + len(set.Assumptions)
	if extras > constraintPenaltyAt {
		confidence -= constraintPenalty
	}
	if extras > constraintPenaltyMore {
		confidence -= constraintPenalty
	}
	if confidence < confidenceFloor {
		confidence = confidenceFloor
	}

	return Estimate{Hours: hours, Confidence: confidence}
}
