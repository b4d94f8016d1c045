// Package format renders generated workflows into their output
// representations. Every renderer is a pure function of the workflow;
// nothing here mutates the plan.
package format

import (
	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/errors"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

// Options adjusts rendering without changing workflow content.
type Options struct {
	// IncludeEstimates controls whether effort figures appear in the
	// human-readable renderings. The machine format always carries
	// them so round-trips stay lossless.
	IncludeEstimates bool
}

// DefaultOptions enables estimate reporting.
func DefaultOptions() Options {
	return Options{IncludeEstimates: true}
}

// Render produces the requested representation of a workflow.
func Render(w *plan.GeneratedWorkflow, f domain.OutputFormat, opts Options) (string, error) {
	if w == nil {
		return "", errors.New(errors.ErrCodeFormatUnknown, "cannot render a nil workflow")
	}

	switch f {
	case domain.FormatRoadmap:
		return renderRoadmap(w, opts), nil
	case domain.FormatTasks:
		return renderTasks(w, opts), nil
	case domain.FormatGuide:
		return renderGuide(w, opts), nil
	case domain.FormatMachine:
		return renderMachine(w)
	case domain.FormatCombined:
		return renderCombined(w, opts)
	default:
		// Unrecognized formats were already normalized by
		// ParseOutputFormat; reaching this is a programming error.
		return renderRoadmap(w, opts), nil
	}
}
