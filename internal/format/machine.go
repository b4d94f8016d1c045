package format

import (
	"encoding/json"

	"github.com/felixgeelhaar/planwright/internal/errors"
	"github.com/felixgeelhaar/planwright/internal/plan"
)

// renderMachine serializes the full workflow as indented JSON. The
// output must reconstruct losslessly through Parse, so it always
// carries estimates regardless of rendering options.
func renderMachine(w *plan.GeneratedWorkflow) (string, error) {
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeWorkflowMarshal, "marshal workflow", err)
	}
	return string(data) + "\n", nil
}

// Parse reconstructs a workflow from its machine rendering and
// validates the result.
func Parse(data []byte) (*plan.GeneratedWorkflow, error) {
	var w plan.GeneratedWorkflow
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFormatUnmarshal, "parse workflow", err).
			WithSuggestion("the input must be the machine output format")
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}
