package format

import (
	"strings"

	"github.com/felixgeelhaar/planwright/internal/plan"
)

// renderCombined concatenates the human-readable renderings followed
// by the machine serialization, separated by rulers.
func renderCombined(w *plan.GeneratedWorkflow, opts Options) (string, error) {
	machine, err := renderMachine(w)
	if err != nil {
		return "", err
	}

	sections := []string{
		renderRoadmap(w, opts),
		renderTasks(w, opts),
		renderGuide(w, opts),
		"```json\n" + machine + "```\n",
	}
	return strings.Join(sections, "\n---\n\n"), nil
}
