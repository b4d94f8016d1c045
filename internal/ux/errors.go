package ux

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/planwright/internal/errors"
)

var (
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	docsStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true)
)

// RenderError formats an error for the terminal. Coded errors get
// their suggestions and docs link; anything else renders plainly.
func RenderError(err error) string {
	if err == nil {
		return ""
	}

	var pwErr *errors.PlanwrightError
	if !stderrors.As(err, &pwErr) {
		return errorStyle.Render("Error: ") + err.Error()
	}

	var b strings.Builder
	b.WriteString(errorStyle.Render(fmt.Sprintf("Error [%s]: ", pwErr.Code)))
	b.WriteString(pwErr.Message)

	for _, s := range pwErr.Suggestions {
		b.WriteString("\n  ")
		b.WriteString(suggestionStyle.Render("hint: " + s))
	}
	if pwErr.DocsURL != "" {
		b.WriteString("\n  ")
		b.WriteString(docsStyle.Render(pwErr.DocsURL))
	}
	return b.String()
}

// EnhanceError attaches a contextual next step to common failures.
func EnhanceError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	if strings.Contains(msg, "no such file or directory") {
		switch {
		case strings.Contains(msg, "workflow.json"):
			return fmt.Errorf("%w\n\n%s", err, "Generate a workflow first: planwright generate --in PRD.md")
		case strings.Contains(msg, "PRD.md"):
			return fmt.Errorf("%w\n\n%s", err, "Write a PRD.md or run 'planwright interview'")
		}
	}
	return err
}
