package tui

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/felixgeelhaar/planwright/internal/interview"
)

// RunInterview walks a requirements interview interactively, one form
// per question, and returns the engine once every question is
// answered or skipped.
func RunInterview(engine *interview.Engine) error {
	for {
		q := engine.CurrentQuestion()
		if q == nil {
			return nil
		}

		value, values, err := ask(q)
		if err != nil {
			return err
		}

		if err := engine.SubmitAnswer(value, values); err != nil {
			// Validation failures re-ask the same question.
			continue
		}
	}
}

func ask(q *interview.Question) (string, []string, error) {
	switch q.Type {
	case interview.QuestionTypeMulti:
		var raw string
		form := huh.NewForm(huh.NewGroup(
			huh.NewText().
				Title(q.Text).
				Description(descriptionFor(q, "one item per line")).
				Value(&raw),
		))
		if err := form.Run(); err != nil {
			return "", nil, err
		}
		return "", splitLines(raw), nil

	case interview.QuestionTypeYesNo:
		var yes bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(q.Text).
				Description(q.Description).
				Value(&yes),
		))
		if err := form.Run(); err != nil {
			return "", nil, err
		}
		if yes {
			return "yes", nil, nil
		}
		return "no", nil, nil

	case interview.QuestionTypeChoice:
		var choice string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title(q.Text).
				Description(q.Description).
				Options(huh.NewOptions(q.Choices...)...).
				Value(&choice),
		))
		if err := form.Run(); err != nil {
			return "", nil, err
		}
		return choice, nil, nil

	default:
		var value string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title(q.Text).
				Description(q.Description).
				Value(&value),
		))
		if err := form.Run(); err != nil {
			return "", nil, err
		}
		return value, nil, nil
	}
}

func descriptionFor(q *interview.Question, fallback string) string {
	if q.Description != "" {
		return q.Description
	}
	return fallback
}

func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
