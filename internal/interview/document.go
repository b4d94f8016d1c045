package interview

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/planwright/internal/errors"
)

// Document renders a completed interview into a requirements document
// the extractor understands: a title heading plus one section per
// answered topic.
func (e *Engine) Document() (string, error) {
	if !e.IsComplete() {
		answered, total := e.Progress()
		return "", errors.New(errors.ErrCodeInterviewNotComplete,
			fmt.Sprintf("interview has %d of %d questions answered", answered, total))
	}

	sections := make(map[string][]string)
	var order []string
	title := "Untitled"

	for _, q := range e.session.Questions {
		answer, ok := e.session.Answers[q.ID]
		if !ok {
			continue
		}

		if q.ID == "title" && answer.Value != "" {
			title = answer.Value
			continue
		}

		lines := answerLines(q, answer)
		if len(lines) == 0 {
			continue
		}
		if _, seen := sections[q.Section]; !seen {
			order = append(order, q.Section)
		}
		sections[q.Section] = append(sections[q.Section], lines...)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", title)
	for _, section := range order {
		fmt.Fprintf(&b, "\n## %s\n", section)
		for _, line := range sections[section] {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	return b.String(), nil
}

// answerLines flattens an answer into document bullet lines. Yes/no
// answers only contribute when affirmative, phrased from the question
// so the extractor's vocabulary can match it.
func answerLines(q Question, a Answer) []string {
	switch q.Type {
	case QuestionTypeMulti:
		return a.Values
	case QuestionTypeYesNo:
		if normalizeYesNo(a.Value) != "yes" {
			return nil
		}
		return []string{strings.TrimSuffix(q.Text, "?")}
	default:
		if a.Value == "" {
			return nil
		}
		if q.Section == sectionOverview {
			return []string{a.Value}
		}
		return []string{fmt.Sprintf("%s: %s", strings.TrimSuffix(q.Text, "?"), a.Value)}
	}
}
