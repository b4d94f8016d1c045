package interview

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/planwright/internal/errors"
)

// Engine manages the interview flow: question sequencing, skip
// conditions, and answer validation.
type Engine struct {
	session *Session
}

// NewEngine creates an engine for the named preset.
func NewEngine(preset string) (*Engine, error) {
	p, ok := GetPresets()[preset]
	if !ok {
		return nil, errors.NewInterviewPresetUnknownError(preset)
	}

	return &Engine{session: &Session{
		ID:        uuid.New().String(),
		Preset:    preset,
		Questions: p.Questions,
		Answers:   make(map[string]Answer),
	}}, nil
}

// Session exposes the underlying session for persistence.
func (e *Engine) Session() *Session {
	return e.session
}

// CurrentQuestion returns the question to ask next, advancing past
// any whose skip condition matches. A nil question means the
// interview is complete.
func (e *Engine) CurrentQuestion() *Question {
	for e.session.Current < len(e.session.Questions) {
		q := &e.session.Questions[e.session.Current]
		if !e.shouldSkip(q) {
			return q
		}
		e.session.Current++
	}
	return nil
}

// SubmitAnswer validates and records the answer to the current
// question, then advances.
func (e *Engine) SubmitAnswer(value string, values []string) error {
	q := e.CurrentQuestion()
	if q == nil {
		return errors.New(errors.ErrCodeInterviewNotComplete, "no question is pending")
	}

	answer := Answer{QuestionID: q.ID, Value: strings.TrimSpace(value)}
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			answer.Values = append(answer.Values, v)
		}
	}

	if err := validate(q, answer); err != nil {
		return err
	}

	e.session.Answers[q.ID] = answer
	e.session.Current++
	return nil
}

// IsComplete reports whether every remaining question is answered or
// skipped.
func (e *Engine) IsComplete() bool {
	return e.CurrentQuestion() == nil
}

// Progress returns answered and total question counts.
func (e *Engine) Progress() (answered, total int) {
	return len(e.session.Answers), len(e.session.Questions)
}

func validate(q *Question, a Answer) error {
	empty := a.Value == "" && len(a.Values) == 0
	if q.Required && empty {
		return errors.New(errors.ErrCodeInterviewAnswerRequired,
			fmt.Sprintf("question %q requires an answer", q.ID))
	}

	switch q.Type {
	case QuestionTypeYesNo:
		if !empty {
			switch strings.ToLower(a.Value) {
			case "yes", "no", "y", "n":
			default:
				return errors.New(errors.ErrCodeInterviewAnswerRequired,
					fmt.Sprintf("question %q expects yes or no", q.ID))
			}
		}
	case QuestionTypeChoice:
		if !empty && !containsFold(q.Choices, a.Value) {
			return errors.New(errors.ErrCodeInterviewAnswerRequired,
				fmt.Sprintf("question %q expects one of: %s", q.ID, strings.Join(q.Choices, ", ")))
		}
	}
	return nil
}

func (e *Engine) shouldSkip(q *Question) bool {
	if q.SkipIf == "" {
		return false
	}

	questionID, expected, ok := strings.Cut(q.SkipIf, "=")
	if !ok {
		return false
	}

	answer, exists := e.session.Answers[questionID]
	if !exists {
		return false
	}
	return strings.EqualFold(normalizeYesNo(answer.Value), strings.TrimSpace(expected))
}

// normalizeYesNo widens the short forms so skip conditions can use
// the full words.
func normalizeYesNo(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y":
		return "yes"
	case "n":
		return "no"
	default:
		return strings.TrimSpace(value)
	}
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
