package interview

// QuestionType defines how a question is asked and answered.
type QuestionType string

const (
	QuestionTypeText   QuestionType = "text"
	QuestionTypeMulti  QuestionType = "multi"
	QuestionTypeYesNo  QuestionType = "yesno"
	QuestionTypeChoice QuestionType = "choice"
)

// Question is a single prompt in a requirements interview.
type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Text        string       `json:"text"`
	Description string       `json:"description,omitempty"`
	Required    bool         `json:"required"`
	Choices     []string     `json:"choices,omitempty"`

	// Section names the document section the answer feeds.
	Section string `json:"section"`

	// SkipIf skips the question when a prior answer matches, format
	// "question-id=value".
	SkipIf string `json:"skip_if,omitempty"`
}

// Answer holds the response to one question.
type Answer struct {
	QuestionID string   `json:"question_id"`
	Value      string   `json:"value,omitempty"`
	Values     []string `json:"values,omitempty"`
}

// Session is one in-progress interview.
type Session struct {
	ID        string            `json:"id"`
	Preset    string            `json:"preset"`
	Questions []Question        `json:"questions"`
	Answers   map[string]Answer `json:"answers"`
	Current   int               `json:"current"`
}

// Preset is a reusable interview template.
type Preset struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}
