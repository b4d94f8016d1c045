package interview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/planwright/internal/extract"
)

func TestUnknownPresetFails(t *testing.T) {
	_, err := NewEngine("nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INTERVIEW-001")
}

func TestRequiredAnswerIsEnforced(t *testing.T) {
	e, err := NewEngine("quick")
	require.NoError(t, err)

	q := e.CurrentQuestion()
	require.NotNil(t, q)
	assert.Equal(t, "title", q.ID)

	err = e.SubmitAnswer("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INTERVIEW-004")

	require.NoError(t, e.SubmitAnswer("Search Service", nil))
	assert.Equal(t, "requirements", e.CurrentQuestion().ID)
}

func TestSkipConditionSkipsDeadlineDetail(t *testing.T) {
	e, err := NewEngine("feature")
	require.NoError(t, err)

	require.NoError(t, e.SubmitAnswer("Exports", nil))
	require.NoError(t, e.SubmitAnswer("Let users export their data", nil))
	require.NoError(t, e.SubmitAnswer("", []string{"Users must export as CSV"}))
	require.NoError(t, e.SubmitAnswer("", nil)) // quality, optional
	require.NoError(t, e.SubmitAnswer("no", nil))

	// With no deadline, the follow-up is skipped.
	assert.Equal(t, "assumptions", e.CurrentQuestion().ID)
}

func TestChoiceValidation(t *testing.T) {
	e, err := NewEngine("api")
	require.NoError(t, err)

	require.NoError(t, e.SubmitAnswer("Billing API", nil))
	require.NoError(t, e.SubmitAnswer("", []string{"POST /invoices"}))
	require.NoError(t, e.SubmitAnswer("postgres", nil))

	err = e.SubmitAnswer("carrier pigeon", nil)
	require.Error(t, err, "auth must be one of the listed choices")

	require.NoError(t, e.SubmitAnswer("OAuth", nil), "choice matching is case-insensitive")
}

func TestIncompleteInterviewCannotRenderDocument(t *testing.T) {
	e, err := NewEngine("quick")
	require.NoError(t, err)

	_, err = e.Document()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INTERVIEW-003")
}

func TestDocumentFeedsTheExtractor(t *testing.T) {
	e, err := NewEngine("ui")
	require.NoError(t, err)

	require.NoError(t, e.SubmitAnswer("Admin Console", nil))
	require.NoError(t, e.SubmitAnswer("", []string{
		"Build a React component for user management",
		"The user interface must show audit history",
	}))
	require.NoError(t, e.SubmitAnswer("yes", nil))
	require.NoError(t, e.SubmitAnswer("yes", nil))

	doc, err := e.Document()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "# Admin Console\n"))
	assert.Contains(t, doc, "## Requirements")
	assert.Contains(t, doc, "accessibility standards")

	result := extract.New(nil).Extract(doc)
	assert.Equal(t, "Admin Console", result.Title)
	assert.GreaterOrEqual(t, result.Requirements.Count(), 2)
}

func TestYesNoOnlyContributesWhenAffirmative(t *testing.T) {
	e, err := NewEngine("ui")
	require.NoError(t, err)

	require.NoError(t, e.SubmitAnswer("Console", nil))
	require.NoError(t, e.SubmitAnswer("", []string{"One screen"}))
	require.NoError(t, e.SubmitAnswer("n", nil))
	require.NoError(t, e.SubmitAnswer("no", nil))

	doc, err := e.Document()
	require.NoError(t, err)
	assert.NotContains(t, doc, "accessibility")
	assert.NotContains(t, doc, "mobile")
}
