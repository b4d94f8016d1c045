package interview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTripResumesWhereItStopped(t *testing.T) {
	e, err := NewEngine("quick")
	require.NoError(t, err)
	require.NoError(t, e.SubmitAnswer("Search Service", nil))

	path := filepath.Join(t.TempDir(), "interview.json")
	require.NoError(t, SaveSession(e.Session(), path))

	loaded, err := LoadSession(path)
	require.NoError(t, err)

	resumed, err := ResumeEngine(loaded)
	require.NoError(t, err)

	// The first question was answered before saving, so the resumed
	// engine continues with the second.
	q := resumed.CurrentQuestion()
	require.NotNil(t, q)
	assert.Equal(t, "requirements", q.ID)

	answered, total := resumed.Progress()
	assert.Equal(t, 1, answered)
	assert.Equal(t, total, len(e.Session().Questions))
}

func TestLoadSessionMissingFile(t *testing.T) {
	_, err := LoadSession(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IO-001")
}

func TestLoadSessionCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interview.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadSession(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IO-002")
	assert.Contains(t, err.Error(), "start the interview over")
}

func TestResumeEngineRejectsInconsistentSession(t *testing.T) {
	_, err := ResumeEngine(&Session{Preset: "nonexistent"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INTERVIEW-001")

	e, nerr := NewEngine("quick")
	require.NoError(t, nerr)
	s := e.Session()
	s.Current = len(s.Questions) + 1

	_, err = ResumeEngine(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INTERVIEW-002")
}
