package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeWithInput runs the command tree with the given stdin, for
// commands that prompt.
func executeWithInput(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	buf := &bytes.Buffer{}
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.ExecuteContext(context.Background())
	rootCmd.SetIn(nil)
	return buf.String(), err
}

func TestInterviewRefusesFreshStartOverPendingSession(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(".planwright", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(".planwright", "interview.json"),
		[]byte(`{"id":"s1","preset":"quick","questions":[{"id":"title"}],"answers":{},"current":0}`), 0o644))

	_, err := execute(t, "interview")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INTERVIEW-002")
	assert.Contains(t, err.Error(), "--resume")
}

func TestInterviewResumeWithoutSession(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "interview", "--resume")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interview session not found")
}

func TestInterviewDeclinedOverwriteKeepsDocument(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("PRD.md", []byte("# Existing\n"), 0o644))

	output, err := executeWithInput(t, "n\n", "interview", "--out", "PRD.md")
	require.NoError(t, err)
	assert.Contains(t, output, "Keeping the existing document")

	data, err := os.ReadFile("PRD.md")
	require.NoError(t, err)
	assert.Equal(t, "# Existing\n", string(data))
}
