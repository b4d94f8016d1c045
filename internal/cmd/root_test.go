package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	output, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "planwright")
}

func TestVersionJSON(t *testing.T) {
	output, err := execute(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, output, `"version"`)
}

func TestInterviewListPresets(t *testing.T) {
	output, err := execute(t, "interview", "--list")
	require.NoError(t, err)
	assert.Contains(t, output, "feature")
	assert.Contains(t, output, "api")
	assert.Contains(t, output, "ui")
	assert.Contains(t, output, "quick")
}

func TestReviewMissingWorkflow(t *testing.T) {
	_, err := execute(t, "review", "--in", "does-not-exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WF-001")
}

func TestUnknownCommand(t *testing.T) {
	_, err := execute(t, "frobnicate")
	require.Error(t, err)
}
