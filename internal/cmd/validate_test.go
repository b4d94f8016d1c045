package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/planwright/internal/gates"
)

func generatedWorkflowFile(t *testing.T) string {
	t.Helper()
	prd := writePRD(t, testPRD)
	out := filepath.Join(t.TempDir(), "workflow.json")

	_, err := execute(t, "generate", "--in", prd, "--out", out)
	require.NoError(t, err)
	return out
}

func TestValidatePassingWorkflow(t *testing.T) {
	out := generatedWorkflowFile(t)

	output, err := execute(t, "validate", "--in", out)
	require.NoError(t, err)
	assert.Contains(t, output, "Overall score")
	assert.Contains(t, output, "PASS")
}

func TestValidateImpossibleTimeline(t *testing.T) {
	out := generatedWorkflowFile(t)

	output, err := execute(t, "validate", "--in", out, "--timeline-days", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WF-004")
	// The report is still printed so the user sees what failed.
	assert.Contains(t, output, "FAIL")
	assert.Contains(t, output, "critical")
	assert.Contains(t, output, "days over")
}

func TestValidateWritesJSONReport(t *testing.T) {
	out := generatedWorkflowFile(t)
	reportPath := filepath.Join(t.TempDir(), "report.json")

	_, err := execute(t, "validate", "--in", out, "--report", reportPath)
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	var report gates.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.NotEmpty(t, report.Results)
	assert.Greater(t, report.OverallScore, 0.0)
}

const authPRD = `# Authentication Gateway

## Requirements
- Users authenticate with OAuth2 and PKCE flows
- All tokens must be stored encrypted at rest
- The system must support threat modeling reviews before release
- Security audits run against every dependency update
- Session revocation propagates within one minute
`

func TestValidateRunsPersonaMandatedGates(t *testing.T) {
	prd := writePRD(t, authPRD)
	out := filepath.Join(t.TempDir(), "workflow.json")
	_, err := execute(t, "generate", "--in", prd, "--out", out)
	require.NoError(t, err)

	// The standard profile alone never selects the security gate;
	// a security-led workflow must still run it.
	output, err := execute(t, "validate", "--in", out, "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, output, `"gate": "security"`)
}

func TestValidateJSONOutput(t *testing.T) {
	out := generatedWorkflowFile(t)

	output, err := execute(t, "validate", "--in", out, "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, output, `"overall_score"`)
}

func TestValidateMissingWorkflow(t *testing.T) {
	_, err := execute(t, "validate", "--in", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WF-001")
}

func TestValidateCorruptWorkflow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workflow.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := execute(t, "validate", "--in", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WF-002")
}
