package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planwright/internal/errors"
	"github.com/felixgeelhaar/planwright/internal/gates"
	"github.com/felixgeelhaar/planwright/internal/plan"
	"github.com/felixgeelhaar/planwright/internal/ux"
	"github.com/felixgeelhaar/planwright/internal/workflow"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run quality gates against a saved workflow",
	Long: `Validate loads a previously generated workflow and runs the quality
gates of the selected profile against it. The report is printed in the
chosen output format; a workflow that fails the profile's threshold
exits non-zero.`,
	Example: `  planwright validate
  planwright validate --in workflow.json --profile strict
  planwright validate --profile enterprise --output yaml --report report.json`,
	RunE: runValidate,
}

var validateFlags struct {
	in           string
	profile      string
	output       string
	report       string
	timelineDays int
}

func init() {
	f := validateCmd.Flags()
	f.StringVar(&validateFlags.in, "in", "", "workflow file to validate (default: .planwright/workflow.json)")
	f.StringVar(&validateFlags.profile, "profile", "standard", "quality gate profile to apply")
	f.StringVar(&validateFlags.output, "output", "text", "report format (text, json, yaml)")
	f.StringVar(&validateFlags.report, "report", "", "also write the JSON report to this file")
	f.IntVar(&validateFlags.timelineDays, "timeline-days", 0, "available timeline in days for feasibility checks")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := loggerFor(cmd)
	paths := ux.NewPathDefaults()

	inPath := validateFlags.in
	if inPath == "" {
		inPath = paths.WorkflowFile()
	}
	w, err := loadWorkflow(inPath)
	if err != nil {
		return ux.EnhanceError(err)
	}

	opts := workflow.DefaultOptions()
	opts.TimelineDays = validateFlags.timelineDays

	gen := workflow.NewGenerator(logger, nil)
	report, gateErr := runGates(cmd, logger, validateFlags.profile, gen.GateInput(w, opts))
	if report == nil {
		return gateErr
	}

	if err := writeReport(cmd, report); err != nil {
		return err
	}
	if validateFlags.report != "" {
		if err := saveReportJSON(report, validateFlags.report); err != nil {
			return err
		}
	}
	return gateErr
}

// writeReport renders the report on stdout. Text output is a short
// human summary; json and yaml dump the full structure.
func writeReport(cmd *cobra.Command, report *gates.Report) error {
	out := cmd.OutOrStdout()

	if validateFlags.output == "text" {
		fmt.Fprintf(out, "Profile: %s\n", report.Profile)
		fmt.Fprintf(out, "Overall score: %.0f\n\n", report.OverallScore)
		for _, result := range report.Results {
			status := "PASS"
			if !result.Passed {
				status = "FAIL"
			}
			fmt.Fprintf(out, "  [%s] %-14s score %3d", status, result.Gate, result.Score)
			if len(result.Issues) > 0 {
				fmt.Fprintf(out, "  (%d issues)", len(result.Issues))
			}
			fmt.Fprintln(out)
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "         %s: %s\n", issue.Severity, issue.Description)
			}
		}
		s := report.Summary
		fmt.Fprintf(out, "\n%d passed, %d failed; %d critical, %d major, %d minor issues\n",
			s.Passed, s.Failed, s.CriticalIssues, s.MajorIssues, s.MinorIssues)
		return nil
	}

	formatter, err := ux.NewFormatter(validateFlags.output, &ux.FormatterOptions{Writer: out})
	if err != nil {
		return err
	}
	return formatter.Format(report)
}

func saveReportJSON(report *gates.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed,
			fmt.Sprintf("writing report to %s", path), err)
	}
	defer f.Close()

	formatter, err := ux.NewFormatter("json", &ux.FormatterOptions{Writer: f})
	if err != nil {
		return err
	}
	return formatter.Format(report)
}

// loadWorkflow reads a workflow file with coded errors so missing
// files map to the input-error exit code.
func loadWorkflow(path string) (*plan.GeneratedWorkflow, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeWorkflowNotFound,
			fmt.Sprintf("workflow file not found: %s", path)).
			WithSuggestion("Run 'planwright generate' to create a workflow first")
	}
	w, err := plan.Load(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeWorkflowInvalid,
			fmt.Sprintf("loading %s", path), err)
	}
	return w, nil
}
