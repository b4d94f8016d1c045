package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planwright/internal/errors"
	"github.com/felixgeelhaar/planwright/internal/tui"
	"github.com/felixgeelhaar/planwright/internal/ux"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review a generated workflow interactively",
	Long: `Review opens a terminal UI over a saved workflow. Browse tasks,
inspect details, then approve the plan or reject it with a reason.
Rejection exits non-zero so scripted pipelines stop.`,
	Example: `  planwright review
  planwright review --in workflow.json`,
	RunE: runReview,
}

var reviewFlags struct {
	in string
}

func init() {
	reviewCmd.Flags().StringVar(&reviewFlags.in, "in", "", "workflow file to review (default: .planwright/workflow.json)")

	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	paths := ux.NewPathDefaults()

	inPath := reviewFlags.in
	if inPath == "" {
		inPath = paths.WorkflowFile()
	}
	w, err := loadWorkflow(inPath)
	if err != nil {
		return ux.EnhanceError(err)
	}

	result, err := tui.RunReview(w)
	if err != nil {
		return err
	}

	if !result.Approved {
		return errors.New(errors.ErrCodeWorkflowRejected,
			fmt.Sprintf("workflow rejected: %s", result.Reason)).
			WithSuggestion("Adjust the requirements document and regenerate").
			WithSuggestion("Run 'planwright validate' for a gate-by-gate breakdown")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Workflow %s approved (%d tasks across %d phases)\n",
		w.ID, len(w.AllTasks()), len(w.Phases))
	return nil
}
