package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planwright/internal/log"
	"github.com/felixgeelhaar/planwright/internal/ux"
)

var rootCmd = &cobra.Command{
	Use:   "planwright",
	Short: "Workflow planning engine for requirement documents",
	Long: `planwright turns free-text requirement documents into structured,
phased workflow plans. It extracts requirements, assigns specialist
personas, schedules tasks with dependency analysis, runs quality gates
against the result, and renders the plan as a roadmap, task breakdown,
implementation guide, or machine-readable JSON.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cmd.Help(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nNext: %s\n", ux.SuggestNextSteps())
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a cancellable context so
// long gate runs stop on interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "json", "log format (json, text)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging with source locations")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress informational output")
}

// loggerFor builds a logger from the persistent flags. Flag lookup
// errors fall back to the default configuration.
func loggerFor(cmd *cobra.Command) *log.Logger {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return log.Default()
	}
	return cc.Logger()
}
