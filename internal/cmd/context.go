package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planwright/internal/log"
)

// CommandContext carries the persistent flag values a command needs.
// Commands read their configuration from here instead of globals so
// tests can run them concurrently without flag interference.
type CommandContext struct {
	LogLevel  string
	LogFormat string
	Verbose   bool
	Quiet     bool
}

// NewCommandContext extracts the persistent flags from a command.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}

	logFormat, err := cmd.Flags().GetString("log-format")
	if err != nil {
		return nil, err
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Verbose:   verbose,
		Quiet:     quiet,
	}, nil
}

// Logger builds a logger from the context. Verbose wins over the
// level flag, quiet raises the floor to warnings.
func (cc *CommandContext) Logger() *log.Logger {
	if cc.Verbose {
		return log.Development()
	}

	cfg := log.DefaultConfig()
	cfg.Level = log.ParseLevel(cc.LogLevel)
	cfg.Format = log.ParseFormat(cc.LogFormat)
	if cc.Quiet && cfg.Level < log.LevelWarn {
		cfg.Level = log.LevelWarn
	}
	return log.New(cfg)
}
