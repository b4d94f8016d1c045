package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planwright/internal/errors"
	"github.com/felixgeelhaar/planwright/internal/interview"
	"github.com/felixgeelhaar/planwright/internal/tui"
	"github.com/felixgeelhaar/planwright/internal/ux"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Draft a requirements document interactively",
	Long: `Interview walks through a preset list of questions and writes the
answers as a structured requirements document, ready for
'planwright generate'. Question presets cover common project shapes;
answers to skip conditions prune questions that no longer apply.

An interrupted interview is saved to the project directory and can be
picked up again with --resume.`,
	Example: `  planwright interview
  planwright interview --preset api --out PRD.md
  planwright interview --resume
  planwright interview --list`,
	RunE: runInterview,
}

var interviewFlags struct {
	preset string
	out    string
	list   bool
	resume bool
}

func init() {
	f := interviewCmd.Flags()
	f.StringVar(&interviewFlags.preset, "preset", "feature", "question preset (feature, api, ui, quick)")
	f.StringVar(&interviewFlags.out, "out", "", "document file to write (default: .planwright/PRD.md)")
	f.BoolVar(&interviewFlags.list, "list", false, "list available presets and exit")
	f.BoolVar(&interviewFlags.resume, "resume", false, "resume an interrupted interview session")

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(cmd *cobra.Command, args []string) error {
	if interviewFlags.list {
		return listPresets(cmd)
	}

	paths := ux.NewPathDefaults()
	sessionPath := paths.SessionFile()

	engine, err := interviewEngine(sessionPath)
	if err != nil {
		return err
	}

	outPath := interviewFlags.out
	if outPath == "" {
		if err := paths.EnsureDir(); err != nil {
			return err
		}
		outPath = paths.DocumentFile()
	}
	if _, err := os.Stat(outPath); err == nil {
		if !ux.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
			fmt.Sprintf("Overwrite %s", outPath), false) {
			fmt.Fprintln(cmd.OutOrStdout(), "Keeping the existing document.")
			return nil
		}
	}

	if err := tui.RunInterview(engine); err != nil {
		// Keep the answers so the interview can be picked up again.
		if paths.EnsureDir() != nil {
			return err
		}
		if saveErr := interview.SaveSession(engine.Session(), sessionPath); saveErr == nil {
			fmt.Fprintf(cmd.ErrOrStderr(),
				"Interview interrupted, resume with 'planwright interview --resume'\n")
		}
		return err
	}

	doc, err := engine.Document()
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		return err
	}
	os.Remove(sessionPath)

	answered, total := engine.Progress()
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d of %d questions answered)\n", outPath, answered, total)
	fmt.Fprintf(cmd.OutOrStdout(), "\nNext: planwright generate --in %s\n", outPath)
	return nil
}

// interviewEngine builds the engine for this run: from the saved
// session with --resume, otherwise fresh. Starting fresh while a saved
// session exists is an error so answers are not silently lost.
func interviewEngine(sessionPath string) (*interview.Engine, error) {
	if interviewFlags.resume {
		if err := ux.ValidateRequiredFile(sessionPath, "interview session", "planwright interview"); err != nil {
			return nil, err
		}
		session, err := interview.LoadSession(sessionPath)
		if err != nil {
			return nil, err
		}
		return interview.ResumeEngine(session)
	}

	if _, err := os.Stat(sessionPath); err == nil {
		return nil, errors.New(errors.ErrCodeInterviewAlreadyStarted,
			"an interview session is already in progress").
			WithSuggestion("Resume it with 'planwright interview --resume'").
			WithSuggestion(fmt.Sprintf("Or delete %s to start over", sessionPath))
	}
	return interview.NewEngine(interviewFlags.preset)
}

func listPresets(cmd *cobra.Command) error {
	presets := interview.GetPresets()

	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := presets[name]
		fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %s (%d questions)\n", name, p.Description, len(p.Questions))
	}
	return nil
}
