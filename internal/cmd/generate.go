package cmd

import (
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/errors"
	"github.com/felixgeelhaar/planwright/internal/extract"
	"github.com/felixgeelhaar/planwright/internal/format"
	"github.com/felixgeelhaar/planwright/internal/gates"
	"github.com/felixgeelhaar/planwright/internal/log"
	"github.com/felixgeelhaar/planwright/internal/persona"
	"github.com/felixgeelhaar/planwright/internal/plan"
	"github.com/felixgeelhaar/planwright/internal/profiles"
	"github.com/felixgeelhaar/planwright/internal/toolplan"
	"github.com/felixgeelhaar/planwright/internal/ux"
	"github.com/felixgeelhaar/planwright/internal/workflow"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a workflow plan from a requirements document",
	Long: `Generate reads a free-text requirements document, extracts its
requirements and constraints, and produces a phased workflow plan with
task estimates, dependency analysis, and tool orchestration.

The generated workflow is saved as JSON for later validation and
review, and the rendered plan is printed to stdout or written to a
file with --render-to.`,
	Example: `  planwright generate --in PRD.md
  planwright generate --in PRD.md --strategy agile --format guide
  planwright generate --in PRD.md --profile strict --timeline-days 30
  planwright generate --in PRD.md --render-to plan.md -o workflow.json`,
	RunE: runGenerate,
}

var generateFlags struct {
	in           string
	out          string
	renderTo     string
	strategy     string
	outputFormat string
	profile      string
	skipGates    bool
	timelineDays int
	estimates    bool
	dependencies bool
	risks        bool
	parallel     bool
	milestones   bool
	providers    []string
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateFlags.in, "in", "", "requirements document to read (default: .planwright/PRD.md)")
	f.StringVarP(&generateFlags.out, "out", "o", "", "workflow file to write (default: .planwright/workflow.json)")
	f.StringVar(&generateFlags.renderTo, "render-to", "", "write the rendered plan to a file instead of stdout")
	f.StringVar(&generateFlags.strategy, "strategy", "systematic", "planning strategy (systematic, agile, mvp)")
	f.StringVar(&generateFlags.outputFormat, "format", "roadmap", "output format (roadmap, tasks, guide, machine, combined)")
	f.StringVar(&generateFlags.profile, "profile", "standard", "quality gate profile (standard, strict, enterprise, or project profile)")
	f.BoolVar(&generateFlags.skipGates, "skip-gates", false, "skip quality gate validation")
	f.IntVar(&generateFlags.timelineDays, "timeline-days", 0, "available timeline in days for feasibility checks")
	f.BoolVar(&generateFlags.estimates, "estimates", true, "include effort estimates in the rendered plan")
	f.BoolVar(&generateFlags.dependencies, "dependencies", true, "analyze task dependencies and the critical path")
	f.BoolVar(&generateFlags.risks, "risks", true, "detect bottlenecks and risk factors")
	f.BoolVar(&generateFlags.parallel, "parallel", true, "identify parallelizable work streams")
	f.BoolVar(&generateFlags.milestones, "milestones", true, "create phase milestones")
	f.StringSliceVar(&generateFlags.providers, "tool-providers", nil, "extra tool providers to attach to every task")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := loggerFor(cmd)
	paths := ux.NewPathDefaults()

	inPath := generateFlags.in
	if inPath == "" {
		inPath = paths.DocumentFile()
	}
	text, err := readDocument(inPath)
	if err != nil {
		return ux.EnhanceError(err)
	}

	for _, p := range generateFlags.providers {
		if !toolplan.KnownProvider(p) {
			return errors.New(errors.ErrCodeToolProviderUnknown,
				fmt.Sprintf("unknown tool provider: %s", p)).
				WithSuggestion("Available providers: " + strings.Join(toolplan.ProviderNames(), ", "))
		}
	}

	doc := extract.New(logger).Extract(text)
	if doc.Requirements.Count() == 0 {
		// Malformed input degrades to a minimal workflow; the
		// completeness gate reports it instead of a hard failure.
		logger.Warn("no requirements recognized, generating a minimal workflow", "path", inPath)
	}

	opts := workflow.DefaultOptions()
	opts.Strategy = generateFlags.strategy
	opts.OutputFormat = generateFlags.outputFormat
	opts.TimelineDays = generateFlags.timelineDays
	opts.IncludeEstimates = generateFlags.estimates
	opts.IncludeDependencies = generateFlags.dependencies
	opts.IncludeRisks = generateFlags.risks
	opts.IdentifyParallel = generateFlags.parallel
	opts.CreateMilestones = generateFlags.milestones
	opts.ToolProviders = generateFlags.providers
	opts.CreatedBy = currentUser()

	gen := workflow.NewGenerator(logger, nil)
	w := gen.Generate(cmd.Context(), doc, opts)

	if err := w.Validate(); err != nil {
		return errors.NewWorkflowInvalidError(err.Error())
	}

	if !generateFlags.skipGates {
		report, err := runGates(cmd, logger, generateFlags.profile, gen.GateInput(w, opts))
		if err != nil {
			return err
		}
		if report != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Quality gates: %d passed, %d failed (score %.0f)\n",
				report.Summary.Passed, report.Summary.Failed, report.OverallScore)
		}
	}

	outPath := generateFlags.out
	if outPath == "" {
		if err := paths.EnsureDir(); err != nil {
			return err
		}
		outPath = paths.WorkflowFile()
	}
	if err := plan.Save(w, outPath); err != nil {
		return err
	}
	logger.Info("workflow saved", "path", outPath, "tasks", len(w.AllTasks()))

	rendered, err := format.Render(w, domain.ParseOutputFormat(opts.OutputFormat), format.Options{
		IncludeEstimates: opts.IncludeEstimates,
	})
	if err != nil {
		return err
	}

	if generateFlags.renderTo != "" {
		return os.WriteFile(generateFlags.renderTo, []byte(rendered), 0o644)
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

// runGates loads the named profile and executes its gate selection,
// extended by the gates the workflow's lead persona mandates. A
// rejecting report becomes an error so the process exits with the
// gate failure code.
func runGates(cmd *cobra.Command, logger *log.Logger, name string, in *gates.Input) (*gates.Report, error) {
	profile, err := loadProfile(name)
	if err != nil {
		return nil, err
	}

	ids := profile.GateIDs()
	if in.Workflow != nil {
		ids = mergeGateIDs(ids, persona.MustGet(in.Workflow.Persona).GateIDs())
	}

	runner := gates.NewRunner(logger)
	report := runner.RunSelection(cmd.Context(), domain.GateProfile(profile.Name),
		ids, profile.GateTimeout, in)

	if profile.Rejects(report) {
		return report, errors.New(errors.ErrCodeWorkflowRejected,
			fmt.Sprintf("quality gates rejected the workflow: %d critical, %d major issues",
				report.Summary.CriticalIssues, report.Summary.MajorIssues)).
			WithSuggestions(report.Summary.ImprovementAreas...).
			WithSuggestion("Re-run with --skip-gates to save the workflow anyway")
	}
	return report, nil
}

// mergeGateIDs appends extra gate ids that the base selection does
// not already contain, keeping base order first.
func mergeGateIDs(base, extra []domain.GateID) []domain.GateID {
	seen := make(map[domain.GateID]bool, len(base))
	for _, id := range base {
		seen[id] = true
	}
	for _, id := range extra {
		if !seen[id] {
			seen[id] = true
			base = append(base, id)
		}
	}
	return base
}

func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewDocNotFoundError(path)
		}
		return "", errors.Wrap(errors.ErrCodeFileReadFailed,
			fmt.Sprintf("reading %s", path), err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.New(errors.ErrCodeDocEmpty,
			fmt.Sprintf("document %s is empty", path)).
			WithSuggestion("Run 'planwright interview' to draft a requirements document")
	}
	return string(data), nil
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "planwright"
}

// loadProfile resolves a gate profile by name, layering any project
// profile found from the current directory over the built-in one.
func loadProfile(name string) (*profiles.Profile, error) {
	loader := profiles.NewLoader()
	if root, err := ux.DiscoverProjectRoot(); err == nil {
		loader.SetProjectDir(root)
	}
	return loader.Load(name)
}
