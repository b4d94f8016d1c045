package workflow

// Options configures one generation call. Unrecognized strategy and
// output-format values fall back to safe defaults instead of failing;
// the inclusion flags control what is attached to the result, never
// what is computed.
type Options struct {
	Strategy     string `json:"strategy"`
	OutputFormat string `json:"output_format"`

	IncludeEstimates    bool `json:"include_estimates"`
	IncludeDependencies bool `json:"include_dependencies"`
	IncludeRisks        bool `json:"include_risks"`
	IdentifyParallel    bool `json:"identify_parallel"`
	CreateMilestones    bool `json:"create_milestones"`

	// ToolProviders lists extra provider identifiers to assign to
	// every task on top of the persona template's preferences.
	ToolProviders []string `json:"tool_providers,omitempty"`

	// TimelineDays is an optional delivery constraint in working
	// days, consumed by the feasibility gate. Zero means none.
	TimelineDays int `json:"timeline_days,omitempty"`

	// CreatedBy attributes the workflow, usually the CLI user.
	CreatedBy string `json:"created_by,omitempty"`
}

// DefaultOptions returns the full-featured defaults the CLI starts
// from.
func DefaultOptions() Options {
	return Options{
		Strategy:            "systematic",
		OutputFormat:        "roadmap",
		IncludeEstimates:    true,
		IncludeDependencies: true,
		IncludeRisks:        true,
		IdentifyParallel:    true,
		CreateMilestones:    true,
	}
}
