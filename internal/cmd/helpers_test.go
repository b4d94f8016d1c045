package cmd

// resetFlags restores every command flag variable to its registered
// default. Cobra keeps flag values between Execute calls, so tests
// that share the package-level command tree must reset them.
func resetFlags() {
	generateFlags.in = ""
	generateFlags.out = ""
	generateFlags.renderTo = ""
	generateFlags.strategy = "systematic"
	generateFlags.outputFormat = "roadmap"
	generateFlags.profile = "standard"
	generateFlags.skipGates = false
	generateFlags.timelineDays = 0
	generateFlags.estimates = true
	generateFlags.dependencies = true
	generateFlags.risks = true
	generateFlags.parallel = true
	generateFlags.milestones = true
	generateFlags.providers = nil

	validateFlags.in = ""
	validateFlags.profile = "standard"
	validateFlags.output = "text"
	validateFlags.report = ""
	validateFlags.timelineDays = 0

	interviewFlags.preset = "feature"
	interviewFlags.out = ""
	interviewFlags.list = false
	interviewFlags.resume = false

	reviewFlags.in = ""

	versionVerbose = false
	versionJSON = false
}
