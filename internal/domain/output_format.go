package domain

import "fmt"

// OutputFormat selects the textual shape a generated workflow is
// rendered into.
type OutputFormat string

// Valid output formats
const (
	FormatRoadmap  OutputFormat = "roadmap"
	FormatTasks    OutputFormat = "tasks"
	FormatGuide    OutputFormat = "guide"
	FormatMachine  OutputFormat = "machine"
	FormatCombined OutputFormat = "combined"
)

// ParseOutputFormat converts a string into an OutputFormat.
// Unrecognized values fall back to roadmap rather than failing.
func ParseOutputFormat(value string) OutputFormat {
	switch OutputFormat(value) {
	case FormatRoadmap, FormatTasks, FormatGuide, FormatMachine, FormatCombined:
		return OutputFormat(value)
	default:
		return FormatRoadmap
	}
}

// Validate checks if the output format is valid
func (f OutputFormat) Validate() error {
	switch f {
	case FormatRoadmap, FormatTasks, FormatGuide, FormatMachine, FormatCombined:
		return nil
	default:
		return fmt.Errorf("invalid output format %q", string(f))
	}
}

// String returns the string representation
func (f OutputFormat) String() string {
	return string(f)
}
