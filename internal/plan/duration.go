package plan

import "fmt"

// Working-time conversion constants.
const (
	HoursPerDay  = 8
	HoursPerWeek = 40
)

// FormatDuration translates raw effort hours into a human duration.
// Less than one working day is shown in hours, up to a working week in
// days, and anything longer in weeks. Partial units round up.
func FormatDuration(hours int) string {
	if hours <= 0 {
		return "0 hours"
	}

	if hours < HoursPerDay {
		return plural(hours, "hour")
	}

	if hours <= HoursPerWeek {
		days := (hours + HoursPerDay - 1) / HoursPerDay
		return plural(days, "day")
	}

	weeks := (hours + HoursPerWeek - 1) / HoursPerWeek
	return plural(weeks, "week")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
