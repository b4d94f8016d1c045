package extract

import (
	"regexp"
	"strings"
)

// Heading patterns in priority order. The first match wins so a
// markdown heading is never misread as a numbered one.
var (
	markdownHeading  = regexp.MustCompile(`^#{1,6}\s+(.+?)\s*$`)
	numberedHeading  = regexp.MustCompile(`^\d+(?:\.\d+)*[.)]\s+(.+?)\s*$`)
	allCapsHeading   = regexp.MustCompile(`^([A-Z][A-Z0-9 /&-]{2,})\s*$`)
	titleCaseHeading = regexp.MustCompile(`^([A-Z][A-Za-z0-9 /&-]*):\s*$`)
)

// criteriaPattern detects acceptance-criteria lines: a bullet followed
// by one of the scenario keywords.
var criteriaPattern = regexp.MustCompile(`(?i)^\s*[-*•]\s*(given|when|then|criteria|scenario)\b[:\s]*(.*)$`)

// bulletPattern matches generic list items in section bodies.
var bulletPattern = regexp.MustCompile(`^\s*[-*•]\s+(.+)$`)

// headingTitle returns the heading text if the line is a heading.
func headingTitle(line string) (string, bool) {
	if m := markdownHeading.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	if m := numberedHeading.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	if m := allCapsHeading.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := titleCaseHeading.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// splitSections segments raw text into titled sections. Lines before
// the first heading accumulate into an untitled overview section.
// Acceptance-criteria lines attach to the enclosing section instead of
// its body.
func splitSections(text string) []Section {
	var sections []Section
	current := Section{Title: "Overview"}
	started := false

	flush := func() {
		if started || len(current.Body) > 0 || len(current.Criteria) > 0 {
			sections = append(sections, current)
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if title, ok := headingTitle(line); ok {
			flush()
			current = Section{Title: title}
			started = true
			continue
		}

		if m := criteriaPattern.FindStringSubmatch(line); m != nil {
			criterion := strings.TrimSpace(m[1] + " " + m[2])
			current.Criteria = append(current.Criteria, criterion)
			continue
		}

		current.Body = append(current.Body, strings.TrimSpace(line))
	}
	flush()

	return sections
}

// bodyItems returns the requirement-bearing lines of a section body:
// list items where present, otherwise each sentence-like line.
func bodyItems(body []string) []string {
	var items []string
	for _, line := range body {
		if m := bulletPattern.FindStringSubmatch(line); m != nil {
			items = append(items, strings.TrimSpace(m[1]))
			continue
		}
		items = append(items, line)
	}
	return items
}
