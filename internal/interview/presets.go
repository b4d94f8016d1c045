package interview

// Document section names the presets feed. The generated document
// uses the same heading styles the extractor detects.
const (
	sectionOverview      = "Overview"
	sectionRequirements  = "Requirements"
	sectionNonFunctional = "Non-Functional Requirements"
	sectionConstraints   = "Constraints"
	sectionAssumptions   = "Assumptions"
)

// GetPresets returns the built-in interview templates.
func GetPresets() map[string]Preset {
	return map[string]Preset{
		"feature": featurePreset(),
		"api":     apiPreset(),
		"ui":      uiPreset(),
		"quick":   quickPreset(),
	}
}

func featurePreset() Preset {
	return Preset{
		Name:        "feature",
		Description: "General feature planning interview",
		Questions: []Question{
			{
				ID:       "title",
				Type:     QuestionTypeText,
				Text:     "What is the feature called?",
				Required: true,
				Section:  sectionOverview,
			},
			{
				ID:          "summary",
				Type:        QuestionTypeText,
				Text:        "Describe the feature in one or two sentences.",
				Description: "What problem does it solve, and for whom?",
				Required:    true,
				Section:     sectionOverview,
			},
			{
				ID:          "requirements",
				Type:        QuestionTypeMulti,
				Text:        "List the functional requirements, one per line.",
				Description: "Start each with 'must' or 'should' to signal priority.",
				Required:    true,
				Section:     sectionRequirements,
			},
			{
				ID:      "quality",
				Type:    QuestionTypeMulti,
				Text:    "Any performance, security, or usability expectations?",
				Section: sectionNonFunctional,
			},
			{
				ID:      "has-deadline",
				Type:    QuestionTypeYesNo,
				Text:    "Is there a hard deadline?",
				Section: sectionConstraints,
			},
			{
				ID:      "deadline",
				Type:    QuestionTypeText,
				Text:    "When, and what drives it?",
				Section: sectionConstraints,
				SkipIf:  "has-deadline=no",
			},
			{
				ID:      "assumptions",
				Type:    QuestionTypeMulti,
				Text:    "What are you assuming to be true?",
				Section: sectionAssumptions,
			},
		},
	}
}

func apiPreset() Preset {
	return Preset{
		Name:        "api",
		Description: "Service and API planning interview",
		Questions: []Question{
			{
				ID:       "title",
				Type:     QuestionTypeText,
				Text:     "What is the service called?",
				Required: true,
				Section:  sectionOverview,
			},
			{
				ID:       "endpoints",
				Type:     QuestionTypeMulti,
				Text:     "Which endpoints or operations must the API expose?",
				Required: true,
				Section:  sectionRequirements,
			},
			{
				ID:      "storage",
				Type:    QuestionTypeText,
				Text:    "What data does it persist, and where?",
				Section: sectionRequirements,
			},
			{
				ID:       "auth",
				Type:     QuestionTypeChoice,
				Text:     "How do callers authenticate?",
				Choices:  []string{"none", "api keys", "oauth", "mutual tls"},
				Required: true,
				Section:  sectionNonFunctional,
			},
			{
				ID:      "sla",
				Type:    QuestionTypeMulti,
				Text:    "Latency or availability targets?",
				Section: sectionNonFunctional,
			},
		},
	}
}

func uiPreset() Preset {
	return Preset{
		Name:        "ui",
		Description: "User interface planning interview",
		Questions: []Question{
			{
				ID:       "title",
				Type:     QuestionTypeText,
				Text:     "What is the interface for?",
				Required: true,
				Section:  sectionOverview,
			},
			{
				ID:       "screens",
				Type:     QuestionTypeMulti,
				Text:     "Which screens or components does the user interface need?",
				Required: true,
				Section:  sectionRequirements,
			},
			{
				ID:      "accessibility",
				Type:    QuestionTypeYesNo,
				Text:    "Must it meet accessibility standards?",
				Section: sectionNonFunctional,
			},
			{
				ID:      "responsive",
				Type:    QuestionTypeYesNo,
				Text:    "Does it need to work on mobile?",
				Section: sectionNonFunctional,
			},
		},
	}
}

func quickPreset() Preset {
	return Preset{
		Name:        "quick",
		Description: "Minimal two-question interview",
		Questions: []Question{
			{
				ID:       "title",
				Type:     QuestionTypeText,
				Text:     "What are you building?",
				Required: true,
				Section:  sectionOverview,
			},
			{
				ID:       "requirements",
				Type:     QuestionTypeMulti,
				Text:     "List what it must do, one item per line.",
				Required: true,
				Section:  sectionRequirements,
			},
		},
	}
}
