package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/planwright/internal/plan"
)

// ReviewResult holds the outcome of a workflow review session.
type ReviewResult struct {
	Approved bool
	Reason   string
}

type viewMode int

const (
	modeList viewMode = iota
	modeDetail
	modeReason
)

// reviewModel is the bubbletea model for interactive workflow review.
type reviewModel struct {
	workflow *plan.GeneratedWorkflow
	tasks    []plan.Task

	cursor   int
	selected int
	mode     viewMode
	reason   textinput.Model
	result   *ReviewResult

	width  int
	height int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Bold(true).
				PaddingLeft(2)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	detailKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginLeft(2).
			MarginTop(1)

	approveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	rejectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	criticalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func newReviewModel(w *plan.GeneratedWorkflow) reviewModel {
	reason := textinput.New()
	reason.Placeholder = "why is the plan rejected?"
	reason.CharLimit = 200

	return reviewModel{
		workflow: w,
		tasks:    w.AllTasks(),
		reason:   reason,
	}
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeReason {
			switch msg.String() {
			case "enter":
				m.result = &ReviewResult{Approved: false, Reason: m.reason.Value()}
				return m, tea.Quit
			case "esc":
				m.mode = modeList
				m.reason.SetValue("")
				m.reason.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.reason, cmd = m.reason.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			if m.result == nil {
				m.result = &ReviewResult{Approved: false, Reason: "review cancelled"}
			}
			return m, tea.Quit

		case "up", "k":
			if m.mode == modeList && m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "j":
			if m.mode == modeList && m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
			return m, nil

		case "enter", "right", "l":
			if m.mode == modeList {
				m.selected = m.cursor
				m.mode = modeDetail
			}
			return m, nil

		case "left", "h", "esc":
			if m.mode == modeDetail {
				m.mode = modeList
			}
			return m, nil

		case "a", "A":
			m.result = &ReviewResult{Approved: true}
			return m, tea.Quit

		case "r", "R":
			m.mode = modeReason
			m.reason.Focus()
			return m, textinput.Blink
		}
	}

	return m, nil
}

func (m reviewModel) View() string {
	if m.result != nil {
		if m.result.Approved {
			return approveStyle.Render("\n✓ Workflow Approved\n\n")
		}
		reason := m.result.Reason
		if reason == "" {
			reason = "no reason provided"
		}
		return rejectStyle.Render(fmt.Sprintf("\n✗ Workflow Rejected\n  Reason: %s\n\n", reason))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Workflow Review: " + m.workflow.Title))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s strategy | %d phases | %d tasks | %s",
		m.workflow.Strategy, len(m.workflow.Phases), len(m.tasks), m.workflow.EstimatedDuration)))
	b.WriteString("\n\n")

	switch m.mode {
	case modeDetail:
		b.WriteString(m.detailView())
	default:
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	switch m.mode {
	case modeReason:
		b.WriteString(rejectStyle.Render("✗ Rejection reason:"))
		b.WriteString("\n  ")
		b.WriteString(m.reason.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter: submit | esc: cancel"))
	case modeDetail:
		b.WriteString(helpStyle.Render("h/esc: back | a: approve | r: reject | q: quit"))
	default:
		b.WriteString(helpStyle.Render("↑/↓: navigate | enter: details | a: approve | r: reject | q: quit"))
	}

	return b.String()
}

func (m reviewModel) listView() string {
	critical := make(map[string]bool)
	if m.workflow.Dependencies != nil {
		for _, id := range m.workflow.Dependencies.CriticalPath {
			critical[string(id)] = true
		}
	}

	var b strings.Builder
	for i, task := range m.tasks {
		style := itemStyle
		cursor := "  "
		if i == m.cursor {
			style = selectedItemStyle
			cursor = "→ "
		}

		marker := " "
		if critical[string(task.ID)] {
			marker = criticalStyle.Render("!")
		}

		line := fmt.Sprintf("%s%s %s | %s | %s | %dh",
			cursor, marker, task.ID, task.Persona, task.Complexity, task.EstimatedHours)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m reviewModel) detailView() string {
	task := m.tasks[m.selected]

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Task %d of %d", m.selected+1, len(m.tasks))))
	b.WriteString("\n\n")

	details := []struct {
		key   string
		value string
	}{
		{"ID", string(task.ID)},
		{"Title", task.Title},
		{"Phase", task.PhaseID},
		{"Persona", string(task.Persona)},
		{"Complexity", string(task.Complexity)},
		{"Estimate", fmt.Sprintf("%dh", task.EstimatedHours)},
		{"Providers", strings.Join(task.ToolProviders, ", ")},
	}
	for _, d := range details {
		b.WriteString("  ")
		b.WriteString(detailKeyStyle.Render(fmt.Sprintf("%-12s:", d.key)))
		b.WriteString(" ")
		b.WriteString(detailValueStyle.Render(d.value))
		b.WriteString("\n")
	}

	if len(task.DependsOn) > 0 {
		b.WriteString("\n  ")
		b.WriteString(detailKeyStyle.Render("Depends on:"))
		b.WriteString("\n")
		for _, dep := range task.DependsOn {
			fmt.Fprintf(&b, "    • %s\n", dep)
		}
	}
	if len(task.AcceptanceCriteria) > 0 {
		b.WriteString("\n  ")
		b.WriteString(detailKeyStyle.Render("Acceptance criteria:"))
		b.WriteString("\n")
		for _, c := range task.AcceptanceCriteria {
			fmt.Fprintf(&b, "    • %s\n", c)
		}
	}
	return b.String()
}

// RunReview launches the interactive review for a generated workflow.
// Workflows with no tasks auto-approve.
func RunReview(w *plan.GeneratedWorkflow) (*ReviewResult, error) {
	if len(w.AllTasks()) == 0 {
		return &ReviewResult{Approved: true}, nil
	}

	program := tea.NewProgram(newReviewModel(w))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("run review UI: %w", err)
	}

	m, ok := final.(reviewModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type: %T", final)
	}
	if m.result == nil {
		return &ReviewResult{Approved: false, Reason: "review ended without a decision"}, nil
	}
	return m.result, nil
}
