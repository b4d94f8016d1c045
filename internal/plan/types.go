package plan

import (
	"time"

	"github.com/felixgeelhaar/planwright/internal/domain"
)

// Task represents a single unit of work in a generated workflow.
type Task struct {
	ID                 domain.TaskID     `json:"id"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	Persona            domain.Persona    `json:"persona"`
	Complexity         domain.Complexity `json:"complexity"`
	EstimatedHours     int               `json:"estimated_hours"`
	DependsOn          []domain.TaskID   `json:"depends_on,omitempty"`
	AcceptanceCriteria []string          `json:"acceptance_criteria,omitempty"`
	PhaseID            string            `json:"phase_id"`
	ToolProviders      []string          `json:"tool_providers,omitempty"`
}

// Phase is an ordered group of tasks with milestones and deliverables.
// Phases are sequenced; a later phase implicitly depends on the last
// task of the previous phase.
type Phase struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	NominalDuration string   `json:"nominal_duration"`
	Tasks           []Task   `json:"tasks"`
	Milestones      []string `json:"milestones,omitempty"`
	Deliverables    []string `json:"deliverables,omitempty"`
	Risks           []Risk   `json:"risks,omitempty"`
}

// Risk describes a scheduling or technical risk attached to a task.
type Risk struct {
	Category    string        `json:"category"` // "technical" or "timeline"
	TaskID      domain.TaskID `json:"task_id"`
	Description string        `json:"description"`
	Probability float64       `json:"probability"` // 0..1
	Impact      float64       `json:"impact"`      // 0..10
	Mitigation  string        `json:"mitigation,omitempty"`
}

// Score returns the risk score used for descending sort order.
func (r Risk) Score() float64 {
	return r.Probability * r.Impact
}

// EdgeKind distinguishes declared task dependencies from the implicit
// sequencing edges inserted between adjacent phases.
type EdgeKind string

// Edge kinds
const (
	EdgeFinishToStart EdgeKind = "finish_to_start"
	EdgePhaseOrder    EdgeKind = "phase_order"
)

// DependencyNode carries the scheduling metrics computed for one task.
type DependencyNode struct {
	TaskID        domain.TaskID `json:"task_id"`
	Duration      int           `json:"duration"`
	EarliestStart int           `json:"earliest_start"`
	LatestStart   int           `json:"latest_start"`
	Slack         int           `json:"slack"`
	Critical      bool          `json:"critical"`
}

// DependencyEdge is a directed scheduling constraint between two tasks.
type DependencyEdge struct {
	From domain.TaskID `json:"from"`
	To   domain.TaskID `json:"to"`
	Lag  int           `json:"lag"`
	Kind EdgeKind      `json:"kind"`
}

// Bottleneck flags a concentration of work or dependencies.
type Bottleneck struct {
	Kind        string          `json:"kind"`     // "resource" or "dependency"
	Severity    string          `json:"severity"` // "warning" or "critical"
	Persona     domain.Persona  `json:"persona,omitempty"`
	TaskIDs     []domain.TaskID `json:"task_ids"`
	Description string          `json:"description"`
}

// ParallelGroup is a set of tasks that can proceed concurrently.
type ParallelGroup struct {
	Level   int             `json:"level"`
	TaskIDs []domain.TaskID `json:"task_ids"`
}

// DependencyAnalysis is the full output of the critical-path analyzer.
type DependencyAnalysis struct {
	Nodes           []DependencyNode  `json:"nodes"`
	Edges           []DependencyEdge  `json:"edges"`
	CriticalPath    []domain.TaskID   `json:"critical_path"`
	Levels          [][]domain.TaskID `json:"levels,omitempty"`
	ParallelGroups  []ParallelGroup   `json:"parallel_groups,omitempty"`
	Bottlenecks     []Bottleneck      `json:"bottlenecks,omitempty"`
	Risks           []Risk            `json:"risks,omitempty"`
	ProjectDuration int               `json:"project_duration"`
	// UnknownDependencies lists declared dependency ids that reference
	// no task in the workflow. The edges are skipped; the consistency
	// gate reports them.
	UnknownDependencies []domain.TaskID `json:"unknown_dependencies,omitempty"`
	// Unleveled lists tasks that could not be placed into a dependency
	// level because a cycle blocked further progress.
	Unleveled []domain.TaskID `json:"unleveled,omitempty"`
}

// SelectedProvider is a tool provider chosen for the orchestration plan.
type SelectedProvider struct {
	Name       string         `json:"name"`
	Capability string         `json:"capability"`
	Confidence float64        `json:"confidence"`
	Persona    domain.Persona `json:"persona"`
}

// OrchestrationStep pairs a phase with a provider invocation.
type OrchestrationStep struct {
	Order    int    `json:"order"`
	PhaseID  string `json:"phase_id"`
	Provider string `json:"provider"`
	Purpose  string `json:"purpose"`
}

// FallbackRoute maps a provider to its degradation path.
type FallbackRoute struct {
	Provider       string  `json:"provider"`
	Fallback       string  `json:"fallback"`
	CapabilityLoss float64 `json:"capability_loss"` // 0..1
}

// ToolOrchestrationPlan coordinates external capability providers.
type ToolOrchestrationPlan struct {
	Providers      []SelectedProvider  `json:"providers"`
	Steps          []OrchestrationStep `json:"steps"`
	ParallelGroups [][]string          `json:"parallel_groups,omitempty"`
	Fallbacks      []FallbackRoute     `json:"fallbacks,omitempty"`
}

// GeneratedWorkflow is the aggregate root produced by one generate call.
// It is owned exclusively by that call and never shared across requests.
type GeneratedWorkflow struct {
	ID                domain.WorkflowID      `json:"id"`
	Title             string                 `json:"title"`
	Strategy          domain.Strategy        `json:"strategy"`
	Persona           domain.Persona         `json:"persona"`
	Phases            []Phase                `json:"phases"`
	Dependencies      *DependencyAnalysis    `json:"dependencies,omitempty"`
	Risks             []Risk                 `json:"risks,omitempty"`
	ParallelStreams   []ParallelGroup        `json:"parallel_streams,omitempty"`
	ToolPlan          *ToolOrchestrationPlan `json:"tool_plan,omitempty"`
	TotalHours        int                    `json:"total_hours"`
	EstimatedDuration string                 `json:"estimated_duration"`
	Fingerprint       string                 `json:"fingerprint,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	CreatedBy         string                 `json:"created_by,omitempty"`
}

// AllTasks returns the workflow's tasks in phase order.
func (w *GeneratedWorkflow) AllTasks() []Task {
	var tasks []Task
	for _, phase := range w.Phases {
		tasks = append(tasks, phase.Tasks...)
	}
	return tasks
}

// TaskByID looks up a task across all phases.
func (w *GeneratedWorkflow) TaskByID(id domain.TaskID) (*Task, bool) {
	for pi := range w.Phases {
		for ti := range w.Phases[pi].Tasks {
			if w.Phases[pi].Tasks[ti].ID == id {
				return &w.Phases[pi].Tasks[ti], true
			}
		}
	}
	return nil, false
}
