package domain

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces workflow and task identifiers. Generation is
// injectable so tests can substitute a deterministic sequence for the
// default random generator.
type IDGenerator interface {
	// WorkflowID returns a fresh workflow identifier.
	WorkflowID() WorkflowID
	// TaskID returns a fresh task identifier.
	TaskID() TaskID
}

// RandomIDGenerator generates UUID-derived identifiers. Safe for
// concurrent use.
type RandomIDGenerator struct{}

// NewRandomIDGenerator creates the default generator.
func NewRandomIDGenerator() *RandomIDGenerator {
	return &RandomIDGenerator{}
}

// WorkflowID returns a workflow ID of the form "wf-<8 hex chars>".
func (g *RandomIDGenerator) WorkflowID() WorkflowID {
	return WorkflowID("wf-" + shortUUID())
}

// TaskID returns a task ID of the form "task-<8 hex chars>".
func (g *RandomIDGenerator) TaskID() TaskID {
	return TaskID("task-" + shortUUID())
}

func shortUUID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// SequenceIDGenerator generates deterministic zero-padded identifiers
// ("wf-001", "task-001", ...). Intended for tests and reproducible runs.
type SequenceIDGenerator struct {
	mu        sync.Mutex
	workflows int
	tasks     int
}

// NewSequenceIDGenerator creates a deterministic generator starting at 1.
func NewSequenceIDGenerator() *SequenceIDGenerator {
	return &SequenceIDGenerator{}
}

// WorkflowID returns the next workflow ID in sequence.
func (g *SequenceIDGenerator) WorkflowID() WorkflowID {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.workflows++
	return WorkflowID(fmt.Sprintf("wf-%03d", g.workflows))
}

// TaskID returns the next task ID in sequence.
func (g *SequenceIDGenerator) TaskID() TaskID {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tasks++
	return TaskID(fmt.Sprintf("task-%03d", g.tasks))
}
