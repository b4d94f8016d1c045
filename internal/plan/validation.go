package plan

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/planwright/internal/domain"
	"github.com/felixgeelhaar/planwright/internal/errors"
)

// Validate checks if the Task is valid according to domain rules
func (t *Task) Validate() error {
	// Validate ID using domain TaskID value object
	if err := t.ID.Validate(); err != nil {
		return fmt.Errorf("invalid task ID: %w", err)
	}

	// Validate Title is non-empty
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title cannot be empty")
	}

	// Validate Persona using domain value object
	if err := t.Persona.Validate(); err != nil {
		return fmt.Errorf("invalid persona: %w", err)
	}

	// Validate Complexity using domain value object
	if err := t.Complexity.Validate(); err != nil {
		return fmt.Errorf("invalid complexity: %w", err)
	}

	// Validate DependsOn contains valid TaskID values
	for i, depID := range t.DependsOn {
		if err := depID.Validate(); err != nil {
			return fmt.Errorf("dependency at index %d has invalid task ID: %w", i, err)
		}
	}

	// Validate Estimate is non-negative
	if t.EstimatedHours < 0 {
		return fmt.Errorf("estimated hours must not be negative, got %d", t.EstimatedHours)
	}

	return nil
}

// Validate checks if the GeneratedWorkflow is structurally valid
func (w *GeneratedWorkflow) Validate() error {
	if err := w.ID.Validate(); err != nil {
		return fmt.Errorf("invalid workflow ID: %w", err)
	}

	// Workflows degrade to a minimal single phase, never to zero phases
	if len(w.Phases) == 0 {
		return fmt.Errorf("workflow must have at least one phase")
	}

	// Track task IDs to check for duplicates and validate dependencies
	taskIDs := make(map[domain.TaskID]bool)
	for pi, phase := range w.Phases {
		if strings.TrimSpace(phase.ID) == "" {
			return fmt.Errorf("phase at index %d has empty ID", pi)
		}
		for ti := range phase.Tasks {
			task := &phase.Tasks[ti]
			if err := task.Validate(); err != nil {
				return fmt.Errorf("task %s in phase %s is invalid: %w", task.ID, phase.ID, err)
			}
			if taskIDs[task.ID] {
				return fmt.Errorf("duplicate task ID %q in phase %s", task.ID, phase.ID)
			}
			taskIDs[task.ID] = true
		}
	}

	// Validate that all dependencies reference existing tasks
	for _, task := range w.AllTasks() {
		for _, depID := range task.DependsOn {
			if !taskIDs[depID] {
				return errors.New(errors.ErrCodeGraphTaskMissing,
					fmt.Sprintf("task %s has dependency %q that does not exist in workflow", task.ID, depID))
			}
		}
	}

	// Check for circular dependencies
	if err := w.checkCircularDependencies(); err != nil {
		return err
	}

	return nil
}

// checkCircularDependencies detects cycles in the task dependency graph
func (w *GeneratedWorkflow) checkCircularDependencies() error {
	// Build adjacency list
	graph := make(map[domain.TaskID][]domain.TaskID)
	for _, task := range w.AllTasks() {
		graph[task.ID] = task.DependsOn
	}

	// Track visited and recursion stack
	visited := make(map[domain.TaskID]bool)
	recStack := make(map[domain.TaskID]bool)

	var hasCycle func(taskID domain.TaskID, path []domain.TaskID) error
	hasCycle = func(taskID domain.TaskID, path []domain.TaskID) error {
		visited[taskID] = true
		recStack[taskID] = true
		path = append(path, taskID)

		for _, dep := range graph[taskID] {
			if !visited[dep] {
				if err := hasCycle(dep, path); err != nil {
					return err
				}
			} else if recStack[dep] {
				// Found a cycle
				cyclePath := append(path, dep)
				ids := make([]string, len(cyclePath))
				for i, id := range cyclePath {
					ids[i] = id.String()
				}
				return errors.New(errors.ErrCodeGraphCyclicDep,
					fmt.Sprintf("circular dependency detected: %s", strings.Join(ids, " -> ")))
			}
		}

		recStack[taskID] = false
		return nil
	}

	for _, task := range w.AllTasks() {
		if !visited[task.ID] {
			if err := hasCycle(task.ID, nil); err != nil {
				return err
			}
		}
	}

	return nil
}
