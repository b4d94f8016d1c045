// Package fingerprint computes stable content hashes for workflows so
// callers can detect when a regenerated plan actually changed.
package fingerprint

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/zeebo/blake3"

	"github.com/felixgeelhaar/planwright/internal/plan"
)

// Workflow hashes the structural content of a workflow: phases,
// tasks, dependencies, and estimates. Volatile fields (timestamps,
// author, the fingerprint itself) are excluded so regenerating an
// unchanged plan yields the same hash.
func Workflow(w *plan.GeneratedWorkflow) (string, error) {
	canonical, err := canonicalize(w)
	if err != nil {
		return "", fmt.Errorf("canonicalize workflow: %w", err)
	}

	hasher := blake3.New()
	if _, err := hasher.Write(canonical); err != nil {
		return "", fmt.Errorf("hash workflow: %w", err)
	}
	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

// canonicalize renders the hashable subset as JSON with recursively
// sorted keys.
func canonicalize(w *plan.GeneratedWorkflow) ([]byte, error) {
	phases := make([]map[string]interface{}, len(w.Phases))
	for i, phase := range w.Phases {
		tasks := make([]map[string]interface{}, len(phase.Tasks))
		for j, task := range phase.Tasks {
			entry := map[string]interface{}{
				"id":         string(task.ID),
				"title":      task.Title,
				"desc":       task.Description,
				"persona":    string(task.Persona),
				"complexity": string(task.Complexity),
				"hours":      task.EstimatedHours,
			}
			if len(task.DependsOn) > 0 {
				deps := make([]string, len(task.DependsOn))
				for k, d := range task.DependsOn {
					deps[k] = string(d)
				}
				sort.Strings(deps)
				entry["depends_on"] = deps
			}
			tasks[j] = entry
		}
		phases[i] = map[string]interface{}{
			"id":    phase.ID,
			"name":  phase.Name,
			"tasks": tasks,
		}
	}

	data := map[string]interface{}{
		"title":       w.Title,
		"strategy":    string(w.Strategy),
		"persona":     string(w.Persona),
		"phases":      phases,
		"total_hours": w.TotalHours,
	}
	return json.Marshal(sortKeys(data))
}

// sortKeys recursively sorts map keys for stable JSON output.
func sortKeys(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sorted := make(map[string]interface{}, len(val))
		for _, k := range keys {
			sorted[k] = sortKeys(val[k])
		}
		return sorted

	case []map[string]interface{}:
		for i, item := range val {
			val[i] = sortKeys(item).(map[string]interface{})
		}
		return val

	case []interface{}:
		for i, item := range val {
			val[i] = sortKeys(item)
		}
		return val

	default:
		return v
	}
}
