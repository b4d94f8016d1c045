package domain

import "testing"

func TestRandomIDGeneratorProducesValidIDs(t *testing.T) {
	gen := NewRandomIDGenerator()

	seen := make(map[TaskID]struct{})
	for i := 0; i < 100; i++ {
		id := gen.TaskID()
		if err := id.Validate(); err != nil {
			t.Fatalf("generated task ID %q is invalid: %v", id, err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate task ID %q", id)
		}
		seen[id] = struct{}{}
	}

	wf := gen.WorkflowID()
	if err := wf.Validate(); err != nil {
		t.Fatalf("generated workflow ID %q is invalid: %v", wf, err)
	}
}

func TestSequenceIDGeneratorIsDeterministic(t *testing.T) {
	gen := NewSequenceIDGenerator()

	want := []TaskID{"task-001", "task-002", "task-003"}
	for i, w := range want {
		if got := gen.TaskID(); got != w {
			t.Errorf("TaskID() call %d = %q, want %q", i+1, got, w)
		}
	}

	if got := gen.WorkflowID(); got != WorkflowID("wf-001") {
		t.Errorf("WorkflowID() = %q, want wf-001", got)
	}
}

func TestStrategyAndFormatFallbacks(t *testing.T) {
	if got := ParseStrategy("waterfall"); got != StrategySystematic {
		t.Errorf("unknown strategy should fall back to systematic, got %v", got)
	}
	if got := ParseStrategy("agile"); got != StrategyAgile {
		t.Errorf("ParseStrategy(agile) = %v", got)
	}
	if got := ParseOutputFormat("xml"); got != FormatRoadmap {
		t.Errorf("unknown format should fall back to roadmap, got %v", got)
	}
	if got := ParseOutputFormat("machine"); got != FormatMachine {
		t.Errorf("ParseOutputFormat(machine) = %v", got)
	}
}
