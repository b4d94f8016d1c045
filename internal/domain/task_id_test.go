package domain

import "testing"

func TestNewTaskID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid simple", value: "task-001"},
		{name: "valid uuid-derived", value: "task-a1b2c3d4"},
		{name: "valid plain word", value: "setup"},
		{name: "invalid empty", value: "", wantErr: true},
		{name: "invalid uppercase", value: "Task-001", wantErr: true},
		{name: "invalid leading digit", value: "1task", wantErr: true},
		{name: "invalid double hyphen", value: "task--001", wantErr: true},
		{name: "invalid trailing hyphen", value: "task-", wantErr: true},
		{name: "invalid underscore", value: "task_001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTaskID(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTaskID(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got.String() != tt.value {
				t.Errorf("NewTaskID(%q).String() = %q", tt.value, got.String())
			}
		})
	}
}

func TestTaskIDEquals(t *testing.T) {
	a := TaskID("task-001")
	b := TaskID("task-001")
	c := TaskID("task-002")

	if !a.Equals(b) {
		t.Error("identical task IDs should be equal")
	}
	if a.Equals(c) {
		t.Error("different task IDs should not be equal")
	}
}
