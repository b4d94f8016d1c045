package exitcode

import (
	stderrors "errors"
	"testing"

	"github.com/felixgeelhaar/planwright/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, Success},
		{"doc not found", errors.NewDocNotFoundError("prd.md"), InputError},
		{"workflow rejected", errors.New(errors.ErrCodeWorkflowRejected, "review rejected"), GateFailure},
		{"unknown profile", errors.NewGateProfileUnknownError("x"), UsageError},
		{"critical issue text", stderrors.New("gate report contained 2 critical issues"), GateFailure},
		{"generic error", stderrors.New("boom"), GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.want {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
