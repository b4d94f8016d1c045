package exitcode

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/felixgeelhaar/planwright/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// GateFailure indicates the quality gate report contained critical issues
	GateFailure = 3

	// InputError indicates the requirements document could not be read
	InputError = 4

	// Interrupted indicates the run was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var pwErr *errors.PlanwrightError
	if stderrors.As(err, &pwErr) {
		switch pwErr.Code {
		case errors.ErrCodeDocNotFound, errors.ErrCodeDocEmpty,
			errors.ErrCodeWorkflowNotFound,
			errors.ErrCodeFileNotFound, errors.ErrCodeFileReadFailed:
			return InputError
		case errors.ErrCodeWorkflowRejected:
			return GateFailure
		case errors.ErrCodeGateProfileUnknown, errors.ErrCodeGateProfileInvalid,
			errors.ErrCodeInterviewPresetUnknown, errors.ErrCodeToolProviderUnknown:
			return UsageError
		}
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "critical issue") {
		return GateFailure
	}
	if strings.Contains(errMsg, "unknown flag") || strings.Contains(errMsg, "invalid argument") {
		return UsageError
	}

	return GeneralError
}
