package errors

import (
	"errors"
	"fmt"
)

// Exit codes for rlctl
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitAuthError     = 2
	ExitAPIError      = 3
	ExitNotFound      = 4
	ExitConfigError   = 5
	ExitSSHError      = 6
	ExitExecError     = 7
	ExitDownloadError = 8
)

// RunloopError is the base error type for rlctl
type RunloopError struct {
	Code    int
	Message string
	Cause   error
}

func (e *RunloopError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RunloopError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *RunloopError) ExitCode() int {
	return e.Code
}

// New creates a new RunloopError
func New(code int, message string) *RunloopError {
	return &RunloopError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a RunloopError
func Wrap(code int, message string, cause error) *RunloopError {
	return &RunloopError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// MissingAPIKey returns an error for an unset RUNLOOP_API_KEY
func MissingAPIKey() *RunloopError {
	return New(ExitAuthError, "RUNLOOP_API_KEY must be set in the environment")
}

// APIError returns an error for a failed control-plane request
func APIError(op string, cause error) *RunloopError {
	return Wrap(ExitAPIError, fmt.Sprintf("api %s failed", op), cause)
}

// DevboxNotFound returns an error for a missing devbox
func DevboxNotFound(id string) *RunloopError {
	return New(ExitNotFound, fmt.Sprintf("devbox not found: %s", id))
}

// BlueprintNotFound returns an error for a missing blueprint
func BlueprintNotFound(id string) *RunloopError {
	return New(ExitNotFound, fmt.Sprintf("blueprint not found: %s", id))
}

// ObjectNotFound returns an error for a missing object
func ObjectNotFound(id string) *RunloopError {
	return New(ExitNotFound, fmt.Sprintf("object not found: %s", id))
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *RunloopError {
	return Wrap(ExitConfigError, message, cause)
}

// SSHError returns an error for SSH operations
func SSHError(message string, cause error) *RunloopError {
	return Wrap(ExitSSHError, message, cause)
}

// ExecError returns an error for remote command execution
func ExecError(message string, cause error) *RunloopError {
	return Wrap(ExitExecError, message, cause)
}

// DownloadError returns an error for object downloads
func DownloadError(message string, cause error) *RunloopError {
	return Wrap(ExitDownloadError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *RunloopError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var rlErr *RunloopError
	if errors.As(err, &rlErr) {
		return rlErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
