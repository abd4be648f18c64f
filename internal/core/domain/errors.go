package domain

import (
	"errors"
	"fmt"
)

// ErrorCode classifies fatal build failures. Codes are string-based for
// debuggability and natural JSON serialization.
type ErrorCode string

const (
	// CodeEngineUnavailable indicates the container engine is not installed
	// or its daemon cannot be reached.
	CodeEngineUnavailable ErrorCode = "ENGINE_UNAVAILABLE"

	// CodeInvalidProject indicates required project metadata is missing.
	CodeInvalidProject ErrorCode = "INVALID_PROJECT"

	// CodeFetch indicates a remote project repository could not be
	// materialized into a working directory.
	CodeFetch ErrorCode = "FETCH_ERROR"

	// CodeIO indicates a filesystem operation failed during build-context
	// assembly.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeBuildFailed indicates the engine rejected or aborted the image
	// build.
	CodeBuildFailed ErrorCode = "BUILD_FAILED"

	// CodeTracking indicates recording image metadata on the tracking run
	// failed.
	CodeTracking ErrorCode = "TRACKING_ERROR"
)

// ExecutionError is a fatal, user-facing failure. Soft failures (cleanup
// that may be logged and ignored) are reported as BuildResult warnings
// instead, never as an ExecutionError.
type ExecutionError struct {
	Code    ErrorCode
	Op      string
	Message string
	Err     error
}

// NewExecutionError wraps err with a code, the failing component and a
// user-facing message.
func NewExecutionError(code ErrorCode, op, message string, err error) *ExecutionError {
	return &ExecutionError{Code: code, Op: op, Message: message, Err: err}
}

func (e *ExecutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// IsCode reports whether err is an ExecutionError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	var ee *ExecutionError
	return errors.As(err, &ee) && ee.Code == code
}
