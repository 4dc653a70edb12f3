// Package errors provides structured error types and exit codes for crateup.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes as defined in the specification.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error (tool missing, interrupted run, etc.)
	ExitConfigError  = 2 // Configuration error (invalid config, etc.)
	ExitPathError    = 3 // Path error (target directory missing or unreadable)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindPath
)

// CrateupError is the base error type for crateup.
type CrateupError struct {
	Kind    ErrorKind
	Message string
	Target  string // Target name if applicable
	Cause   error  // Underlying error
}

func (e *CrateupError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("[%s] %s", e.Target, e.Message)
	}
	return e.Message
}

func (e *CrateupError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *CrateupError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindPath:
		return ExitPathError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *CrateupError {
	return &CrateupError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *CrateupError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *CrateupError {
	return &CrateupError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *CrateupError {
	return Config(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *CrateupError {
	return &CrateupError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *CrateupError {
	return &CrateupError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// Path creates a path resolution error for a specific target.
// Path errors halt the run and map to ExitPathError.
func Path(target, message string, cause error) *CrateupError {
	return &CrateupError{
		Kind:    KindPath,
		Target:  target,
		Message: message,
		Cause:   cause,
	}
}

// InstallError reports a non-zero exit from the external install tool.
// The tool's exit code is propagated to the process exit status unchanged,
// so callers of the CLI see the same code the underlying tool produced.
type InstallError struct {
	Target string
	Code   int
	Cause  error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("[%s] install failed with exit code %d", e.Target, e.Code)
}

func (e *InstallError) Unwrap() error {
	return e.Cause
}

// GetExitCode returns the exit code for an error.
// Install failures mirror the external tool's exit code; all other
// errors map to the fixed codes above.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ie *InstallError
	if stderrors.As(err, &ie) {
		if ie.Code > 0 {
			return ie.Code
		}
		return ExitRuntimeError
	}
	var ce *CrateupError
	if stderrors.As(err, &ce) {
		return ce.ExitCode()
	}
	return ExitRuntimeError
}
