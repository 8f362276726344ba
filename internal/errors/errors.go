// Package errors provides typed errors for apiforge.
package errors

import "fmt"

// ErrorCode identifies the type of error.
type ErrorCode string

const (
	ErrNameRequired   ErrorCode = "NAME_REQUIRED"
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrRenderFailed   ErrorCode = "RENDER_FAILED"
	ErrWriteFailed    ErrorCode = "WRITE_FAILED"
	ErrGitUnavailable ErrorCode = "GIT_UNAVAILABLE"
	ErrGitFailed      ErrorCode = "GIT_FAILED"
)

// ForgeError represents a typed error with user-friendly hints.
type ForgeError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Cause   error
}

func (e *ForgeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ForgeError) Unwrap() error {
	return e.Cause
}

// New creates a new ForgeError.
func New(code ErrorCode, message, hint string) *ForgeError {
	return &ForgeError{
		Code:    code,
		Message: message,
		Hint:    hint,
	}
}

// Wrap creates a new ForgeError wrapping an existing error.
func Wrap(code ErrorCode, message, hint string, cause error) *ForgeError {
	return &ForgeError{
		Code:    code,
		Message: message,
		Hint:    hint,
		Cause:   cause,
	}
}

// NameRequired returns an error for an empty or whitespace-only project name.
func NameRequired() *ForgeError {
	return &ForgeError{
		Code:    ErrNameRequired,
		Message: "project name is required",
		Hint:    "Usage: apiforge new <project-name>",
	}
}

// ConfigInvalid returns an error for invalid configuration input.
func ConfigInvalid(reason string) *ForgeError {
	return &ForgeError{
		Code:    ErrConfigInvalid,
		Message: fmt.Sprintf("invalid configuration: %s", reason),
		Hint:    "Check ~/.config/apiforge/config.yaml and the command-line flags",
	}
}

// RenderFailed returns an error for a template rendering failure.
func RenderFailed(artifact string, cause error) *ForgeError {
	return &ForgeError{
		Code:    ErrRenderFailed,
		Message: fmt.Sprintf("failed to render %s", artifact),
		Cause:   cause,
	}
}

// WriteFailed returns an error for a filesystem write failure.
func WriteFailed(path string, cause error) *ForgeError {
	return &ForgeError{
		Code:    ErrWriteFailed,
		Message: fmt.Sprintf("failed to write %s", path),
		Hint:    "Check directory permissions and available disk space",
		Cause:   cause,
	}
}

// GitUnavailable returns an error when no git binary is found on PATH.
func GitUnavailable() *ForgeError {
	return &ForgeError{
		Code:    ErrGitUnavailable,
		Message: "git binary not found",
		Hint:    "Install git to get an initial commit in generated projects",
	}
}

// GitFailed returns an error for a failed git invocation.
func GitFailed(step string, cause error) *ForgeError {
	return &ForgeError{
		Code:    ErrGitFailed,
		Message: fmt.Sprintf("git %s failed", step),
		Hint:    "The project was generated; initialize the repository manually",
		Cause:   cause,
	}
}
