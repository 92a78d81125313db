package errors

import (
	"fmt"
)

// GenError is the structured error type for gitignore-gen.
// It carries enough context for logging and user presentation.
type GenError struct {
	// Code is the unique error code (e.g., "ERR_301_LISTING_FAILED").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Network, etc.).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Cause is the underlying error that caused this error.
	Cause error

	// Retryable indicates if the operation can be retried.
	Retryable bool
}

// Error implements the error interface.
func (e *GenError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GenError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with GenError.
func (e *GenError) Is(target error) bool {
	if t, ok := target.(*GenError); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new GenError with the given code and message.
// Category, severity, and retryable flag are derived from the code.
func New(code string, message string, cause error) *GenError {
	return &GenError{
		Code:      code,
		Message:   message,
		Category:  categoryFromCode(code),
		Severity:  severityFromCode(code),
		Cause:     cause,
		Retryable: isRetryableCode(code),
	}
}

// Wrap creates a GenError from an existing error.
// The error's message becomes the GenError message.
func Wrap(code string, err error) *GenError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// Newf creates a GenError with a formatted message and no cause.
func Newf(code string, format string, args ...any) *GenError {
	return New(code, fmt.Sprintf(format, args...), nil)
}

// ListingError creates an error for a failed catalog listing query.
func ListingError(message string, cause error) *GenError {
	return New(ErrCodeListingFailed, message, cause)
}

// DownloadError creates an error for a failed template download.
func DownloadError(message string, cause error) *GenError {
	return New(ErrCodeDownloadFailed, message, cause)
}

// WriteError creates an error for a failed output document write.
func WriteError(message string, cause error) *GenError {
	return New(ErrCodeOutputWrite, message, cause)
}

// IsRetryable checks if an error is retryable.
// Returns true if the error is a GenError with the Retryable flag set.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if ge, ok := err.(*GenError); ok {
		return ge.Retryable
	}
	return false
}

// GetCode extracts the error code from a GenError.
// Returns empty string if not a GenError.
func GetCode(err error) string {
	if ge, ok := err.(*GenError); ok {
		return ge.Code
	}
	return ""
}

// GetCategory extracts the category from a GenError.
// Returns empty string if not a GenError.
func GetCategory(err error) Category {
	if ge, ok := err.(*GenError); ok {
		return ge.Category
	}
	return ""
}
