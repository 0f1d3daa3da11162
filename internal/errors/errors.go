package errors

import (
	stderrors "errors"
	"fmt"
)

// APIError represents a fetch that completed with a status other than 200
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("failed to fetch page %s: status %d", e.URL, e.StatusCode)
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, url string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		URL:        url,
	}
}

// NetworkError represents a network-related error
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new network error
func NewNetworkError(operation string, err error) *NetworkError {
	return &NetworkError{
		Operation: operation,
		Err:       err,
	}
}

// WriteError represents a failure persisting an output file
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError creates a new write error
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{
		Path: path,
		Err:  err,
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsFetchError reports whether err came from loading a remote page.
func IsFetchError(err error) bool {
	var apiErr *APIError
	var netErr *NetworkError
	return stderrors.As(err, &apiErr) || stderrors.As(err, &netErr)
}
