// Package apierrors provides shared error types for the Porkbun client.
package apierrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrValidation is matched by every ValidationError.
	ErrValidation = errors.New("invalid argument")

	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingSecretAPIKey is returned when no secret API key is provided.
	ErrMissingSecretAPIKey = errors.New("secret API key is required")

	// ErrTransport is matched by every transport failure.
	ErrTransport = errors.New("transport error")

	// ErrInvalidContentType is returned when the response is not application/json.
	ErrInvalidContentType = errors.New("invalid content type")

	// ErrInvalidJSON is returned when the response body cannot be parsed.
	ErrInvalidJSON = errors.New("parse error")

	// ErrMissingStatus is returned when the response has no status field.
	ErrMissingStatus = errors.New("missing status")

	// ErrInvalidStatus is returned when the status field is neither SUCCESS nor ERROR.
	ErrInvalidStatus = errors.New("invalid status")


	// ErrAPI is matched by every error reported by the API with status ERROR.
	ErrAPI = errors.New("API error")
)

// ValidationError contains multiple validation failures.
type ValidationError struct {
	Errors []string

	// causes holds the sentinels this error also matches.
	causes []error
}

// NewValidationError builds a ValidationError from messages.
func NewValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Errors: msgs}
}

// WithCause returns e after recording a sentinel it should also match.
func (e *ValidationError) WithCause(err error) *ValidationError {
	e.causes = append(e.causes, err)
	return e
}

// Merge appends the failures of other to e.
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	e.Errors = append(e.Errors, other.Errors...)
	e.causes = append(e.causes, other.causes...)
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	for _, c := range e.causes {
		if c == target {
			return true
		}
	}
	return false
}
