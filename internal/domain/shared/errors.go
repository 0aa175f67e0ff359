// Package shared contains common domain types and errors
// that are used across all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")

	// Validation errors
	ErrValidation    = errors.New("validation error")
	ErrInvalidFormat = errors.New("invalid format")

	// Backing store errors
	ErrServiceUnavailable = errors.New("service unavailable")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "course", "notification"
	Op      string // Operation that failed, e.g., "Create", "AddPoints"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Student domain errors
var (
	ErrStudentNotFound = NewDomainError("student", "Find", ErrNotFound, "student not found")
	ErrEmailTaken      = NewDomainError("student", "Create", ErrAlreadyExists, "email is already taken")
	ErrNoCredentials   = NewDomainError("student", "ParseCredentials", ErrInvalidFormat, "credentials line is malformed")
	ErrMalformedPoints = NewDomainError("student", "ParsePoints", ErrInvalidFormat, "points line is malformed")
	ErrPointsOverflow  = NewDomainError("student", "AddPoints", ErrValidation, "points total exceeds the limit")
)

// Course domain errors
var (
	ErrUnknownCourse = NewDomainError("course", "Find", ErrNotFound, "unknown course")
)

// InvalidFieldError reports the first credential field that failed validation.
type InvalidFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("student.Validate: invalid %s", e.Field)
}

// Is makes every InvalidFieldError match ErrValidation.
func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrValidation
}

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if the error is an "already exists" error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidFormat)
}

// IsUnavailable checks if a backing store could not be reached.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}
