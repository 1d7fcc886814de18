// Package shared contains common domain types, errors, and event contracts
// that are used across all domain packages.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
//
// The registry distinguishes two tiers of failure: hard failures are raised
// as errors built on the kinds below; expected business-rule outcomes
// (deadline passed, course full, ...) are returned as status values and are
// never errors.
var (
	// Argument errors
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidID       = errors.New("invalid ID")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrEmptyValue      = errors.New("value cannot be empty")

	// Range errors
	ErrOutOfRange    = errors.New("value out of range")
	ErrNegativeValue = errors.New("value cannot be negative")

	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")

	// Limit errors
	ErrLimitExceeded = errors.New("limit exceeded")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "registration"
	Op      string // Operation that failed, e.g., "AddCourse", "UpdateCGPA"
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

// IsInvalidArgument checks if the error is an invalid-argument error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrAlreadyExists)
}

// IsOutOfRange checks if the error is an out-of-range error.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrNegativeValue)
}

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsLimitExceeded checks if the error is a limit error.
func IsLimitExceeded(err error) bool {
	return errors.Is(err, ErrLimitExceeded)
}
