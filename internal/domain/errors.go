package domain

import (
	"errors"
	"fmt"
)

// ValidationCode classifies why a precondition was not met.
type ValidationCode string

const (
	CodeMissingField      ValidationCode = "missing_field"
	CodeAlreadyCompleted  ValidationCode = "already_completed"
	CodeNoEligibleWork    ValidationCode = "no_eligible_work"
	CodeSelectionRequired ValidationCode = "selection_required"
	CodeProjectMismatch   ValidationCode = "project_mismatch"
	CodeTaskNotCompleted  ValidationCode = "task_not_completed"
	CodePaymentInFlight   ValidationCode = "payment_in_flight"
	CodeInvalidTransition ValidationCode = "invalid_transition"
	CodeInvalidSession    ValidationCode = "invalid_session"
	CodeInvalidSnapshot   ValidationCode = "invalid_snapshot"
)

// ValidationError reports an unmet precondition on input or state.
// The user is expected to correct the input or selection and retry.
type ValidationError struct {
	Code    ValidationCode
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NotFoundError reports an id that does not exist or is not visible to the
// current vendor.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// PersistenceError reports a failed store write. The in-memory state that
// triggered the write remains authoritative for the session.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting snapshot (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func newValidation(code ValidationCode, field, msg string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Message: msg}
}

// NewValidationError builds a ValidationError without a field.
func NewValidationError(code ValidationCode, msg string) *ValidationError {
	return newValidation(code, "", msg)
}

// IsValidation reports whether err wraps a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ValidationCodeOf returns the code of the wrapped *ValidationError, if any.
func ValidationCodeOf(err error) (ValidationCode, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Code, true
	}
	return "", false
}

// IsNotFound reports whether err wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsPersistence reports whether err wraps a *PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
