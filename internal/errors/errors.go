package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// RemoteError represents a failure talking to the remote store. Remote
// failures are always recoverable: local cache state is never lost or
// rolled back because of one, and retrying the failed operation is safe.
type RemoteError struct {
	Op    string // operation that failed, e.g. "create shift"
	Cause error
}

func (e *RemoteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("remote store unavailable during %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("remote store unavailable during %s", e.Op)
}

func (e *RemoteError) Unwrap() error {
	return e.Cause
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrShiftNotFound       = &NotFoundError{Entity: "shift"}
	ErrAbsenceNotFound     = &NotFoundError{Entity: "absence"}
	ErrEmployeeNotFound    = &NotFoundError{Entity: "employee"}
	ErrDepartmentNotFound  = &NotFoundError{Entity: "department"}
	ErrWeeklyShiftNotFound = &NotFoundError{Entity: "weekly shift"}
)

// Remote Store Errors
var (
	// ErrRemoteNotFound is returned by the remote store when the referenced
	// record has no remote entry. On delete it is treated as success
	// (the record is already gone), never surfaced to callers as a failure.
	ErrRemoteNotFound = errors.New("record not found on remote store")

	// ErrNoCompanyContext is returned when an operation needs a company id
	// to reach the remote store and none is available.
	ErrNoCompanyContext = errors.New("no company context available for remote fetch")
)

// Business Logic Errors
var (
	ErrInvalidTimeRange     = errors.New("invalid time range")
	ErrWeekAlreadyPublished = errors.New("week is already published")
	ErrEditOnPublishedWeek  = errors.New("cannot edit shifts of a published week")
	ErrInvalidAbsenceStatus = errors.New("invalid absence status transition")
	ErrInvalidWeekStart     = errors.New("week start must be a Monday")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsRemote reports whether err stems from the remote store being
// unavailable. Such errors are retryable by definition.
func IsRemote(err error) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr)
}
