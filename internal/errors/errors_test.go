package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "shift"}
		assert.Equal(t, "shift not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "shift"}
		err2 := &NotFoundError{Entity: "shift"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "shift"}
		err2 := &NotFoundError{Entity: "absence"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrShiftNotFound, ErrShiftNotFound))
		assert.False(t, errors.Is(ErrShiftNotFound, ErrAbsenceNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrShiftNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("loading week: %w", ErrWeeklyShiftNotFound)))
		assert.False(t, IsNotFound(ErrInvalidTimeRange))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "end_date", Message: "must not precede start_date"}
		assert.Equal(t, "validation error: end_date - must not precede start_date", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "bad request"}
		assert.Equal(t, "validation error: bad request", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(&ValidationError{Message: "bad"}))
		assert.True(t, IsValidation(fmt.Errorf("save: %w", &ValidationError{Message: "bad"})))
		assert.False(t, IsValidation(ErrShiftNotFound))
	})
}

func TestRemoteError(t *testing.T) {
	t.Run("Error message with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := &RemoteError{Op: "create shift", Cause: cause}
		assert.Equal(t, "remote store unavailable during create shift: connection refused", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Error message without cause", func(t *testing.T) {
		err := &RemoteError{Op: "list shifts"}
		assert.Equal(t, "remote store unavailable during list shifts", err.Error())
	})

	t.Run("IsRemote helper", func(t *testing.T) {
		err := &RemoteError{Op: "update absence"}
		assert.True(t, IsRemote(err))
		assert.True(t, IsRemote(fmt.Errorf("push pass: %w", err)))
		assert.False(t, IsRemote(ErrRemoteNotFound), "a remote 404 is not an outage")
		assert.False(t, IsRemote(ErrShiftNotFound))
	})
}
