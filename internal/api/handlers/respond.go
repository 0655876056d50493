package handlers

import (
	"errors"
	"net/http"

	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// readResponse is the wire shape of a tri-state read. Status lets the
// client distinguish an empty week from a failed fetch.
type readResponse[T any] struct {
	Status service.Status `json:"status"`
	Data   T              `json:"data,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// respondResult maps a service read result onto HTTP: success and empty
// are both 200 with a distinguishing status field, remote failures are
// 502 so clients know a retry may succeed.
func respondResult[T any](c *gin.Context, result service.Result[T]) {
	switch result.Status {
	case service.StatusSuccess:
		c.JSON(http.StatusOK, readResponse[T]{Status: result.Status, Data: result.Data})
	case service.StatusEmpty:
		c.JSON(http.StatusOK, readResponse[T]{Status: result.Status})
	default:
		c.JSON(errorStatus(result.Err), readResponse[T]{Status: service.StatusError, Error: result.Err.Error()})
	}
}

// respondError maps a service error onto an HTTP status
func respondError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
}

func errorStatus(err error) int {
	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidTimeRange),
		errors.Is(err, apperrors.ErrInvalidWeekStart),
		errors.Is(err, apperrors.ErrInvalidAbsenceStatus),
		errors.Is(err, apperrors.ErrNoCompanyContext):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrWeekAlreadyPublished),
		errors.Is(err, apperrors.ErrEditOnPublishedWeek):
		return http.StatusConflict
	case apperrors.IsRemote(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
