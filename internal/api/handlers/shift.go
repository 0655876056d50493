package handlers

import (
	"net/http"
	"time"

	"shift-planner-backend/internal/database/models"
	"shift-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// ShiftHandler handles HTTP requests for shifts
type ShiftHandler struct {
	shiftService *service.ShiftService
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// GetWeek serves the shifts of one company week.
// GET /shifts/week/:weekStart?companyId=...&role=manager
func (h *ShiftHandler) GetWeek(c *gin.Context) {
	weekStart, err := time.Parse(dateLayout, c.Param("weekStart"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid week start date"})
		return
	}

	role := models.EmployeeRole(c.DefaultQuery("role", string(models.RoleEmployee)))
	if !role.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid role"})
		return
	}

	result := h.shiftService.GetShiftsForWeek(c.Request.Context(), service.GetShiftsRequest{
		CompanyID: c.Query("companyId"),
		WeekStart: weekStart,
		Role:      role,
	})
	respondResult(c, result)
}

// RefreshWeek forces a remote refresh of one company week.
// POST /shifts/week/:weekStart/refresh?companyId=...
func (h *ShiftHandler) RefreshWeek(c *gin.Context) {
	weekStart, err := time.Parse(dateLayout, c.Param("weekStart"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid week start date"})
		return
	}

	result := h.shiftService.ForceRefreshWeek(c.Request.Context(), service.GetShiftsRequest{
		CompanyID: c.Query("companyId"),
		WeekStart: weekStart,
	})
	respondResult(c, result)
}

// Save creates or edits a shift in the local cache.
// POST /shifts
func (h *ShiftHandler) Save(c *gin.Context) {
	var req service.SaveShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	shift, err := h.shiftService.SaveShift(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shift)
}

// SaveImmediate creates or edits a shift and pushes it to the remote
// store in the same operation.
// POST /shifts/immediate
func (h *ShiftHandler) SaveImmediate(c *gin.Context) {
	var req service.SaveShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	shift, err := h.shiftService.SaveShiftImmediate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shift)
}

// Delete soft-deletes a shift.
// DELETE /shifts/:id
func (h *ShiftHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid shift id"})
		return
	}

	if err := h.shiftService.DeleteShift(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteImmediate soft-deletes a shift and attempts the remote deletion
// synchronously.
// DELETE /shifts/:id/immediate
func (h *ShiftHandler) DeleteImmediate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid shift id"})
		return
	}

	if err := h.shiftService.DeleteShiftImmediate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PushWeek runs the deferred push pass for one company week.
// POST /shifts/week/:weekStart/sync?companyId=...
func (h *ShiftHandler) PushWeek(c *gin.Context) {
	weekStart, err := time.Parse(dateLayout, c.Param("weekStart"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid week start date"})
		return
	}
	companyID := c.Query("companyId")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "companyId is required"})
		return
	}

	summary, err := h.shiftService.SyncWeekToRemote(c.Request.Context(), companyID, weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"synced":  summary.Synced,
		"deleted": summary.Deleted,
		"message": summary.Message(),
	})
}

// GetWeeklyShift returns the publication record of one company week.
// GET /weeks/:weekStart?companyId=...
func (h *ShiftHandler) GetWeeklyShift(c *gin.Context) {
	weekStart, err := time.Parse(dateLayout, c.Param("weekStart"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid week start date"})
		return
	}

	week, err := h.shiftService.GetWeeklyShift(c.Request.Context(), c.Query("companyId"), weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// PublishWeek publishes one company week.
// POST /weeks/:weekStart/publish?companyId=...
func (h *ShiftHandler) PublishWeek(c *gin.Context) {
	weekStart, err := time.Parse(dateLayout, c.Param("weekStart"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid week start date"})
		return
	}

	week, err := h.shiftService.PublishWeek(c.Request.Context(), c.Query("companyId"), weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}
