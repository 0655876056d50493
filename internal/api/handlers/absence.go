package handlers

import (
	"context"
	"net/http"
	"time"

	"shift-planner-backend/internal/database/models"
	"shift-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AbsenceHandler handles HTTP requests for absence requests
type AbsenceHandler struct {
	absenceService *service.AbsenceService
}

// NewAbsenceHandler creates a new absence handler
func NewAbsenceHandler(absenceService *service.AbsenceService) *AbsenceHandler {
	return &AbsenceHandler{absenceService: absenceService}
}

// List serves the absences of a company over a date range.
// GET /absences?companyId=...&employeeId=...&from=...&to=...
func (h *AbsenceHandler) List(c *gin.Context) {
	from, err1 := time.Parse(dateLayout, c.Query("from"))
	to, err2 := time.Parse(dateLayout, c.Query("to"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from and to must be YYYY-MM-DD dates"})
		return
	}

	result := h.absenceService.GetAbsences(c.Request.Context(), service.GetAbsencesRequest{
		CompanyID:  c.Query("companyId"),
		EmployeeID: c.Query("employeeId"),
		From:       from,
		To:         to,
	})
	respondResult(c, result)
}

// Save creates or edits an absence request in the local cache.
// POST /absences
func (h *AbsenceHandler) Save(c *gin.Context) {
	var req service.SaveAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	absence, err := h.absenceService.SaveAbsence(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, absence)
}

// Delete soft-deletes an absence request.
// DELETE /absences/:id
func (h *AbsenceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid absence id"})
		return
	}

	if err := h.absenceService.DeleteAbsence(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Approve transitions a pending absence to approved.
// POST /absences/:id/approve
func (h *AbsenceHandler) Approve(c *gin.Context) {
	h.review(c, h.absenceService.ApproveAbsence)
}

// Reject transitions a pending absence to rejected.
// POST /absences/:id/reject
func (h *AbsenceHandler) Reject(c *gin.Context) {
	h.review(c, h.absenceService.RejectAbsence)
}

// Push runs the deferred push pass for all dirty absences of a company.
// POST /absences/sync?companyId=...
func (h *AbsenceHandler) Push(c *gin.Context) {
	companyID := c.Query("companyId")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "companyId is required"})
		return
	}

	summary, err := h.absenceService.SyncToRemote(c.Request.Context(), companyID)
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

func (h *AbsenceHandler) review(c *gin.Context, transition func(ctx context.Context, id uuid.UUID) (*models.Absence, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid absence id"})
		return
	}

	absence, err := transition(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, absence)
}
