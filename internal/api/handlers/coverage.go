package handlers

import (
	"net/http"
	"time"

	"shift-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CoverageHandler handles HTTP requests for coverage analysis
type CoverageHandler struct {
	coverageService *service.CoverageService
}

// NewCoverageHandler creates a new coverage handler
func NewCoverageHandler(coverageService *service.CoverageService) *CoverageHandler {
	return &CoverageHandler{coverageService: coverageService}
}

// AnalyzeDay evaluates a department's staffing plan for one date.
// GET /coverage/:departmentId?date=YYYY-MM-DD
func (h *CoverageHandler) AnalyzeDay(c *gin.Context) {
	departmentID, err := uuid.Parse(c.Param("departmentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid department id"})
		return
	}
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date must be a YYYY-MM-DD date"})
		return
	}

	coverage, err := h.coverageService.AnalyzeDay(c.Request.Context(), departmentID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, coverage)
}
