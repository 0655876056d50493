package handlers

import (
	"shift-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles HTTP requests for the employee mirror
type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// List serves the cached roster of a company.
// GET /employees?companyId=...
func (h *EmployeeHandler) List(c *gin.Context) {
	result := h.employeeService.GetEmployees(c.Request.Context(), c.Query("companyId"))
	respondResult(c, result)
}

// Refresh forces a roster fetch before serving.
// POST /employees/refresh?companyId=...
func (h *EmployeeHandler) Refresh(c *gin.Context) {
	result := h.employeeService.RefreshEmployees(c.Request.Context(), c.Query("companyId"))
	respondResult(c, result)
}
