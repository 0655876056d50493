package remote

import (
	"context"
	"net/http"
	"net/url"

	"shift-planner-backend/internal/database/models"
)

type employeePayload struct {
	ID        string              `json:"id"`
	CompanyID string              `json:"companyId"`
	FirstName string              `json:"firstName"`
	LastName  string              `json:"lastName"`
	Email     string              `json:"email,omitempty"`
	Phone     string              `json:"phone,omitempty"`
	Role      models.EmployeeRole `json:"role"`
}

func (p employeePayload) toModel() models.Employee {
	role := p.Role
	if !role.IsValid() {
		role = models.RoleEmployee
	}
	return models.Employee{
		SyncMeta:  models.SyncMeta{RemoteID: p.ID, IsSynced: true},
		CompanyID: p.CompanyID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		Role:      role,
	}
}

type employeeClient struct {
	*Client
}

func (c *employeeClient) GetByCompany(ctx context.Context, companyID string) ([]models.Employee, error) {
	query := url.Values{"companyId": {companyID}}
	var payloads []employeePayload
	if err := c.do(ctx, "list employees", http.MethodGet, "/v1/employees", query, nil, &payloads); err != nil {
		return nil, err
	}
	employees := make([]models.Employee, 0, len(payloads))
	for _, p := range payloads {
		employees = append(employees, p.toModel())
	}
	return employees, nil
}
