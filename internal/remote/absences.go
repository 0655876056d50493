package remote

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"shift-planner-backend/internal/database/models"
)

type absencePayload struct {
	ID         string               `json:"id,omitempty"`
	CompanyID  string               `json:"companyId"`
	EmployeeID string               `json:"employeeId"`
	StartDate  string               `json:"startDate"`
	EndDate    string               `json:"endDate"`
	WholeDay   bool                 `json:"wholeDay"`
	StartTime  string               `json:"startTime,omitempty"`
	EndTime    string               `json:"endTime,omitempty"`
	Reason     string               `json:"reason,omitempty"`
	Status     models.AbsenceStatus `json:"status"`
}

func absenceToPayload(a *models.Absence) absencePayload {
	return absencePayload{
		ID:         a.RemoteID,
		CompanyID:  a.CompanyID,
		EmployeeID: a.EmployeeID,
		StartDate:  a.StartDate.Format(dateLayout),
		EndDate:    a.EndDate.Format(dateLayout),
		WholeDay:   a.WholeDay,
		StartTime:  a.StartTime,
		EndTime:    a.EndTime,
		Reason:     a.Reason,
		Status:     a.Status,
	}
}

func (p absencePayload) toModel() models.Absence {
	start, _ := time.Parse(dateLayout, p.StartDate)
	end, _ := time.Parse(dateLayout, p.EndDate)
	return models.Absence{
		SyncMeta:   models.SyncMeta{RemoteID: p.ID, IsSynced: true},
		CompanyID:  p.CompanyID,
		EmployeeID: p.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		WholeDay:   p.WholeDay,
		StartTime:  p.StartTime,
		EndTime:    p.EndTime,
		Reason:     p.Reason,
		Status:     p.Status,
	}
}

type absenceClient struct {
	*Client
}

func (c *absenceClient) Create(ctx context.Context, absence *models.Absence) (string, error) {
	var created createdResponse
	payload := absenceToPayload(absence)
	payload.ID = ""
	if err := c.do(ctx, "create absence", http.MethodPost, "/v1/absences", nil, payload, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (c *absenceClient) Update(ctx context.Context, absence *models.Absence) error {
	return c.do(ctx, "update absence", http.MethodPut, "/v1/absences/"+url.PathEscape(absence.RemoteID), nil, absenceToPayload(absence), nil)
}

func (c *absenceClient) Delete(ctx context.Context, remoteID string) error {
	return c.do(ctx, "delete absence", http.MethodDelete, "/v1/absences/"+url.PathEscape(remoteID), nil, nil, nil)
}

func (c *absenceClient) GetByCompany(ctx context.Context, companyID, employeeID string) ([]models.Absence, error) {
	query := url.Values{"companyId": {companyID}}
	if employeeID != "" {
		query.Set("employeeId", employeeID)
	}
	var payloads []absencePayload
	if err := c.do(ctx, "list absences", http.MethodGet, "/v1/absences", query, nil, &payloads); err != nil {
		return nil, err
	}
	absences := make([]models.Absence, 0, len(payloads))
	for _, p := range payloads {
		absences = append(absences, p.toModel())
	}
	return absences, nil
}
