package remote

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"shift-planner-backend/internal/database/models"
)

// shiftPayload is the wire shape of a shift. The remote id lives in the
// "id" field; local uuids never travel over the wire.
type shiftPayload struct {
	ID            string                         `json:"id,omitempty"`
	Title         string                         `json:"title"`
	CompanyID     string                         `json:"companyId"`
	DepartmentID  string                         `json:"departmentId"`
	Date          string                         `json:"date"`
	StartTime     string                         `json:"startTime"`
	EndTime       string                         `json:"endTime"`
	Breaks        []models.TimeRange             `json:"breaks,omitempty"`
	Notes         []string                       `json:"notes,omitempty"`
	EmployeeIDs   []string                       `json:"employeeIds,omitempty"`
	WorkLocations map[string]models.WorkLocation `json:"workLocations,omitempty"`
}

func shiftToPayload(s *models.Shift) shiftPayload {
	return shiftPayload{
		ID:            s.RemoteID,
		Title:         s.Title,
		CompanyID:     s.CompanyID,
		DepartmentID:  s.DepartmentID,
		Date:          s.Date.Format(dateLayout),
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		Breaks:        s.Breaks,
		Notes:         s.Notes,
		EmployeeIDs:   s.EmployeeIDs,
		WorkLocations: s.WorkLocations,
	}
}

func (p shiftPayload) toModel() models.Shift {
	date, _ := time.Parse(dateLayout, p.Date)
	return models.Shift{
		SyncMeta:      models.SyncMeta{RemoteID: p.ID, IsSynced: true},
		Title:         p.Title,
		CompanyID:     p.CompanyID,
		DepartmentID:  p.DepartmentID,
		Date:          date,
		StartTime:     p.StartTime,
		EndTime:       p.EndTime,
		Breaks:        p.Breaks,
		Notes:         p.Notes,
		EmployeeIDs:   p.EmployeeIDs,
		WorkLocations: p.WorkLocations,
	}
}

type shiftClient struct {
	*Client
}

func (c *shiftClient) Create(ctx context.Context, shift *models.Shift) (string, error) {
	var created createdResponse
	payload := shiftToPayload(shift)
	payload.ID = ""
	if err := c.do(ctx, "create shift", http.MethodPost, "/v1/shifts", nil, payload, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (c *shiftClient) Update(ctx context.Context, shift *models.Shift) error {
	return c.do(ctx, "update shift", http.MethodPut, "/v1/shifts/"+url.PathEscape(shift.RemoteID), nil, shiftToPayload(shift), nil)
}

func (c *shiftClient) Delete(ctx context.Context, remoteID string) error {
	return c.do(ctx, "delete shift", http.MethodDelete, "/v1/shifts/"+url.PathEscape(remoteID), nil, nil, nil)
}

func (c *shiftClient) GetByID(ctx context.Context, remoteID string) (*models.Shift, error) {
	var payload shiftPayload
	if err := c.do(ctx, "get shift", http.MethodGet, "/v1/shifts/"+url.PathEscape(remoteID), nil, nil, &payload); err != nil {
		return nil, err
	}
	shift := payload.toModel()
	return &shift, nil
}

func (c *shiftClient) GetRangeByCompany(ctx context.Context, companyID string, from, to time.Time) ([]models.Shift, error) {
	query := url.Values{
		"companyId": {companyID},
		"from":      {from.Format(dateLayout)},
		"to":        {to.Format(dateLayout)},
	}
	var payloads []shiftPayload
	if err := c.do(ctx, "list shifts", http.MethodGet, "/v1/shifts", query, nil, &payloads); err != nil {
		return nil, err
	}
	shifts := make([]models.Shift, 0, len(payloads))
	for _, p := range payloads {
		shifts = append(shifts, p.toModel())
	}
	return shifts, nil
}
