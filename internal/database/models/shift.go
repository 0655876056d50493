package models

import (
	"time"
)

// TimeRange is a clock interval within one day, "HH:MM" formatted.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Shift is a scheduled work interval for one department on one calendar
// date, assigned to a set of employees. Assigned employee ids are the
// keys of WorkLocations; SyncEmployeeLocations keeps that invariant.
type Shift struct {
	BaseModel
	SyncMeta
	Title         string                  `json:"title" gorm:"size:100" validate:"max=100"`
	CompanyID     string                  `json:"company_id" gorm:"size:64;not null;index" validate:"required"`
	DepartmentID  string                  `json:"department_id" gorm:"size:64;index" validate:"required"`
	Date          time.Time               `json:"date" gorm:"type:date;not null;index" validate:"required"`
	StartTime     string                  `json:"start_time" gorm:"size:5;not null" validate:"required"`
	EndTime       string                  `json:"end_time" gorm:"size:5;not null" validate:"required"`
	Breaks        []TimeRange             `json:"breaks" gorm:"serializer:json"`
	Notes         []string                `json:"notes" gorm:"serializer:json"`
	EmployeeIDs   []string                `json:"employee_ids" gorm:"serializer:json"`
	WorkLocations map[string]WorkLocation `json:"work_locations" gorm:"serializer:json"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// SyncEmployeeLocations reconciles the work-location map with the
// assigned employee set: entries for unassigned employees are pruned,
// newly assigned employees default to on-site.
func (s *Shift) SyncEmployeeLocations() {
	if s.WorkLocations == nil {
		s.WorkLocations = make(map[string]WorkLocation, len(s.EmployeeIDs))
	}
	assigned := make(map[string]struct{}, len(s.EmployeeIDs))
	for _, id := range s.EmployeeIDs {
		assigned[id] = struct{}{}
		if loc, ok := s.WorkLocations[id]; !ok || !loc.IsValid() {
			s.WorkLocations[id] = WorkLocationOnSite
		}
	}
	for id := range s.WorkLocations {
		if _, ok := assigned[id]; !ok {
			delete(s.WorkLocations, id)
		}
	}
}
