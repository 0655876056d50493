package models

import (
	"time"
)

// DayHours is an opening/closing pair for one weekday, "HH:MM" formatted.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Department is a named work area with per-weekday operating hours.
// A weekday with no entry is closed. Read-mostly, owned by the company
// aggregate, carries no sync metadata.
type Department struct {
	BaseModel
	CompanyID string                    `json:"company_id" gorm:"size:64;not null;index" validate:"required"`
	Name      string                    `json:"name" gorm:"size:80;not null" validate:"required,max=80"`
	Hours     map[time.Weekday]DayHours `json:"hours" gorm:"serializer:json"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}

// HoursFor returns the operating hours for a weekday, with ok=false
// when the department is closed that day.
func (d *Department) HoursFor(day time.Weekday) (DayHours, bool) {
	h, ok := d.Hours[day]
	return h, ok
}
