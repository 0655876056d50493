package models

import (
	"time"
)

// WeeklyShift is the publication unit: one per company per ISO week.
// DepartmentIDs and EmployeeIDs are snapshots taken when the week is
// published, not live queries. Once published the week's shift set is
// treated as immutable by the planning flow.
type WeeklyShift struct {
	BaseModel
	CompanyID     string     `json:"company_id" gorm:"size:64;not null;index:idx_weekly_company_week,unique" validate:"required"`
	WeekStart     time.Time  `json:"week_start" gorm:"type:date;not null;index:idx_weekly_company_week,unique" validate:"required"`
	Status        WeekStatus `json:"status" gorm:"type:varchar(20);not null"`
	DepartmentIDs []string   `json:"department_ids" gorm:"serializer:json"`
	EmployeeIDs   []string   `json:"employee_ids" gorm:"serializer:json"`
	PublishedAt   *time.Time `json:"published_at"`
}

// TableName returns the table name for WeeklyShift
func (WeeklyShift) TableName() string {
	return "weekly_shifts"
}

// IsPublished reports whether the week has been published.
func (w *WeeklyShift) IsPublished() bool {
	return w.Status == WeekStatusPublished
}
