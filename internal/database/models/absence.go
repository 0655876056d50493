package models

import (
	"time"
)

// Absence is a request for time off, either whole days or a clock range
// within a single day.
type Absence struct {
	BaseModel
	SyncMeta
	CompanyID  string        `json:"company_id" gorm:"size:64;not null;index" validate:"required"`
	EmployeeID string        `json:"employee_id" gorm:"size:64;not null;index" validate:"required"`
	StartDate  time.Time     `json:"start_date" gorm:"type:date;not null;index" validate:"required"`
	EndDate    time.Time     `json:"end_date" gorm:"type:date;not null" validate:"required"`
	WholeDay   bool          `json:"whole_day"`
	StartTime  string        `json:"start_time" gorm:"size:5"`
	EndTime    string        `json:"end_time" gorm:"size:5"`
	Reason     string        `json:"reason" gorm:"size:200" validate:"max=200"`
	Status     AbsenceStatus `json:"status" gorm:"type:varchar(20);not null" validate:"required"`
}

// TableName returns the table name for Absence
func (Absence) TableName() string {
	return "absences"
}
