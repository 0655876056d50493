package models

// Employee is a staff record mirrored from the remote store. Employees
// are not edited on the device; the sync metadata exists so the cache
// can track which rows still match the remote snapshot.
type Employee struct {
	BaseModel
	SyncMeta
	CompanyID string       `json:"company_id" gorm:"size:64;not null;index" validate:"required"`
	FirstName string       `json:"first_name" gorm:"size:60" validate:"required,max=60"`
	LastName  string       `json:"last_name" gorm:"size:60" validate:"required,max=60"`
	Email     string       `json:"email" gorm:"size:120" validate:"omitempty,email"`
	Phone     string       `json:"phone" gorm:"size:30"`
	Role      EmployeeRole `json:"role" gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
