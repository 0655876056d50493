package testutils

import (
	"time"

	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a test Shift with default values
func (f *ShiftFactory) Create() *models.Shift {
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:        "Morning Shift",
		CompanyID:    "company-1",
		DepartmentID: "dept-1",
		Date:         time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		StartTime:    "08:00",
		EndTime:      "16:00",
		EmployeeIDs:  []string{"emp-1"},
		WorkLocations: map[string]models.WorkLocation{
			"emp-1": models.WorkLocationOnSite,
		},
	}
}

// WithDate sets a custom date for the shift
func (f *ShiftFactory) WithDate(date time.Time) *models.Shift {
	shift := f.Create()
	shift.Date = date
	return shift
}

// WithTimes sets custom start and end clocks for the shift
func (f *ShiftFactory) WithTimes(start, end string) *models.Shift {
	shift := f.Create()
	shift.StartTime = start
	shift.EndTime = end
	return shift
}

// WithCompany sets a custom company for the shift
func (f *ShiftFactory) WithCompany(companyID string) *models.Shift {
	shift := f.Create()
	shift.CompanyID = companyID
	return shift
}

// Synced marks the shift as already mirrored to the remote store
func (f *ShiftFactory) Synced(remoteID string) *models.Shift {
	shift := f.Create()
	shift.RemoteID = remoteID
	shift.IsSynced = true
	return shift
}

// AbsenceFactory provides methods to create test Absence data
type AbsenceFactory struct{}

// NewAbsenceFactory creates a new AbsenceFactory
func NewAbsenceFactory() *AbsenceFactory {
	return &AbsenceFactory{}
}

// Create creates a test Absence with default values
func (f *AbsenceFactory) Create() *models.Absence {
	return &models.Absence{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:  "company-1",
		EmployeeID: "emp-1",
		StartDate:  time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		WholeDay:   true,
		Reason:     "Vacation",
		Status:     models.AbsenceStatusPending,
	}
}

// WithStatus sets a custom review status for the absence
func (f *AbsenceFactory) WithStatus(status models.AbsenceStatus) *models.Absence {
	absence := f.Create()
	absence.Status = status
	return absence
}

// Hourly makes the absence a single-day clock range
func (f *AbsenceFactory) Hourly(date time.Time, start, end string) *models.Absence {
	absence := f.Create()
	absence.StartDate = date
	absence.EndDate = date
	absence.WholeDay = false
	absence.StartTime = start
	absence.EndTime = end
	return absence
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SyncMeta: models.SyncMeta{
			RemoteID: "emp-" + id.String()[:8],
			IsSynced: true,
		},
		CompanyID: "company-1",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@test.com",
		Phone:     "+1-555-0100",
		Role:      models.RoleEmployee,
	}
}

// WithName sets a custom name for the employee
func (f *EmployeeFactory) WithName(first, last string) *models.Employee {
	employee := f.Create()
	employee.FirstName = first
	employee.LastName = last
	return employee
}

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department open weekdays 08:00 to 16:00
func (f *DepartmentFactory) Create() *models.Department {
	return &models.Department{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID: "company-1",
		Name:      "Front Desk",
		Hours: map[time.Weekday]models.DayHours{
			time.Monday:    {Open: "08:00", Close: "16:00"},
			time.Tuesday:   {Open: "08:00", Close: "16:00"},
			time.Wednesday: {Open: "08:00", Close: "16:00"},
			time.Thursday:  {Open: "08:00", Close: "16:00"},
			time.Friday:    {Open: "08:00", Close: "16:00"},
		},
	}
}

// WithHours sets custom operating hours for the department
func (f *DepartmentFactory) WithHours(hours map[time.Weekday]models.DayHours) *models.Department {
	dept := f.Create()
	dept.Hours = hours
	return dept
}
