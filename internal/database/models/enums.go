package models

// WorkLocation describes where an assigned employee works a shift
type WorkLocation string

const (
	WorkLocationOnSite WorkLocation = "on_site"
	WorkLocationRemote WorkLocation = "remote"
	WorkLocationTravel WorkLocation = "travel"
)

// IsValid checks if the work location is valid
func (w WorkLocation) IsValid() bool {
	switch w {
	case WorkLocationOnSite, WorkLocationRemote, WorkLocationTravel:
		return true
	}
	return false
}

// WeekStatus is the publication lifecycle of a WeeklyShift
type WeekStatus string

const (
	WeekStatusNotPublished WeekStatus = "NOT_PUBLISHED"
	WeekStatusDraft        WeekStatus = "DRAFT"
	WeekStatusPublished    WeekStatus = "PUBLISHED"
)

// IsValid checks if the week status is valid
func (s WeekStatus) IsValid() bool {
	switch s {
	case WeekStatusNotPublished, WeekStatusDraft, WeekStatusPublished:
		return true
	}
	return false
}

// AbsenceStatus is the review state of an absence request
type AbsenceStatus string

const (
	AbsenceStatusPending  AbsenceStatus = "pending"
	AbsenceStatusApproved AbsenceStatus = "approved"
	AbsenceStatusRejected AbsenceStatus = "rejected"
)

// IsValid checks if the absence status is valid
func (s AbsenceStatus) IsValid() bool {
	switch s {
	case AbsenceStatusPending, AbsenceStatusApproved, AbsenceStatusRejected:
		return true
	}
	return false
}

// EmployeeRole distinguishes planners from plain staff
type EmployeeRole string

const (
	RoleManager  EmployeeRole = "manager"
	RoleEmployee EmployeeRole = "employee"
)

// IsValid checks if the employee role is valid
func (r EmployeeRole) IsValid() bool {
	return r == RoleManager || r == RoleEmployee
}
