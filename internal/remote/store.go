// Package remote defines the contract with the authoritative networked
// store and ships its HTTP implementation. The store is reachable only
// when connectivity allows; every operation returns an error the caller
// can retry later without losing local state.
package remote

import (
	"context"
	"time"

	"shift-planner-backend/internal/database/models"
)

// ShiftStore is the remote contract for shifts.
//
// Delete returns apperrors.ErrRemoteNotFound when the remote store has
// no record for the id; callers treat that as an already-completed
// deletion, not a failure.
type ShiftStore interface {
	Create(ctx context.Context, shift *models.Shift) (remoteID string, err error)
	Update(ctx context.Context, shift *models.Shift) error
	Delete(ctx context.Context, remoteID string) error
	GetByID(ctx context.Context, remoteID string) (*models.Shift, error)
	GetRangeByCompany(ctx context.Context, companyID string, from, to time.Time) ([]models.Shift, error)
}

// AbsenceStore is the remote contract for absence requests.
type AbsenceStore interface {
	Create(ctx context.Context, absence *models.Absence) (remoteID string, err error)
	Update(ctx context.Context, absence *models.Absence) error
	Delete(ctx context.Context, remoteID string) error
	GetByCompany(ctx context.Context, companyID, employeeID string) ([]models.Absence, error)
}

// EmployeeStore is the remote contract for the read-only employee mirror.
type EmployeeStore interface {
	GetByCompany(ctx context.Context, companyID string) ([]models.Employee, error)
}
