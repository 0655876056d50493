package repository

import (
	"context"

	"shift-planner-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmployeeRepository handles local cache operations for employee records
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// GetByCompany retrieves all cached employees of a company
func (r *EmployeeRepository) GetByCompany(ctx context.Context, companyID string) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("last_name ASC, first_name ASC").
		Find(&employees).Error
	return employees, err
}

// GetByRemoteID retrieves a cached employee by its remote id
func (r *EmployeeRepository) GetByRemoteID(ctx context.Context, remoteID string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).First(&employee, "remote_id = ?", remoteID).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// MergeRemote reconciles the cached employee set of a company against a
// fresh remote snapshot: rows are matched by remote id (local ids are
// preserved across refreshes), new rows inserted, and rows absent from
// the snapshot removed.
func (r *EmployeeRepository) MergeRemote(ctx context.Context, companyID string, snapshot []models.Employee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.Employee
		if err := tx.Where("company_id = ?", companyID).Find(&existing).Error; err != nil {
			return err
		}
		byRemoteID := make(map[string]models.Employee, len(existing))
		for _, e := range existing {
			byRemoteID[e.RemoteID] = e
		}

		seen := make(map[string]struct{}, len(snapshot))
		for i := range snapshot {
			in := &snapshot[i]
			in.CompanyID = companyID
			in.IsSynced = true
			seen[in.RemoteID] = struct{}{}
			if prev, ok := byRemoteID[in.RemoteID]; ok {
				in.ID = prev.ID
				in.CreatedAt = prev.CreatedAt
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(in).Error; err != nil {
				return err
			}
		}

		for remoteID, prev := range byRemoteID {
			if _, ok := seen[remoteID]; !ok {
				if err := tx.Delete(&models.Employee{}, "id = ?", prev.ID).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
