package repository

import (
	"context"
	"time"

	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AbsenceRepository handles local cache operations for absence requests
type AbsenceRepository struct {
	db *gorm.DB
}

// NewAbsenceRepository creates a new absence repository
func NewAbsenceRepository(db *gorm.DB) *AbsenceRepository {
	return &AbsenceRepository{db: db}
}

// GetByID retrieves an absence by ID
func (r *AbsenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Absence, error) {
	var absence models.Absence
	err := r.db.WithContext(ctx).First(&absence, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &absence, nil
}

// ExistsByID reports whether a cache row with the given id exists
func (r *AbsenceRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Absence{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetVisibleByDateRange retrieves the non-deleted absences of a company
// overlapping [from, to], optionally scoped to one employee.
func (r *AbsenceRepository) GetVisibleByDateRange(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]models.Absence, error) {
	q := r.db.WithContext(ctx).
		Where("company_id = ? AND start_date <= ? AND end_date >= ? AND is_deleted = ?", companyID, to, from, false)
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	var absences []models.Absence
	err := q.Order("start_date ASC").Find(&absences).Error
	return absences, err
}

// GetUnsynced retrieves all dirty rows of a company in creation order
func (r *AbsenceRepository) GetUnsynced(ctx context.Context, companyID string) ([]models.Absence, error) {
	var absences []models.Absence
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_synced = ?", companyID, false).
		Order("created_at ASC").
		Find(&absences).Error
	return absences, err
}

// Upsert writes an absence keyed by id, inserting or fully replacing
func (r *AbsenceRepository) Upsert(ctx context.Context, absence *models.Absence) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(absence).Error
}

// UpsertAll writes a batch of absences keyed by id
func (r *AbsenceRepository) UpsertAll(ctx context.Context, absences []models.Absence) error {
	if len(absences) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&absences).Error
}

// Delete hard-deletes an absence from the cache
func (r *AbsenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Absence{}, "id = ?", id).Error
}

// DeleteOlderThan purges rows whose range ends strictly before the cutoff
func (r *AbsenceRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("end_date < ?", cutoff).Delete(&models.Absence{})
	return res.RowsAffected, res.Error
}

// MergeRemote writes a remote snapshot into the cache, matched by remote
// id with local ids preserved. Dirty local rows win over the remote
// value and stay queued for the next push pass. Synced local rows absent
// from the snapshot were deleted on another device and are purged;
// local-only drafts without a remote id are never touched.
func (r *AbsenceRepository) MergeRemote(ctx context.Context, companyID string, snapshot []models.Absence) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.Absence
		if err := tx.Where("company_id = ? AND remote_id <> ''", companyID).Find(&existing).Error; err != nil {
			return err
		}
		byRemoteID := make(map[string]models.Absence, len(existing))
		for _, a := range existing {
			byRemoteID[a.RemoteID] = a
		}

		seen := make(map[string]struct{}, len(snapshot))
		for i := range snapshot {
			in := &snapshot[i]
			in.CompanyID = companyID
			in.IsSynced = true
			in.IsDeleted = false
			seen[in.RemoteID] = struct{}{}
			if prev, ok := byRemoteID[in.RemoteID]; ok {
				if !prev.IsSynced {
					continue
				}
				in.ID = prev.ID
				in.CreatedAt = prev.CreatedAt
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(in).Error; err != nil {
				return err
			}
		}

		for remoteID, prev := range byRemoteID {
			if _, ok := seen[remoteID]; ok || !prev.IsSynced {
				continue
			}
			if err := tx.Delete(&models.Absence{}, "id = ?", prev.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
