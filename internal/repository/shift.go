package repository

import (
	"context"
	"time"

	"shift-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShiftRepository handles local cache operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.WithContext(ctx).First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// ExistsByID reports whether a cache row with the given id exists.
// Soft-deleted rows count as existing.
func (r *ShiftRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Shift{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetByDateRange retrieves all cached shifts of a company in [from, to],
// soft-deleted rows included.
func (r *ShiftRepository) GetByDateRange(ctx context.Context, companyID string, from, to time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND date >= ? AND date <= ?", companyID, from, to).
		Order("date ASC, start_time ASC").
		Find(&shifts).Error
	return shifts, err
}

// GetVisibleByDateRange retrieves the shifts of a company in [from, to]
// that are not pending deletion. This is the display read.
func (r *ShiftRepository) GetVisibleByDateRange(ctx context.Context, companyID string, from, to time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND date >= ? AND date <= ? AND is_deleted = ?", companyID, from, to, false).
		Order("date ASC, start_time ASC").
		Find(&shifts).Error
	return shifts, err
}

// GetVisibleByDepartmentDate retrieves the non-deleted shifts of one
// department on one calendar date.
func (r *ShiftRepository) GetVisibleByDepartmentDate(ctx context.Context, departmentID string, date time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.WithContext(ctx).
		Where("department_id = ? AND date = ? AND is_deleted = ?", departmentID, date, false).
		Order("start_time ASC").
		Find(&shifts).Error
	return shifts, err
}

// GetUnsyncedInRange retrieves the dirty rows of a company in [from, to]
// in creation order, the order the push pass processes them in.
func (r *ShiftRepository) GetUnsyncedInRange(ctx context.Context, companyID string, from, to time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND date >= ? AND date <= ? AND is_synced = ?", companyID, from, to, false).
		Order("created_at ASC").
		Find(&shifts).Error
	return shifts, err
}

// Upsert writes a shift keyed by id, inserting or fully replacing.
func (r *ShiftRepository) Upsert(ctx context.Context, shift *models.Shift) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(shift).Error
}

// UpsertAll writes a batch of shifts keyed by id.
func (r *ShiftRepository) UpsertAll(ctx context.Context, shifts []models.Shift) error {
	if len(shifts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&shifts).Error
}

// Delete hard-deletes a shift from the cache
func (r *ShiftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Shift{}, "id = ?", id).Error
}

// DeleteOlderThan purges rows dated strictly before the cutoff and
// returns the number of purged rows.
func (r *ShiftRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("date < ?", cutoff).Delete(&models.Shift{})
	return res.RowsAffected, res.Error
}

// MergeRemote writes a remote snapshot for [from, to] into the cache.
// Rows are matched by remote id with local ids preserved. Dirty local
// rows always win over the remote value; they are left untouched for the
// next push pass. Synced local rows absent from the snapshot were
// deleted on another device and are purged. Local-only rows without a
// remote id are unsynced drafts and are never touched.
func (r *ShiftRepository) MergeRemote(ctx context.Context, companyID string, from, to time.Time, snapshot []models.Shift) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.Shift
		if err := tx.Where("company_id = ? AND date >= ? AND date <= ?", companyID, from, to).
			Find(&existing).Error; err != nil {
			return err
		}
		byRemoteID := make(map[string]models.Shift, len(existing))
		for _, s := range existing {
			if s.RemoteID != "" {
				byRemoteID[s.RemoteID] = s
			}
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
			if err := tx.Delete(&models.Shift{}, "id = ?", prev.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
