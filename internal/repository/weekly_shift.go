package repository

import (
	"context"
	"time"

	"shift-planner-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WeeklyShiftRepository handles local cache operations for weekly
// publication records
type WeeklyShiftRepository struct {
	db *gorm.DB
}

// NewWeeklyShiftRepository creates a new weekly shift repository
func NewWeeklyShiftRepository(db *gorm.DB) *WeeklyShiftRepository {
	return &WeeklyShiftRepository{db: db}
}

// GetByCompanyWeek retrieves the publication record for one company week
func (r *WeeklyShiftRepository) GetByCompanyWeek(ctx context.Context, companyID string, weekStart time.Time) (*models.WeeklyShift, error) {
	var week models.WeeklyShift
	err := r.db.WithContext(ctx).
		First(&week, "company_id = ? AND week_start = ?", companyID, weekStart).Error
	if err != nil {
		return nil, err
	}
	return &week, nil
}

// Upsert writes a weekly shift keyed by id
func (r *WeeklyShiftRepository) Upsert(ctx context.Context, week *models.WeeklyShift) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(week).Error
}
