package service

import (
	"context"
	"errors"
	"time"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/planner"

	"gorm.io/gorm"
)

// GetWeeklyShift returns the publication record for one company week
func (s *ShiftService) GetWeeklyShift(ctx context.Context, companyID string, weekStart time.Time) (*models.WeeklyShift, error) {
	week, err := s.weeklyRepo.GetByCompanyWeek(ctx, companyID, planner.WeekStart(weekStart))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWeeklyShiftNotFound
		}
		return nil, err
	}
	return week, nil
}

// MarkWeekDraft creates or updates the week's publication record in
// DRAFT state. A published week cannot be demoted.
func (s *ShiftService) MarkWeekDraft(ctx context.Context, companyID string, weekStart time.Time) (*models.WeeklyShift, error) {
	week, err := s.loadOrNewWeek(ctx, companyID, weekStart)
	if err != nil {
		return nil, err
	}
	if week.IsPublished() {
		return nil, apperrors.ErrWeekAlreadyPublished
	}
	week.Status = models.WeekStatusDraft
	if err := s.weeklyRepo.Upsert(ctx, week); err != nil {
		return nil, err
	}
	return week, nil
}

// PublishWeek transitions a week to PUBLISHED and snapshots the
// department and employee sets active in it. The snapshot is stored on
// the record, not re-queried later; once published the week's shift set
// is immutable for the planning flow.
func (s *ShiftService) PublishWeek(ctx context.Context, companyID string, weekStart time.Time) (*models.WeeklyShift, error) {
	week, err := s.loadOrNewWeek(ctx, companyID, weekStart)
	if err != nil {
		return nil, err
	}
	if week.IsPublished() {
		return nil, apperrors.ErrWeekAlreadyPublished
	}

	monday, sunday := planner.WeekBounds(week.WeekStart)
	shifts, err := s.repo.GetVisibleByDateRange(ctx, companyID, monday, sunday)
	if err != nil {
		return nil, err
	}

	departments := make(map[string]struct{})
	employees := make(map[string]struct{})
	for i := range shifts {
		if shifts[i].DepartmentID != "" {
			departments[shifts[i].DepartmentID] = struct{}{}
		}
		for _, id := range shifts[i].EmployeeIDs {
			employees[id] = struct{}{}
		}
	}
	week.DepartmentIDs = sortedKeys(departments)
	week.EmployeeIDs = sortedKeys(employees)

	now := time.Now()
	week.Status = models.WeekStatusPublished
	week.PublishedAt = &now
	if err := s.weeklyRepo.Upsert(ctx, week); err != nil {
		return nil, err
	}
	return week, nil
}

func (s *ShiftService) loadOrNewWeek(ctx context.Context, companyID string, weekStart time.Time) (*models.WeeklyShift, error) {
	if companyID == "" {
		return nil, apperrors.ErrNoCompanyContext
	}
	monday := planner.WeekStart(weekStart)
	if !weekStart.UTC().Truncate(24 * time.Hour).Equal(monday) {
		return nil, apperrors.ErrInvalidWeekStart
	}

	week, err := s.weeklyRepo.GetByCompanyWeek(ctx, companyID, monday)
	switch {
	case err == nil:
		return week, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &models.WeeklyShift{
			CompanyID: companyID,
			WeekStart: monday,
			Status:    models.WeekStatusNotPublished,
		}, nil
	default:
		return nil, err
	}
}
