package service

import (
	"context"
	"errors"
	"time"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/logger"
	"shift-planner-backend/internal/repository"
	"shift-planner-backend/internal/remote"
	"shift-planner-backend/internal/syncer"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AbsenceService reconciles the local absence cache with the remote
// store. Same local-first rules as shifts: edits land in the cache
// immediately, the remote store catches up on the next push pass.
type AbsenceService struct {
	repo      *repository.AbsenceRepository
	remote    remote.AbsenceStore
	sync      *syncer.Manager
	validator *validator.Validate
	log       *logger.Logger
	pushLocks *keyedMutex
}

// NewAbsenceService creates a new absence service
func NewAbsenceService(
	repo *repository.AbsenceRepository,
	remoteStore remote.AbsenceStore,
	staleness time.Duration,
	validate *validator.Validate,
) *AbsenceService {
	s := &AbsenceService{
		repo:      repo,
		remote:    remoteStore,
		validator: validate,
		log:       logger.NewWithComponent("absence-service"),
		pushLocks: newKeyedMutex(),
	}
	s.sync = syncer.NewManager("absences", staleness, s.refresh)
	return s
}

// GetAbsencesRequest asks for the absences of a company over a date
// range, optionally scoped to one employee
type GetAbsencesRequest struct {
	CompanyID  string    `json:"company_id"`
	EmployeeID string    `json:"employee_id,omitempty"`
	From       time.Time `json:"from" validate:"required"`
	To         time.Time `json:"to" validate:"required"`
}

// GetAbsences serves the current view of absence requests. A staleness-
// gated refresh runs first; its failure is masked while the cache can
// still serve, and only an unserveable cache miss surfaces the error.
func (s *AbsenceService) GetAbsences(ctx context.Context, req GetAbsencesRequest) Result[[]models.Absence] {
	if req.CompanyID == "" {
		return Empty[[]models.Absence]()
	}

	if err := s.sync.SyncIfNeeded(ctx, req.CompanyID, req.EmployeeID); err != nil {
		s.log.WithError(err).WithField("company", req.CompanyID).
			Debug("absence refresh failed, serving cache")
	}

	absences, err := s.repo.GetVisibleByDateRange(ctx, req.CompanyID, req.EmployeeID, dateOnly(req.From), dateOnly(req.To))
	if err != nil {
		return Failure[[]models.Absence](err)
	}
	if len(absences) > 0 {
		return Success(absences)
	}

	// Cache miss: go to the remote store directly so a first read on a
	// fresh device still works.
	fetched, err := s.remote.GetByCompany(ctx, req.CompanyID, req.EmployeeID)
	if err != nil {
		return Failure[[]models.Absence](err)
	}
	if err := s.repo.MergeRemote(ctx, req.CompanyID, fetched); err != nil {
		return Failure[[]models.Absence](err)
	}

	absences, err = s.repo.GetVisibleByDateRange(ctx, req.CompanyID, req.EmployeeID, dateOnly(req.From), dateOnly(req.To))
	if err != nil {
		return Failure[[]models.Absence](err)
	}
	if len(absences) == 0 {
		return Empty[[]models.Absence]()
	}
	return Success(absences)
}

func (s *AbsenceService) refresh(ctx context.Context, companyID, employeeID string) error {
	fetched, err := s.remote.GetByCompany(ctx, companyID, employeeID)
	if err != nil {
		return err
	}
	return s.repo.MergeRemote(ctx, companyID, fetched)
}

// SaveAbsenceRequest creates or edits an absence request
type SaveAbsenceRequest struct {
	ID         *uuid.UUID           `json:"id,omitempty"`
	CompanyID  string               `json:"company_id" validate:"required"`
	EmployeeID string               `json:"employee_id" validate:"required"`
	StartDate  time.Time            `json:"start_date" validate:"required"`
	EndDate    time.Time            `json:"end_date" validate:"required"`
	WholeDay   bool                 `json:"whole_day"`
	StartTime  string               `json:"start_time,omitempty"`
	EndTime    string               `json:"end_time,omitempty"`
	Reason     string               `json:"reason,omitempty" validate:"max=200"`
	Status     models.AbsenceStatus `json:"status,omitempty"`
}

// SaveAbsence writes an absence request to the cache only, flagged for
// the next push pass. An hourly absence must fit within a single day and
// carry a well-formed clock range.
func (s *AbsenceService) SaveAbsence(ctx context.Context, req SaveAbsenceRequest) (*models.Absence, error) {
	if err := s.validator.Struct(&req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}
	start, end := dateOnly(req.StartDate), dateOnly(req.EndDate)
	if end.Before(start) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	if !req.WholeDay {
		if !start.Equal(end) {
			return nil, &apperrors.ValidationError{Field: "end_date", Message: "hourly absences must stay within one day"}
		}
		if !validClockRange(req.StartTime, req.EndTime) {
			return nil, apperrors.ErrInvalidTimeRange
		}
	}

	status := req.Status
	if status == "" {
		status = models.AbsenceStatusPending
	}
	if !status.IsValid() {
		return nil, &apperrors.ValidationError{Field: "status", Message: "unknown absence status"}
	}

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
	}

	absence := &models.Absence{}
	exists := false
	if req.ID != nil {
		existing, err := s.repo.GetByID(ctx, id)
		switch {
		case err == nil:
			absence = existing
			exists = true
		case errors.Is(err, gorm.ErrRecordNotFound):
			// new record
		default:
			return nil, err
		}
	}

	absence.StartDate = start
	absence.EndDate = end
	absence.WholeDay = req.WholeDay
	absence.StartTime = req.StartTime
	absence.EndTime = req.EndTime
	absence.Reason = req.Reason
	absence.Status = status

	if !exists {
		absence.ID = id
		absence.CompanyID = req.CompanyID
		absence.EmployeeID = req.EmployeeID
		absence.CreatedAt = time.Now()
	}

	absence.IsDeleted = false
	absence.MarkDirty()
	absence.UpdatedAt = time.Now()

	if err := s.repo.Upsert(ctx, absence); err != nil {
		return nil, err
	}
	return absence, nil
}

// DeleteAbsence soft-deletes an absence request pending remote
// confirmation; a local-only draft is purged at once.
func (s *AbsenceService) DeleteAbsence(ctx context.Context, id uuid.UUID) error {
	absence, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAbsenceNotFound
		}
		return err
	}

	if absence.RemoteID == "" {
		return s.repo.Delete(ctx, id)
	}

	absence.IsDeleted = true
	absence.MarkDirty()
	return s.repo.Upsert(ctx, absence)
}

// ApproveAbsence transitions a pending request to approved
func (s *AbsenceService) ApproveAbsence(ctx context.Context, id uuid.UUID) (*models.Absence, error) {
	return s.review(ctx, id, models.AbsenceStatusApproved)
}

// RejectAbsence transitions a pending request to rejected
func (s *AbsenceService) RejectAbsence(ctx context.Context, id uuid.UUID) (*models.Absence, error) {
	return s.review(ctx, id, models.AbsenceStatusRejected)
}

func (s *AbsenceService) review(ctx context.Context, id uuid.UUID, status models.AbsenceStatus) (*models.Absence, error) {
	absence, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAbsenceNotFound
		}
		return nil, err
	}
	if absence.Status != models.AbsenceStatusPending {
		return nil, apperrors.ErrInvalidAbsenceStatus
	}

	absence.Status = status
	absence.MarkDirty()
	absence.UpdatedAt = time.Now()
	if err := s.repo.Upsert(ctx, absence); err != nil {
		return nil, err
	}
	return absence, nil
}

// SyncToRemote is the deferred push pass for all dirty absences of a
// company. Same ordering, abort and idempotence rules as the shift pass.
func (s *AbsenceService) SyncToRemote(ctx context.Context, companyID string) (PushSummary, error) {
	unlock := s.pushLocks.Lock("absences:" + companyID)
	defer unlock()

	var summary PushSummary

	dirty, err := s.repo.GetUnsynced(ctx, companyID)
	if err != nil {
		return summary, err
	}

	for i := range dirty {
		absence := &dirty[i]
		switch {
		case absence.IsDeleted:
			if absence.RemoteID != "" {
				err := s.remote.Delete(ctx, absence.RemoteID)
				if err != nil && !errors.Is(err, apperrors.ErrRemoteNotFound) {
					return summary, err
				}
			}
			if err := s.repo.Delete(ctx, absence.ID); err != nil {
				return summary, err
			}
			summary.Deleted++

		case absence.RemoteID == "":
			remoteID, err := s.remote.Create(ctx, absence)
			if err != nil {
				return summary, err
			}
			absence.MarkSynced(remoteID)
			if err := s.repo.Upsert(ctx, absence); err != nil {
				return summary, err
			}
			summary.Synced++

		default:
			if err := s.remote.Update(ctx, absence); err != nil {
				return summary, err
			}
			absence.MarkSynced("")
			if err := s.repo.Upsert(ctx, absence); err != nil {
				return summary, err
			}
			summary.Synced++
		}
	}

	s.log.WithFields(map[string]interface{}{
		"company": companyID,
		"synced":  summary.Synced,
		"deleted": summary.Deleted,
	}).Info("absence push pass completed")
	return summary, nil
}

// DeleteOldCachedAbsences purges cache rows whose range ended before the
// retention horizon. Cache-only, mirrors the shift retention pass.
func (s *AbsenceService) DeleteOldCachedAbsences(ctx context.Context, now time.Time, retentionDays int) (int64, error) {
	cutoff := dateOnly(now.AddDate(0, 0, -retentionDays))
	return s.repo.DeleteOlderThan(ctx, cutoff)
}
