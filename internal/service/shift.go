package service

import (
	"context"
	"errors"
	"time"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/logger"
	"shift-planner-backend/internal/planner"
	"shift-planner-backend/internal/repository"
	"shift-planner-backend/internal/remote"
	"shift-planner-backend/internal/syncer"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftService reconciles the local shift cache with the remote store
// and serves the current view of a week's shifts to callers. It is the
// only writer of shift sync metadata.
type ShiftService struct {
	repo          *repository.ShiftRepository
	weeklyRepo    *repository.WeeklyShiftRepository
	deptRepo      *repository.DepartmentRepository
	remote        remote.ShiftStore
	sync          *syncer.Manager
	windows       planner.WindowPolicy
	retentionDays int
	validator     *validator.Validate
	log           *logger.Logger
	pushLocks     *keyedMutex
}

// NewShiftService creates a new shift service. The service owns its sync
// manager; staleness is the cache freshness interval.
func NewShiftService(
	repo *repository.ShiftRepository,
	weeklyRepo *repository.WeeklyShiftRepository,
	deptRepo *repository.DepartmentRepository,
	remoteStore remote.ShiftStore,
	windows planner.WindowPolicy,
	staleness time.Duration,
	retentionDays int,
	validate *validator.Validate,
) *ShiftService {
	s := &ShiftService{
		repo:          repo,
		weeklyRepo:    weeklyRepo,
		deptRepo:      deptRepo,
		remote:        remoteStore,
		windows:       windows,
		retentionDays: retentionDays,
		validator:     validate,
		log:           logger.NewWithComponent("shift-service"),
		pushLocks:     newKeyedMutex(),
	}
	s.sync = syncer.NewManager("shifts", staleness, s.refreshWindow)
	return s
}

// GetShiftsRequest asks for the shifts of one company week
type GetShiftsRequest struct {
	CompanyID string              `json:"company_id"`
	WeekStart time.Time           `json:"week_start" validate:"required"`
	Role      models.EmployeeRole `json:"role"`
}

// GetShiftsForWeek serves the current view of a week. In-window weeks
// get a staleness-gated background refresh whose failure is masked while
// the cache can still serve; a cache miss falls back to a direct remote
// fetch. Weeks outside the planning window skip the refresh gate and use
// the same cache-then-remote fallback. The tri-state result separates
// "no shifts exist" from "could not find out".
func (s *ShiftService) GetShiftsForWeek(ctx context.Context, req GetShiftsRequest) Result[[]models.Shift] {
	monday, sunday := planner.WeekBounds(req.WeekStart)

	if req.CompanyID != "" {
		window := s.windows.WindowFor(req.Role, time.Now())
		if window.Contains(monday) {
			if err := s.sync.SyncIfNeeded(ctx, req.CompanyID, ""); err != nil {
				s.log.WithError(err).WithField("company", req.CompanyID).
					Debug("windowed refresh failed, serving cache")
			}
		}
	}

	shifts, err := s.repo.GetVisibleByDateRange(ctx, req.CompanyID, monday, sunday)
	if err != nil {
		return Failure[[]models.Shift](err)
	}
	if len(shifts) > 0 {
		return Success(shifts)
	}

	if req.CompanyID == "" {
		return Empty[[]models.Shift]()
	}

	fetched, err := s.remote.GetRangeByCompany(ctx, req.CompanyID, monday, sunday)
	if err != nil {
		return Failure[[]models.Shift](err)
	}
	if err := s.repo.MergeRemote(ctx, req.CompanyID, monday, sunday, fetched); err != nil {
		return Failure[[]models.Shift](err)
	}

	shifts, err = s.repo.GetVisibleByDateRange(ctx, req.CompanyID, monday, sunday)
	if err != nil {
		return Failure[[]models.Shift](err)
	}
	if len(shifts) == 0 {
		return Empty[[]models.Shift]()
	}
	return Success(shifts)
}

// ForceRefreshWeek bypasses the staleness gate and re-reads the week
func (s *ShiftService) ForceRefreshWeek(ctx context.Context, req GetShiftsRequest) Result[[]models.Shift] {
	if req.CompanyID == "" {
		return Empty[[]models.Shift]()
	}
	if err := s.sync.ForceSync(ctx, req.CompanyID, ""); err != nil {
		return Failure[[]models.Shift](err)
	}
	monday, sunday := planner.WeekBounds(req.WeekStart)
	shifts, err := s.repo.GetVisibleByDateRange(ctx, req.CompanyID, monday, sunday)
	if err != nil {
		return Failure[[]models.Shift](err)
	}
	if len(shifts) == 0 {
		return Empty[[]models.Shift]()
	}
	return Success(shifts)
}

// refreshWindow is the sync manager's fetch: it pulls the widest
// planning window from the remote store and merges it into the cache.
func (s *ShiftService) refreshWindow(ctx context.Context, companyID, _ string) error {
	window := s.windows.WindowFor(models.RoleManager, time.Now())
	from := window.Start
	_, to := planner.WeekBounds(window.End)

	fetched, err := s.remote.GetRangeByCompany(ctx, companyID, from, to)
	if err != nil {
		return err
	}
	return s.repo.MergeRemote(ctx, companyID, from, to, fetched)
}

// SaveShiftRequest creates or edits a shift. A request is "new" iff no
// cache row with its id exists; remote ids play no part in that call.
type SaveShiftRequest struct {
	ID            *uuid.UUID                     `json:"id,omitempty"`
	Title         string                         `json:"title" validate:"max=100"`
	CompanyID     string                         `json:"company_id" validate:"required"`
	DepartmentID  string                         `json:"department_id" validate:"required"`
	Date          time.Time                      `json:"date" validate:"required"`
	StartTime     string                         `json:"start_time" validate:"required"`
	EndTime       string                         `json:"end_time" validate:"required"`
	Breaks        []models.TimeRange             `json:"breaks,omitempty"`
	Notes         []string                       `json:"notes,omitempty"`
	EmployeeIDs   []string                       `json:"employee_ids,omitempty"`
	WorkLocations map[string]models.WorkLocation `json:"work_locations,omitempty"`
}

// SaveShift writes a user edit to the cache only, so the UI can proceed
// while offline. The record is flagged dirty for the next push pass; the
// remote store is never contacted here.
func (s *ShiftService) SaveShift(ctx context.Context, req SaveShiftRequest) (*models.Shift, error) {
	if err := s.validator.Struct(&req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}
	if !validClockRange(req.StartTime, req.EndTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	if err := s.guardPublishedWeek(ctx, req.CompanyID, req.Date); err != nil {
		return nil, err
	}

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
	}

	shift := &models.Shift{}
	exists := false
	if req.ID != nil {
		existing, err := s.repo.GetByID(ctx, id)
		switch {
		case err == nil:
			shift = existing
			exists = true
		case errors.Is(err, gorm.ErrRecordNotFound):
			// treated as a new record
		default:
			return nil, err
		}
	}

	shift.Title = req.Title
	shift.Date = dateOnly(req.Date)
	shift.StartTime = req.StartTime
	shift.EndTime = req.EndTime
	shift.Breaks = req.Breaks
	shift.Notes = req.Notes
	shift.EmployeeIDs = req.EmployeeIDs
	if req.WorkLocations != nil {
		shift.WorkLocations = req.WorkLocations
	}
	shift.SyncEmployeeLocations()

	if !exists {
		// New records get their identity and foreign context attached.
		shift.ID = id
		shift.CompanyID = req.CompanyID
		shift.DepartmentID = req.DepartmentID
		shift.CreatedAt = time.Now()
	}

	shift.IsDeleted = false
	shift.MarkDirty()
	shift.UpdatedAt = time.Now()

	if err := s.repo.Upsert(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

// DeleteShift soft-deletes a shift: the row is flagged, kept in the
// cache, and purged only once the remote deletion is confirmed by a push
// pass. A draft that never reached the remote store is purged at once.
func (s *ShiftService) DeleteShift(ctx context.Context, id uuid.UUID) error {
	shift, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return err
	}

	if shift.RemoteID == "" {
		return s.repo.Delete(ctx, id)
	}

	shift.IsDeleted = true
	shift.MarkDirty()
	return s.repo.Upsert(ctx, shift)
}

// SaveShiftImmediate is the time-critical variant: the cache write
// happens exactly like SaveShift, then the remote write is attempted in
// the same operation. On remote failure the local mutation stands with
// the dirty flag set; the caller can tell from IsSynced whether the
// write was deferred.
func (s *ShiftService) SaveShiftImmediate(ctx context.Context, req SaveShiftRequest) (*models.Shift, error) {
	shift, err := s.SaveShift(ctx, req)
	if err != nil {
		return nil, err
	}

	if shift.RemoteID == "" {
		remoteID, err := s.remote.Create(ctx, shift)
		if err != nil {
			s.log.WithError(err).WithField("shift", shift.ID).Warn("immediate create deferred")
			return shift, nil
		}
		shift.MarkSynced(remoteID)
	} else {
		if err := s.remote.Update(ctx, shift); err != nil {
			s.log.WithError(err).WithField("shift", shift.ID).Warn("immediate update deferred")
			return shift, nil
		}
		shift.MarkSynced("")
	}

	if err := s.repo.Upsert(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

// DeleteShiftImmediate soft-deletes locally, then attempts the remote
// deletion synchronously. Success or a remote "not found" purges the
// row; a remote failure leaves the soft delete queued for the next push.
func (s *ShiftService) DeleteShiftImmediate(ctx context.Context, id uuid.UUID) error {
	shift, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return err
	}

	if shift.RemoteID == "" {
		return s.repo.Delete(ctx, id)
	}

	shift.IsDeleted = true
	shift.MarkDirty()
	if err := s.repo.Upsert(ctx, shift); err != nil {
		return err
	}

	err = s.remote.Delete(ctx, shift.RemoteID)
	if err != nil && !errors.Is(err, apperrors.ErrRemoteNotFound) {
		s.log.WithError(err).WithField("shift", id).Warn("immediate delete deferred")
		return nil
	}
	return s.repo.Delete(ctx, id)
}

// SyncWeekToRemote is the deferred push pass for one company week.
// Dirty records are processed in creation order; the first remote
// failure aborts the pass, leaving earlier records synced and the rest
// still dirty, so rerunning the pass is safe and idempotent.
func (s *ShiftService) SyncWeekToRemote(ctx context.Context, companyID string, weekStart time.Time) (PushSummary, error) {
	unlock := s.pushLocks.Lock("shifts:" + companyID)
	defer unlock()

	var summary PushSummary

	monday, sunday := planner.WeekBounds(weekStart)
	dirty, err := s.repo.GetUnsyncedInRange(ctx, companyID, monday, sunday)
	if err != nil {
		return summary, err
	}

	for i := range dirty {
		shift := &dirty[i]
		switch {
		case shift.IsDeleted:
			if shift.RemoteID != "" {
				err := s.remote.Delete(ctx, shift.RemoteID)
				if err != nil && !errors.Is(err, apperrors.ErrRemoteNotFound) {
					return summary, err
				}
			}
			if err := s.repo.Delete(ctx, shift.ID); err != nil {
				return summary, err
			}
			summary.Deleted++

		case shift.RemoteID == "":
			remoteID, err := s.remote.Create(ctx, shift)
			if err != nil {
				return summary, err
			}
			shift.MarkSynced(remoteID)
			if err := s.repo.Upsert(ctx, shift); err != nil {
				return summary, err
			}
			summary.Synced++

		default:
			if err := s.remote.Update(ctx, shift); err != nil {
				return summary, err
			}
			shift.MarkSynced("")
			if err := s.repo.Upsert(ctx, shift); err != nil {
				return summary, err
			}
			summary.Synced++
		}
	}

	s.log.WithFields(map[string]interface{}{
		"company": companyID,
		"week":    monday.Format("2006-01-02"),
		"synced":  summary.Synced,
		"deleted": summary.Deleted,
	}).Info("push pass completed")
	return summary, nil
}

// DeleteOldCachedShifts bounds on-device storage: rows older than the
// retention horizon, rounded down to a week boundary, are purged from
// the cache. The remote store is never touched.
func (s *ShiftService) DeleteOldCachedShifts(ctx context.Context, now time.Time) (int64, error) {
	cutoff := planner.WeekStart(now.AddDate(0, 0, -s.retentionDays))
	purged, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if purged > 0 {
		s.log.WithField("purged", purged).Info("retention pass purged old shifts")
	}
	return purged, nil
}

// guardPublishedWeek rejects edits to shifts of a published week so the
// sync flow cannot silently resurrect them.
func (s *ShiftService) guardPublishedWeek(ctx context.Context, companyID string, date time.Time) error {
	week, err := s.weeklyRepo.GetByCompanyWeek(ctx, companyID, planner.WeekStart(date))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if week.IsPublished() {
		return apperrors.ErrEditOnPublishedWeek
	}
	return nil
}
