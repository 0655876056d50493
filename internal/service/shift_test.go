package service

import (
	"context"
	"testing"
	"time"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/planner"
	"shift-planner-backend/internal/repository"
	"shift-planner-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ShiftServiceTestSuite struct {
	suite.Suite
	svc     *ShiftService
	repo    *repository.ShiftRepository
	store   *fakeShiftStore
	factory *testutils.ShiftFactory
	ctx     context.Context
	monday  time.Time
}

func (s *ShiftServiceTestSuite) SetupTest() {
	db := testutils.NewTestDB(s.T())
	s.repo = repository.NewShiftRepository(db)
	s.store = newFakeShiftStore()
	s.factory = testutils.NewShiftFactory()
	s.ctx = context.Background()
	s.monday = planner.WeekStart(time.Now())

	windows := planner.WindowPolicy{
		ManagerWeeksBack:   4,
		ManagerWeeksAhead:  8,
		EmployeeWeeksBack:  2,
		EmployeeWeeksAhead: 1,
	}
	s.svc = NewShiftService(
		s.repo,
		repository.NewWeeklyShiftRepository(db),
		repository.NewDepartmentRepository(db),
		s.store,
		windows,
		time.Minute,
		90,
		validator.New(),
	)
}

func TestShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}

func (s *ShiftServiceTestSuite) saveRequest() SaveShiftRequest {
	return SaveShiftRequest{
		Title:        "Morning Shift",
		CompanyID:    "company-1",
		DepartmentID: "dept-1",
		Date:         s.monday.AddDate(0, 0, 2),
		StartTime:    "08:00",
		EndTime:      "16:00",
		EmployeeIDs:  []string{"emp-1"},
	}
}

func (s *ShiftServiceTestSuite) weekRequest() GetShiftsRequest {
	return GetShiftsRequest{
		CompanyID: "company-1",
		WeekStart: s.monday,
		Role:      models.RoleManager,
	}
}

func (s *ShiftServiceTestSuite) TestGetShiftsWithoutCompanyIsEmpty() {
	result := s.svc.GetShiftsForWeek(s.ctx, GetShiftsRequest{WeekStart: s.monday})
	s.True(result.IsEmpty())
}

func (s *ShiftServiceTestSuite) TestGetShiftsRemoteDownEmptyCacheIsError() {
	s.store.setDown(true)

	result := s.svc.GetShiftsForWeek(s.ctx, s.weekRequest())

	s.True(result.IsError(), "an unserveable cache miss must not look like an empty week")
	s.True(apperrors.IsRemote(result.Err))
}

func (s *ShiftServiceTestSuite) TestGetShiftsNoRemoteDataIsEmpty() {
	result := s.svc.GetShiftsForWeek(s.ctx, s.weekRequest())
	s.True(result.IsEmpty())
	s.False(result.IsError())
}

func (s *ShiftServiceTestSuite) TestGetShiftsFetchesOnceThenServesCache() {
	remote := s.factory.WithDate(s.monday)
	remote.ID = uuid.Nil
	s.store.seed("rem-1", *remote)

	first := s.svc.GetShiftsForWeek(s.ctx, s.weekRequest())
	s.Require().True(first.IsSuccess())
	s.Require().Len(first.Data, 1)
	s.Equal("rem-1", first.Data[0].RemoteID)

	// Within the freshness interval the cache serves alone, even with
	// the remote store gone.
	s.store.setDown(true)
	second := s.svc.GetShiftsForWeek(s.ctx, s.weekRequest())
	s.True(second.IsSuccess())
	s.Equal(1, s.store.rangeCalls)
}

func (s *ShiftServiceTestSuite) TestGetShiftsOutsideWindowFallsBackToRemote() {
	// Ten weeks out is beyond the manager horizon, so the staleness
	// gate is skipped and the week is fetched directly.
	farWeek := s.monday.AddDate(0, 0, 70)
	req := s.weekRequest()
	req.WeekStart = farWeek

	result := s.svc.GetShiftsForWeek(s.ctx, req)
	s.True(result.IsEmpty(), "an unstaffed far-future week reads empty")

	remote := s.factory.WithDate(farWeek)
	remote.ID = uuid.Nil
	s.store.seed("rem-far", *remote)

	result = s.svc.GetShiftsForWeek(s.ctx, req)
	s.Require().True(result.IsSuccess())
	s.Require().Len(result.Data, 1)
	s.Equal("rem-far", result.Data[0].RemoteID)
}

func (s *ShiftServiceTestSuite) TestForceRefreshBypassesFreshness() {
	result := s.svc.GetShiftsForWeek(s.ctx, s.weekRequest())
	s.Require().True(result.IsEmpty())
	calls := s.store.rangeCalls

	remote := s.factory.WithDate(s.monday)
	remote.ID = uuid.Nil
	s.store.seed("rem-1", *remote)

	refreshed := s.svc.ForceRefreshWeek(s.ctx, s.weekRequest())
	s.Require().True(refreshed.IsSuccess())
	s.Greater(s.store.rangeCalls, calls)
}

func (s *ShiftServiceTestSuite) TestSaveShiftIsLocalOnly() {
	shift, err := s.svc.SaveShift(s.ctx, s.saveRequest())
	s.Require().NoError(err)

	s.False(shift.IsSynced)
	s.Empty(shift.RemoteID)
	s.Equal(0, s.store.createCalls, "a plain save must never reach the remote store")

	cached, err := s.repo.GetByID(s.ctx, shift.ID)
	s.Require().NoError(err)
	s.Equal("Morning Shift", cached.Title)
	s.Equal(models.WorkLocationOnSite, cached.WorkLocations["emp-1"], "assigned employees default to on-site")
}

func (s *ShiftServiceTestSuite) TestSaveShiftEditKeepsIdentity() {
	shift, err := s.svc.SaveShift(s.ctx, s.saveRequest())
	s.Require().NoError(err)

	req := s.saveRequest()
	req.ID = &shift.ID
	req.Title = "Evening Shift"
	req.EmployeeIDs = []string{"emp-2"}

	edited, err := s.svc.SaveShift(s.ctx, req)
	s.Require().NoError(err)
	s.Equal(shift.ID, edited.ID)
	s.Equal("Evening Shift", edited.Title)
	s.NotContains(edited.WorkLocations, "emp-1", "unassigned employees lose their location entry")
}

func (s *ShiftServiceTestSuite) TestSaveShiftRejectsInvalidClockRange() {
	req := s.saveRequest()
	req.StartTime = "16:00"
	req.EndTime = "08:00"

	_, err := s.svc.SaveShift(s.ctx, req)
	s.ErrorIs(err, apperrors.ErrInvalidTimeRange)
}

func (s *ShiftServiceTestSuite) TestSaveShiftRejectsPublishedWeek() {
	_, err := s.svc.PublishWeek(s.ctx, "company-1", s.monday)
	s.Require().NoError(err)

	_, err = s.svc.SaveShift(s.ctx, s.saveRequest())
	s.ErrorIs(err, apperrors.ErrEditOnPublishedWeek)
}

func (s *ShiftServiceTestSuite) TestSaveShiftImmediateSyncs() {
	shift, err := s.svc.SaveShiftImmediate(s.ctx, s.saveRequest())
	s.Require().NoError(err)

	s.True(shift.IsSynced)
	s.NotEmpty(shift.RemoteID)
	s.Equal(1, s.store.count())

	cached, err := s.repo.GetByID(s.ctx, shift.ID)
	s.Require().NoError(err)
	s.True(cached.IsSynced)
}

func (s *ShiftServiceTestSuite) TestSaveShiftImmediateDefersOnRemoteFailure() {
	s.store.setDown(true)

	shift, err := s.svc.SaveShiftImmediate(s.ctx, s.saveRequest())
	s.Require().NoError(err, "a remote failure must not fail the local save")

	s.False(shift.IsSynced, "the caller can tell the write was deferred")

	cached, err := s.repo.GetByID(s.ctx, shift.ID)
	s.Require().NoError(err)
	s.Equal("Morning Shift", cached.Title, "the local edit survives the outage")
	s.False(cached.IsSynced)
}

func (s *ShiftServiceTestSuite) TestDeleteDraftPurgesImmediately() {
	shift, err := s.svc.SaveShift(s.ctx, s.saveRequest())
	s.Require().NoError(err)

	s.Require().NoError(s.svc.DeleteShift(s.ctx, shift.ID))

	exists, err := s.repo.ExistsByID(s.ctx, shift.ID)
	s.Require().NoError(err)
	s.False(exists, "a draft that never reached the remote store needs no soft delete")
}

func (s *ShiftServiceTestSuite) TestDeleteSyncedShiftIsSoft() {
	shift := s.factory.Synced("rem-1")
	shift.Date = s.monday
	s.Require().NoError(s.repo.Upsert(s.ctx, shift))

	s.Require().NoError(s.svc.DeleteShift(s.ctx, shift.ID))

	cached, err := s.repo.GetByID(s.ctx, shift.ID)
	s.Require().NoError(err)
	s.True(cached.IsDeleted)
	s.False(cached.IsSynced, "the pending deletion is queued for the next push")
}

func (s *ShiftServiceTestSuite) TestDeleteImmediateRemoteGoneStillSucceeds() {
	shift := s.factory.Synced("rem-ghost")
	shift.Date = s.monday
	s.Require().NoError(s.repo.Upsert(s.ctx, shift))

	s.Require().NoError(s.svc.DeleteShiftImmediate(s.ctx, shift.ID),
		"a record already gone remotely deletes cleanly")

	exists, err := s.repo.ExistsByID(s.ctx, shift.ID)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *ShiftServiceTestSuite) TestDeleteImmediateDefersOnRemoteFailure() {
	shift := s.factory.Synced("rem-1")
	shift.Date = s.monday
	s.store.seed("rem-1", *shift)
	s.Require().NoError(s.repo.Upsert(s.ctx, shift))
	s.store.setDown(true)

	s.Require().NoError(s.svc.DeleteShiftImmediate(s.ctx, shift.ID))

	cached, err := s.repo.GetByID(s.ctx, shift.ID)
	s.Require().NoError(err)
	s.True(cached.IsDeleted, "the deletion stays queued for the next push pass")
}

func (s *ShiftServiceTestSuite) TestPushWeekSyncsCreatesUpdatesAndDeletes() {
	// A new draft, a locally edited synced shift, and a pending deletion.
	draft, err := s.svc.SaveShift(s.ctx, s.saveRequest())
	s.Require().NoError(err)

	edited := s.factory.Synced("rem-edit")
	edited.Date = s.monday
	edited.Title = "Edited Offline"
	edited.MarkDirty()
	s.store.seed("rem-edit", *edited)
	s.Require().NoError(s.repo.Upsert(s.ctx, edited))

	doomed := s.factory.Synced("rem-doomed")
	doomed.Date = s.monday
	doomed.IsDeleted = true
	doomed.MarkDirty()
	s.store.seed("rem-doomed", *doomed)
	s.Require().NoError(s.repo.Upsert(s.ctx, doomed))

	summary, err := s.svc.SyncWeekToRemote(s.ctx, "company-1", s.monday)
	s.Require().NoError(err)
	s.Equal(2, summary.Synced)
	s.Equal(1, summary.Deleted)

	cached, err := s.repo.GetByID(s.ctx, draft.ID)
	s.Require().NoError(err)
	s.True(cached.IsSynced)
	s.NotEmpty(cached.RemoteID)

	exists, err := s.repo.ExistsByID(s.ctx, doomed.ID)
	s.Require().NoError(err)
	s.False(exists, "a confirmed deletion leaves no cache row behind")

	s.Equal(2, s.store.count())
}

func (s *ShiftServiceTestSuite) TestPushWeekIsIdempotent() {
	_, err := s.svc.SaveShift(s.ctx, s.saveRequest())
	s.Require().NoError(err)

	summary, err := s.svc.SyncWeekToRemote(s.ctx, "company-1", s.monday)
	s.Require().NoError(err)
	s.Equal(1, summary.Synced)

	again, err := s.svc.SyncWeekToRemote(s.ctx, "company-1", s.monday)
	s.Require().NoError(err)
	s.Zero(again.Synced)
	s.Zero(again.Deleted)
	s.Equal(1, s.store.createCalls, "a rerun must not double-create remote records")
}

func (s *ShiftServiceTestSuite) TestPushWeekAbortsOnFailureAndResumes() {
	req := s.saveRequest()
	_, err := s.svc.SaveShift(s.ctx, req)
	s.Require().NoError(err)
	req.Date = s.monday.AddDate(0, 0, 3)
	_, err = s.svc.SaveShift(s.ctx, req)
	s.Require().NoError(err)

	s.store.setDown(true)
	summary, err := s.svc.SyncWeekToRemote(s.ctx, "company-1", s.monday)
	s.Require().Error(err)
	s.Zero(summary.Synced, "the first failure aborts the pass")

	s.store.setDown(false)
	summary, err = s.svc.SyncWeekToRemote(s.ctx, "company-1", s.monday)
	s.Require().NoError(err)
	s.Equal(2, summary.Synced)
	s.Equal(2, s.store.count(), "resuming creates each record exactly once")
}

func (s *ShiftServiceTestSuite) TestRetentionCutoffRoundsToWeekStart() {
	now := time.Date(2026, time.June, 18, 10, 0, 0, 0, time.UTC)
	horizon := planner.WeekStart(now.AddDate(0, 0, -90))

	kept := s.factory.WithDate(horizon)
	purged := s.factory.WithDate(horizon.AddDate(0, 0, -1))
	s.Require().NoError(s.repo.Upsert(s.ctx, kept))
	s.Require().NoError(s.repo.Upsert(s.ctx, purged))

	n, err := s.svc.DeleteOldCachedShifts(s.ctx, now)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	exists, err := s.repo.ExistsByID(s.ctx, kept.ID)
	s.Require().NoError(err)
	s.True(exists, "the week containing the horizon is kept whole")
}
