package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
)

// errRemoteDown is the transport failure the fakes simulate
var errRemoteDown = errors.New("connection refused")

// fakeShiftStore is an in-process stand-in for the remote shift store.
// Records live in a map keyed by remote id; flipping down makes every
// operation fail the way the HTTP client would.
type fakeShiftStore struct {
	mu      sync.Mutex
	records map[string]models.Shift
	nextID  int
	down    bool

	createCalls int
	updateCalls int
	deleteCalls int
	rangeCalls  int
}

func newFakeShiftStore() *fakeShiftStore {
	return &fakeShiftStore{records: make(map[string]models.Shift)}
}

func (f *fakeShiftStore) setDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down = down
}

func (f *fakeShiftStore) seed(remoteID string, shift models.Shift) {
	f.mu.Lock()
	defer f.mu.Unlock()
	shift.RemoteID = remoteID
	shift.IsSynced = true
	f.records[remoteID] = shift
}

func (f *fakeShiftStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

func (f *fakeShiftStore) Create(ctx context.Context, shift *models.Shift) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.down {
		return "", &apperrors.RemoteError{Op: "create shift", Cause: errRemoteDown}
	}
	f.nextID++
	remoteID := fmt.Sprintf("rem-%d", f.nextID)
	stored := *shift
	stored.RemoteID = remoteID
	stored.IsSynced = true
	f.records[remoteID] = stored
	return remoteID, nil
}

func (f *fakeShiftStore) Update(ctx context.Context, shift *models.Shift) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.down {
		return &apperrors.RemoteError{Op: "update shift", Cause: errRemoteDown}
	}
	if _, ok := f.records[shift.RemoteID]; !ok {
		return apperrors.ErrRemoteNotFound
	}
	stored := *shift
	stored.IsSynced = true
	f.records[shift.RemoteID] = stored
	return nil
}

func (f *fakeShiftStore) Delete(ctx context.Context, remoteID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.down {
		return &apperrors.RemoteError{Op: "delete shift", Cause: errRemoteDown}
	}
	if _, ok := f.records[remoteID]; !ok {
		return apperrors.ErrRemoteNotFound
	}
	delete(f.records, remoteID)
	return nil
}

func (f *fakeShiftStore) GetByID(ctx context.Context, remoteID string) (*models.Shift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return nil, &apperrors.RemoteError{Op: "get shift", Cause: errRemoteDown}
	}
	shift, ok := f.records[remoteID]
	if !ok {
		return nil, apperrors.ErrRemoteNotFound
	}
	return &shift, nil
}

func (f *fakeShiftStore) GetRangeByCompany(ctx context.Context, companyID string, from, to time.Time) ([]models.Shift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rangeCalls++
	if f.down {
		return nil, &apperrors.RemoteError{Op: "list shifts", Cause: errRemoteDown}
	}
	var out []models.Shift
	for _, shift := range f.records {
		if shift.CompanyID == companyID && !shift.Date.Before(from) && !shift.Date.After(to) {
			out = append(out, shift)
		}
	}
	return out, nil
}

// fakeAbsenceStore mirrors fakeShiftStore for the absence contract
type fakeAbsenceStore struct {
	mu      sync.Mutex
	records map[string]models.Absence
	nextID  int
	down    bool

	createCalls int
	deleteCalls int
}

func newFakeAbsenceStore() *fakeAbsenceStore {
	return &fakeAbsenceStore{records: make(map[string]models.Absence)}
}

func (f *fakeAbsenceStore) setDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down = down
}

func (f *fakeAbsenceStore) seed(remoteID string, absence models.Absence) {
	f.mu.Lock()
	defer f.mu.Unlock()
	absence.RemoteID = remoteID
	absence.IsSynced = true
	f.records[remoteID] = absence
}

func (f *fakeAbsenceStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

func (f *fakeAbsenceStore) Create(ctx context.Context, absence *models.Absence) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.down {
		return "", &apperrors.RemoteError{Op: "create absence", Cause: errRemoteDown}
	}
	f.nextID++
	remoteID := fmt.Sprintf("abs-%d", f.nextID)
	stored := *absence
	stored.RemoteID = remoteID
	stored.IsSynced = true
	f.records[remoteID] = stored
	return remoteID, nil
}

func (f *fakeAbsenceStore) Update(ctx context.Context, absence *models.Absence) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return &apperrors.RemoteError{Op: "update absence", Cause: errRemoteDown}
	}
	if _, ok := f.records[absence.RemoteID]; !ok {
		return apperrors.ErrRemoteNotFound
	}
	stored := *absence
	stored.IsSynced = true
	f.records[absence.RemoteID] = stored
	return nil
}

func (f *fakeAbsenceStore) Delete(ctx context.Context, remoteID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.down {
		return &apperrors.RemoteError{Op: "delete absence", Cause: errRemoteDown}
	}
	if _, ok := f.records[remoteID]; !ok {
		return apperrors.ErrRemoteNotFound
	}
	delete(f.records, remoteID)
	return nil
}

func (f *fakeAbsenceStore) GetByCompany(ctx context.Context, companyID, employeeID string) ([]models.Absence, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return nil, &apperrors.RemoteError{Op: "list absences", Cause: errRemoteDown}
	}
	var out []models.Absence
	for _, absence := range f.records {
		if absence.CompanyID != companyID {
			continue
		}
		if employeeID != "" && absence.EmployeeID != employeeID {
			continue
		}
		out = append(out, absence)
	}
	return out, nil
}

// fakeEmployeeStore serves a fixed roster per company
type fakeEmployeeStore struct {
	mu      sync.Mutex
	rosters map[string][]models.Employee
	down    bool
	calls   int
}

func newFakeEmployeeStore() *fakeEmployeeStore {
	return &fakeEmployeeStore{rosters: make(map[string][]models.Employee)}
}

func (f *fakeEmployeeStore) setDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down = down
}

func (f *fakeEmployeeStore) setRoster(companyID string, roster []models.Employee) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rosters[companyID] = roster
}

func (f *fakeEmployeeStore) GetByCompany(ctx context.Context, companyID string) ([]models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.down {
		return nil, &apperrors.RemoteError{Op: "list employees", Cause: errRemoteDown}
	}
	return f.rosters[companyID], nil
}
