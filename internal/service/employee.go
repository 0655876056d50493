package service

import (
	"context"
	"time"

	"shift-planner-backend/internal/database/models"
	"shift-planner-backend/internal/logger"
	"shift-planner-backend/internal/repository"
	"shift-planner-backend/internal/remote"
	"shift-planner-backend/internal/syncer"
)

// EmployeeService serves the read-only employee mirror. Employee records
// are never edited on the device, so there is no push path; the cache is
// a snapshot of the remote roster refreshed through the sync manager.
type EmployeeService struct {
	repo   *repository.EmployeeRepository
	remote remote.EmployeeStore
	sync   *syncer.Manager
	log    *logger.Logger
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(
	repo *repository.EmployeeRepository,
	remoteStore remote.EmployeeStore,
	staleness time.Duration,
) *EmployeeService {
	s := &EmployeeService{
		repo:   repo,
		remote: remoteStore,
		log:    logger.NewWithComponent("employee-service"),
	}
	s.sync = syncer.NewManager("employees", staleness, s.refresh)
	return s
}

// GetEmployees serves the cached roster of a company, refreshing it
// first when stale. A refresh failure is masked while the cache can
// still serve; an empty cache plus a failed refresh is an error, not an
// empty roster.
func (s *EmployeeService) GetEmployees(ctx context.Context, companyID string) Result[[]models.Employee] {
	if companyID == "" {
		return Empty[[]models.Employee]()
	}

	syncErr := s.sync.SyncIfNeeded(ctx, companyID, "")

	employees, err := s.repo.GetByCompany(ctx, companyID)
	if err != nil {
		return Failure[[]models.Employee](err)
	}
	if len(employees) > 0 {
		return Success(employees)
	}
	if syncErr != nil {
		return Failure[[]models.Employee](syncErr)
	}
	return Empty[[]models.Employee]()
}

// RefreshEmployees forces a roster fetch and re-reads the cache
func (s *EmployeeService) RefreshEmployees(ctx context.Context, companyID string) Result[[]models.Employee] {
	if companyID == "" {
		return Empty[[]models.Employee]()
	}
	if err := s.sync.ForceSync(ctx, companyID, ""); err != nil {
		return Failure[[]models.Employee](err)
	}

	employees, err := s.repo.GetByCompany(ctx, companyID)
	if err != nil {
		return Failure[[]models.Employee](err)
	}
	if len(employees) == 0 {
		return Empty[[]models.Employee]()
	}
	return Success(employees)
}

func (s *EmployeeService) refresh(ctx context.Context, companyID, _ string) error {
	fetched, err := s.remote.GetByCompany(ctx, companyID)
	if err != nil {
		return err
	}
	return s.repo.MergeRemote(ctx, companyID, fetched)
}
