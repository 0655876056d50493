package service

import (
	"context"
	"errors"
	"time"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/planner"
	"shift-planner-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CoverageService evaluates how completely a department's staffing plan
// fills its operating hours. The analysis itself is the pure
// planner.AnalyzeCoverage; this service only fetches its inputs.
type CoverageService struct {
	deptRepo  *repository.DepartmentRepository
	shiftRepo *repository.ShiftRepository
	policy    planner.CoveragePolicy
}

// NewCoverageService creates a new coverage service
func NewCoverageService(
	deptRepo *repository.DepartmentRepository,
	shiftRepo *repository.ShiftRepository,
	policy planner.CoveragePolicy,
) *CoverageService {
	return &CoverageService{
		deptRepo:  deptRepo,
		shiftRepo: shiftRepo,
		policy:    policy,
	}
}

// DayCoverage is the coverage analysis of one department day
type DayCoverage struct {
	DepartmentID   string                  `json:"department_id"`
	DepartmentName string                  `json:"department_name"`
	Date           string                  `json:"date"`
	Closed         bool                    `json:"closed"`
	Report         *planner.CoverageReport `json:"report,omitempty"`
}

// AnalyzeDay runs the coverage analysis for one department and date. A
// department closed that weekday reports Closed with no analysis.
func (s *CoverageService) AnalyzeDay(ctx context.Context, departmentID uuid.UUID, date time.Time) (*DayCoverage, error) {
	department, err := s.deptRepo.GetByID(ctx, departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, err
	}

	day := dateOnly(date)
	result := &DayCoverage{
		DepartmentID:   department.ID.String(),
		DepartmentName: department.Name,
		Date:           day.Format("2006-01-02"),
	}

	hours, open := department.HoursFor(day.Weekday())
	if !open {
		result.Closed = true
		return result, nil
	}

	shifts, err := s.shiftRepo.GetVisibleByDepartmentDate(ctx, department.ID.String(), day)
	if err != nil {
		return nil, err
	}

	report := planner.AnalyzeCoverage(hours, shifts, s.policy)
	result.Report = &report
	return result, nil
}

// AnalyzeShifts runs the pure analysis over an explicit shift list, for
// callers holding an unsaved draft plan.
func (s *CoverageService) AnalyzeShifts(hours models.DayHours, shifts []models.Shift) planner.CoverageReport {
	return planner.AnalyzeCoverage(hours, shifts, s.policy)
}
