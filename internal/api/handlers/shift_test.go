package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"shift-planner-backend/internal/database/models"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/planner"
	"shift-planner-backend/internal/repository"
	"shift-planner-backend/internal/service"
	"shift-planner-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// unreachableShiftStore fails every remote operation the way the HTTP
// client does when the store is offline.
type unreachableShiftStore struct{}

func (unreachableShiftStore) Create(ctx context.Context, shift *models.Shift) (string, error) {
	return "", &apperrors.RemoteError{Op: "create shift"}
}

func (unreachableShiftStore) Update(ctx context.Context, shift *models.Shift) error {
	return &apperrors.RemoteError{Op: "update shift"}
}

func (unreachableShiftStore) Delete(ctx context.Context, remoteID string) error {
	return &apperrors.RemoteError{Op: "delete shift"}
}

func (unreachableShiftStore) GetByID(ctx context.Context, remoteID string) (*models.Shift, error) {
	return nil, &apperrors.RemoteError{Op: "get shift"}
}

func (unreachableShiftStore) GetRangeByCompany(ctx context.Context, companyID string, from, to time.Time) ([]models.Shift, error) {
	return nil, &apperrors.RemoteError{Op: "list shifts"}
}

type ShiftHandlerTestSuite struct {
	suite.Suite
	http   *testutils.HTTPTestSuite
	db     *gorm.DB
	monday time.Time
}

func (s *ShiftHandlerTestSuite) SetupTest() {
	s.db = testutils.NewTestDB(s.T())
	s.monday = planner.WeekStart(time.Now())

	svc := service.NewShiftService(
		repository.NewShiftRepository(s.db),
		repository.NewWeeklyShiftRepository(s.db),
		repository.NewDepartmentRepository(s.db),
		unreachableShiftStore{},
		planner.WindowPolicy{ManagerWeeksBack: 4, ManagerWeeksAhead: 8, EmployeeWeeksBack: 2, EmployeeWeeksAhead: 1},
		time.Minute,
		90,
		validator.New(),
	)
	handler := NewShiftHandler(svc)

	s.http = testutils.SetupHTTPTest()
	s.http.Router.GET("/shifts/week/:weekStart", handler.GetWeek)
	s.http.Router.POST("/shifts", handler.Save)
	s.http.Router.DELETE("/shifts/:id", handler.Delete)
	s.http.Router.POST("/shifts/week/:weekStart/sync", handler.PushWeek)
	s.http.Router.GET("/weeks/:weekStart", handler.GetWeeklyShift)
	s.http.Router.POST("/weeks/:weekStart/publish", handler.PublishWeek)
}

func TestShiftHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftHandlerTestSuite))
}

func (s *ShiftHandlerTestSuite) saveBody() map[string]interface{} {
	return map[string]interface{}{
		"title":         "Morning Shift",
		"company_id":    "company-1",
		"department_id": "dept-1",
		"date":          s.monday.AddDate(0, 0, 2).Format(time.RFC3339),
		"start_time":    "08:00",
		"end_time":      "16:00",
		"employee_ids":  []string{"emp-1"},
	}
}

func (s *ShiftHandlerTestSuite) TestSaveShift() {
	recorder := s.http.MakeRequest(http.MethodPost, "/shifts", s.saveBody())

	var shift models.Shift
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &shift)
	s.Equal("Morning Shift", shift.Title)
	s.False(shift.IsSynced)
}

func (s *ShiftHandlerTestSuite) TestSaveShiftInvalidClockIs400() {
	body := s.saveBody()
	body["start_time"] = "16:00"
	body["end_time"] = "08:00"

	recorder := s.http.MakeRequest(http.MethodPost, "/shifts", body)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "invalid time range")
}

func (s *ShiftHandlerTestSuite) TestSaveShiftOnPublishedWeekIs409() {
	recorder := s.http.MakeRequest(http.MethodPost,
		"/weeks/"+s.monday.Format("2006-01-02")+"/publish?companyId=company-1", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)

	recorder = s.http.MakeRequest(http.MethodPost, "/shifts", s.saveBody())
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusConflict, "published")
}

func (s *ShiftHandlerTestSuite) TestGetWeekBadDateIs400() {
	recorder := s.http.MakeRequest(http.MethodGet, "/shifts/week/notadate", nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "invalid week start date")
}

func (s *ShiftHandlerTestSuite) TestGetWeekWithoutCompanyIsEmptyStatus() {
	recorder := s.http.MakeRequest(http.MethodGet, "/shifts/week/"+s.monday.Format("2006-01-02"), nil)

	var resp struct {
		Status service.Status `json:"status"`
	}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &resp)
	s.Equal(service.StatusEmpty, resp.Status)
}

func (s *ShiftHandlerTestSuite) TestGetWeekRemoteDownIs502() {
	recorder := s.http.MakeRequest(http.MethodGet,
		"/shifts/week/"+s.monday.Format("2006-01-02")+"?companyId=company-1", nil)

	var resp struct {
		Status service.Status `json:"status"`
		Error  string         `json:"error"`
	}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusBadGateway, &resp)
	s.Equal(service.StatusError, resp.Status)
	s.NotEmpty(resp.Error)
}

func (s *ShiftHandlerTestSuite) TestDeleteInvalidIDIs400() {
	recorder := s.http.MakeRequest(http.MethodDelete, "/shifts/notauuid", nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "invalid shift id")
}

func (s *ShiftHandlerTestSuite) TestDeleteUnknownShiftIs404() {
	recorder := s.http.MakeRequest(http.MethodDelete, "/shifts/"+uuid.NewString(), nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusNotFound, "shift not found")
}

func (s *ShiftHandlerTestSuite) TestPushWeekRequiresCompany() {
	recorder := s.http.MakeRequest(http.MethodPost,
		"/shifts/week/"+s.monday.Format("2006-01-02")+"/sync", nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "companyId is required")
}

func (s *ShiftHandlerTestSuite) TestPublishNonMondayIs400() {
	day := s.monday.AddDate(0, 0, 2).Format("2006-01-02")
	recorder := s.http.MakeRequest(http.MethodPost, "/weeks/"+day+"/publish?companyId=company-1", nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "Monday")
}

func (s *ShiftHandlerTestSuite) TestGetUnknownWeeklyShiftIs404() {
	recorder := s.http.MakeRequest(http.MethodGet,
		"/weeks/"+s.monday.Format("2006-01-02")+"?companyId=company-1", nil)
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusNotFound, "weekly shift not found")
}
