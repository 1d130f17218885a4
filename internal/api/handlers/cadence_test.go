package handlers

import (
	"net/http"
	"testing"

	"communication-tracker-backend/internal/cadence"
	"communication-tracker-backend/internal/mocks"
	"communication-tracker-backend/internal/service"
	"communication-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CadenceHandlerTestSuite defines the test suite for CadenceHandler
type CadenceHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockCadenceService *mocks.MockCadenceServiceInterface
	handler            *CadenceHandler
	httpSuite          *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *CadenceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCadenceService = mocks.NewMockCadenceServiceInterface(suite.ctrl)

	suite.handler = NewCadenceHandler(suite.mockCadenceService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.GET("/api/dashboard", suite.handler.GetDashboard)
	suite.httpSuite.Router.GET("/api/notifications", suite.handler.GetNotifications)
}

// TearDownTest cleans up after each test
func (suite *CadenceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetDashboard tests the dashboard endpoint
func (suite *CadenceHandlerTestSuite) TestGetDashboard() {
	expected := &service.DashboardResponse{
		Companies: []service.DashboardCompany{
			{
				ID:          uuid.New(),
				CompanyName: "Acme Corp",
				Periodicity: 7,
				Status:      cadence.StatusOverdue,
				NextDue:     &service.DueItem{DueDate: "2024-03-17"},
			},
		},
		Summary: cadence.Summary{Overdue: 1},
	}

	suite.mockCadenceService.EXPECT().
		Dashboard(gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/dashboard", nil)

	var response service.DashboardResponse
	testutils.AssertSuccessEnvelope(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Companies, 1)
	assert.Equal(suite.T(), cadence.StatusOverdue, response.Companies[0].Status)
	assert.Equal(suite.T(), 1, response.Summary.Overdue)
}

// TestGetNotifications tests the notifications endpoint
func (suite *CadenceHandlerTestSuite) TestGetNotifications() {
	expected := &service.NotificationsResponse{
		Overdue: []service.NotificationCompany{
			{ID: uuid.New(), CompanyName: "Acme Corp", OverdueDays: 3},
		},
		DueToday: []service.NotificationCompany{},
		Summary:  cadence.Summary{Overdue: 1},
	}

	suite.mockCadenceService.EXPECT().
		Notifications(gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/notifications", nil)

	var response service.NotificationsResponse
	testutils.AssertSuccessEnvelope(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Overdue, 1)
	assert.Equal(suite.T(), 3, response.Overdue[0].OverdueDays)
	assert.Empty(suite.T(), response.DueToday)
}

// TestGetDashboardServiceError tests the 500 mapping
func (suite *CadenceHandlerTestSuite) TestGetDashboardServiceError() {
	suite.mockCadenceService.EXPECT().
		Dashboard(gomock.Any()).
		Return(nil, assert.AnError).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/dashboard", nil)

	testutils.AssertErrorEnvelope(suite.T(), recorder, http.StatusInternalServerError, "")
}

// TestCadenceHandlerTestSuite runs the test suite
func TestCadenceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CadenceHandlerTestSuite))
}
