package service_test

import (
	"testing"
	"time"

	"communication-tracker-backend/internal/cadence"
	"communication-tracker-backend/internal/database/models"
	apperrors "communication-tracker-backend/internal/errors"
	"communication-tracker-backend/internal/logger"
	"communication-tracker-backend/internal/mocks"
	"communication-tracker-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CadenceServiceTestSuite defines the test suite for CadenceService
type CadenceServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCompanyRepo *mocks.MockCompanyRepositoryInterface
	mockCommRepo    *mocks.MockCommunicationRepositoryInterface
	cadenceService  *service.CadenceService
}

// SetupTest sets up the test suite
func (suite *CadenceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCompanyRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.mockCommRepo = mocks.NewMockCommunicationRepositoryInterface(suite.ctrl)

	suite.cadenceService = service.NewCadenceService(suite.mockCompanyRepo, suite.mockCommRepo, logger.WithComponent("cadence-test"))
}

// TearDownTest cleans up after each test
func (suite *CadenceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// newCadenceCompany builds a company with a fixed creation anchor
func newCadenceCompany(name string, periodicity int, createdAt time.Time) models.Company {
	company := models.Company{
		CompanyName: name,
		Email:       name + "@example.test",
		Periodicity: periodicity,
	}
	company.ID = uuid.New()
	company.CreatedAt = createdAt
	return company
}

// TestDashboardOverdueCompany tests that a stale history classifies as overdue
func (suite *CadenceServiceTestSuite) TestDashboardOverdueCompany() {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	company := newCadenceCompany("acme", 7, now.AddDate(0, 0, -60))

	comm := models.Communication{
		CompanyID:         company.ID,
		CompanyName:       "acme",
		CommunicationType: "Email",
		CommunicationDate: now.AddDate(0, 0, -10),
	}
	comm.ID = uuid.New()

	suite.mockCompanyRepo.EXPECT().
		GetAll().
		Return([]models.Company{company}, nil).
		Times(1)

	suite.mockCommRepo.EXPECT().
		GetChronological().
		Return([]models.Communication{comm}, nil).
		Times(1)

	response, err := suite.cadenceService.Dashboard(now)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Companies, 1)

	row := response.Companies[0]
	assert.Equal(suite.T(), cadence.StatusOverdue, row.Status)
	assert.Len(suite.T(), row.LastContacts, 1)
	assert.Equal(suite.T(), comm.ID, row.LastContacts[0].ID)
	assert.NotNil(suite.T(), row.NextDue)
	assert.False(suite.T(), row.NextDue.Scheduled, "due date derived from periodicity")
	assert.Equal(suite.T(), "2024-03-17", row.NextDue.DueDate)
	assert.Equal(suite.T(), 1, response.Summary.Overdue)
	assert.Equal(suite.T(), 0, response.Summary.DueToday)
}

// TestDashboardScheduledFutureCommunication tests that an explicitly booked
// future communication drives the due date
func (suite *CadenceServiceTestSuite) TestDashboardScheduledFutureCommunication() {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	company := newCadenceCompany("acme", 7, now.AddDate(0, 0, -60))

	comm := models.Communication{
		CompanyID:         company.ID,
		CompanyName:       "acme",
		CommunicationType: "Phone Call",
		CommunicationDate: now.AddDate(0, 0, 3),
	}
	comm.ID = uuid.New()

	suite.mockCompanyRepo.EXPECT().
		GetAll().
		Return([]models.Company{company}, nil).
		Times(1)

	suite.mockCommRepo.EXPECT().
		GetChronological().
		Return([]models.Communication{comm}, nil).
		Times(1)

	response, err := suite.cadenceService.Dashboard(now)

	assert.NoError(suite.T(), err)
	row := response.Companies[0]
	assert.Equal(suite.T(), cadence.StatusScheduled, row.Status)
	assert.Empty(suite.T(), row.LastContacts)
	assert.True(suite.T(), row.NextDue.Scheduled)
	assert.Equal(suite.T(), "Phone Call", row.NextDue.CommunicationType)
	assert.Equal(suite.T(), "2024-03-23", row.NextDue.DueDate)
}

// TestDashboardUnconfiguredCompany tests that zero periodicity and no history
// yields an unknown status rather than an error
func (suite *CadenceServiceTestSuite) TestDashboardUnconfiguredCompany() {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	company := newCadenceCompany("acme", 0, now.AddDate(0, 0, -60))

	suite.mockCompanyRepo.EXPECT().
		GetAll().
		Return([]models.Company{company}, nil).
		Times(1)

	suite.mockCommRepo.EXPECT().
		GetChronological().
		Return([]models.Communication{}, nil).
		Times(1)

	response, err := suite.cadenceService.Dashboard(now)

	assert.NoError(suite.T(), err)
	row := response.Companies[0]
	assert.Equal(suite.T(), cadence.StatusUnknown, row.Status)
	assert.Nil(suite.T(), row.NextDue)
	assert.Equal(suite.T(), 0, response.Summary.Overdue)
}

// TestDashboardEmptyHistoryUsesCreationAnchor tests the synthetic due date for
// a company never contacted
func (suite *CadenceServiceTestSuite) TestDashboardEmptyHistoryUsesCreationAnchor() {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	company := newCadenceCompany("acme", 14, time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC))

	suite.mockCompanyRepo.EXPECT().
		GetAll().
		Return([]models.Company{company}, nil).
		Times(1)

	suite.mockCommRepo.EXPECT().
		GetChronological().
		Return([]models.Communication{}, nil).
		Times(1)

	response, err := suite.cadenceService.Dashboard(now)

	assert.NoError(suite.T(), err)
	row := response.Companies[0]
	assert.Equal(suite.T(), cadence.StatusOverdue, row.Status)
	assert.Equal(suite.T(), "2024-03-15", row.NextDue.DueDate)
}

// TestNotificationsGrouping tests the overdue / due-today partition and counts
func (suite *CadenceServiceTestSuite) TestNotificationsGrouping() {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)

	overdue := newCadenceCompany("overdue-co", 7, now.AddDate(0, 0, -60))
	dueToday := newCadenceCompany("due-co", 7, now.AddDate(0, 0, -60))
	scheduled := newCadenceCompany("fresh-co", 7, now.AddDate(0, 0, -60))

	comms := []models.Communication{
		{CompanyID: overdue.ID, CommunicationType: "Email", CommunicationDate: now.AddDate(0, 0, -10)},
		{CompanyID: dueToday.ID, CommunicationType: "Email", CommunicationDate: now.AddDate(0, 0, -7)},
		{CompanyID: scheduled.ID, CommunicationType: "Email", CommunicationDate: now.AddDate(0, 0, -1)},
	}

	suite.mockCompanyRepo.EXPECT().
		GetAll().
		Return([]models.Company{overdue, dueToday, scheduled}, nil).
		Times(1)

	suite.mockCommRepo.EXPECT().
		GetChronological().
		Return(comms, nil).
		Times(1)

	response, err := suite.cadenceService.Notifications(now)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Overdue, 1)
	assert.Len(suite.T(), response.DueToday, 1)
	assert.Equal(suite.T(), "overdue-co", response.Overdue[0].CompanyName)
	assert.Equal(suite.T(), 3, response.Overdue[0].OverdueDays)
	assert.Equal(suite.T(), "due-co", response.DueToday[0].CompanyName)
	assert.Equal(suite.T(), cadence.Summary{Overdue: 1, DueToday: 1}, response.Summary)
}

// TestNotificationsEmptyStore tests the empty-but-valid shape
func (suite *CadenceServiceTestSuite) TestNotificationsEmptyStore() {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)

	suite.mockCompanyRepo.EXPECT().
		GetAll().
		Return([]models.Company{}, nil).
		Times(1)

	suite.mockCommRepo.EXPECT().
		GetChronological().
		Return([]models.Communication{}, nil).
		Times(1)

	response, err := suite.cadenceService.Notifications(now)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response.Overdue)
	assert.NotNil(suite.T(), response.DueToday)
	assert.Empty(suite.T(), response.Overdue)
	assert.Empty(suite.T(), response.DueToday)
}

// TestDashboardNegativePeriodicityPropagates tests that a corrupt configured
// periodicity surfaces as a configuration error
func (suite *CadenceServiceTestSuite) TestDashboardNegativePeriodicityPropagates() {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	company := newCadenceCompany("acme", -3, now.AddDate(0, 0, -60))

	suite.mockCompanyRepo.EXPECT().
		GetAll().
		Return([]models.Company{company}, nil).
		Times(1)

	suite.mockCommRepo.EXPECT().
		GetChronological().
		Return([]models.Communication{}, nil).
		Times(1)

	response, err := suite.cadenceService.Dashboard(now)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPeriodicity)
}

// TestCadenceServiceTestSuite runs the test suite
func TestCadenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CadenceServiceTestSuite))
}
