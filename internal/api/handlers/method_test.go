package handlers

import (
	"net/http"
	"testing"

	apperrors "communication-tracker-backend/internal/errors"
	"communication-tracker-backend/internal/mocks"
	"communication-tracker-backend/internal/service"
	"communication-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MethodHandlerTestSuite defines the test suite for MethodHandler
type MethodHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockMethodService *mocks.MockMethodServiceInterface
	handler           *MethodHandler
	httpSuite         *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *MethodHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMethodService = mocks.NewMockMethodServiceInterface(suite.ctrl)

	suite.handler = NewMethodHandler(suite.mockMethodService)
	suite.httpSuite = testutils.SetupHTTPTest()

	methods := suite.httpSuite.Router.Group("/api/methods")
	{
		methods.POST("", suite.handler.CreateMethod)
		methods.GET("", suite.handler.GetMethods)
		methods.PUT("/:id", suite.handler.UpdateMethod)
		methods.DELETE("/:id", suite.handler.DeleteMethod)
	}
}

// TearDownTest cleans up after each test
func (suite *MethodHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateMethod tests adding a method to the catalog
func (suite *MethodHandlerTestSuite) TestCreateMethod() {
	requestBody := map[string]interface{}{
		"name":        "LinkedIn Post",
		"description": "Post on the company's LinkedIn page",
		"sequence":    1,
		"mandatory":   true,
	}

	expectedResponse := &service.MethodResponse{
		ID:        uuid.New(),
		Name:      "LinkedIn Post",
		Sequence:  1,
		Mandatory: true,
	}

	suite.mockMethodService.EXPECT().
		Create(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/methods", requestBody)

	var response service.MethodResponse
	env := testutils.AssertSuccessEnvelope(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "Communication method added successfully!", env.Message)
	assert.Equal(suite.T(), "LinkedIn Post", response.Name)
}

// TestGetMethods tests listing the catalog in cadence order
func (suite *MethodHandlerTestSuite) TestGetMethods() {
	methods := []service.MethodResponse{
		{ID: uuid.New(), Name: "LinkedIn Post", Sequence: 1},
		{ID: uuid.New(), Name: "Email", Sequence: 3},
	}

	suite.mockMethodService.EXPECT().
		GetAll().
		Return(methods, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/methods", nil)

	var response []service.MethodResponse
	testutils.AssertSuccessEnvelope(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response, 2)
	assert.Equal(suite.T(), 1, response[0].Sequence)
}

// TestUpdateMethodNotFound tests the 404 mapping on update
func (suite *MethodHandlerTestSuite) TestUpdateMethodNotFound() {
	id := uuid.New()
	requestBody := map[string]interface{}{
		"name":        "Phone Call",
		"description": "Call the primary contact",
		"sequence":    2,
		"mandatory":   false,
	}

	suite.mockMethodService.EXPECT().
		Update(id, gomock.Any()).
		Return(nil, apperrors.ErrMethodNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/methods/"+id.String(), requestBody)

	testutils.AssertErrorEnvelope(suite.T(), recorder, http.StatusNotFound, "method not found")
}

// TestDeleteMethod tests deleting a method
func (suite *MethodHandlerTestSuite) TestDeleteMethod() {
	id := uuid.New()

	suite.mockMethodService.EXPECT().
		Delete(id).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/methods/"+id.String(), nil)

	env := testutils.AssertSuccessEnvelope(suite.T(), recorder, http.StatusOK, nil)
	assert.Equal(suite.T(), "Communication method deleted successfully!", env.Message)
}

// TestMethodHandlerTestSuite runs the test suite
func TestMethodHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MethodHandlerTestSuite))
}
