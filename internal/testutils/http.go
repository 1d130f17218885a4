package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	return &HTTPTestSuite{
		Router: router,
	}
}

// MakeRequest creates and executes an HTTP request for testing
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reqBody io.Reader

	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)

	return recorder
}

// Envelope mirrors the API response wrapper for assertions. Data stays raw so
// each test can unmarshal it into the expected payload type.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// ParseEnvelope parses the response envelope
func ParseEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) Envelope {
	var env Envelope
	err := json.Unmarshal(recorder.Body.Bytes(), &env)
	require.NoError(t, err)
	return env
}

// AssertSuccessEnvelope asserts status and a success envelope, unmarshaling
// data into target when given
func AssertSuccessEnvelope(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) Envelope {
	assert.Equal(t, expectedStatus, recorder.Code)
	env := ParseEnvelope(t, recorder)
	assert.True(t, env.Success)
	assert.Empty(t, env.Error)

	if target != nil {
		require.NoError(t, json.Unmarshal(env.Data, target))
	}
	return env
}

// AssertErrorEnvelope asserts status and a failure envelope containing the
// expected message fragment
func AssertErrorEnvelope(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code)
	env := ParseEnvelope(t, recorder)
	assert.False(t, env.Success)
	if expectedMessage != "" {
		assert.Contains(t, env.Error, expectedMessage)
	}
}

// ParseJSONResponse parses a raw JSON response into target struct
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	err := json.Unmarshal(recorder.Body.Bytes(), target)
	require.NoError(t, err)
}
