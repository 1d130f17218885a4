package handlers

import (
	"net/http"

	apperrors "communication-tracker-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// Response is the uniform API envelope. Success responses carry data and
// optionally a message; failures carry error and never data.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// respondData writes a success envelope with a payload
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Success: true, Data: data})
}

// respondCreated writes a success envelope with a payload and a message
func respondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// respondMessage writes a success envelope with only a message
func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message})
}

// respondError maps a service error to a status code and writes the failure
// envelope. Anything not in the application error taxonomy is a store failure.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsAlreadyExists(err):
		status = http.StatusConflict
	case apperrors.IsConfiguration(err):
		status = http.StatusInternalServerError
	}
	c.JSON(status, Response{Success: false, Error: err.Error()})
}

// respondBadRequest writes a failure envelope for malformed input
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Error: message})
}
