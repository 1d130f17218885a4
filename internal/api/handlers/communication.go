package handlers

import (
	"net/http"

	"communication-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommunicationHandler handles HTTP requests for the communication log
type CommunicationHandler struct {
	service service.CommunicationServiceInterface
}

// NewCommunicationHandler creates a new communication handler
func NewCommunicationHandler(service service.CommunicationServiceInterface) *CommunicationHandler {
	return &CommunicationHandler{service: service}
}

// CreateCommunication handles POST /api/communications
// @Summary Log a communication
// @Description Record a past or future communication for a company
// @Tags communications
// @Accept json
// @Produce json
// @Param communication body service.CreateCommunicationRequest true "Communication data"
// @Success 201 {object} Response{data=service.CommunicationResponse} "Successfully logged communication"
// @Failure 400 {object} Response "Invalid request body"
// @Failure 404 {object} Response "Company not found"
// @Failure 500 {object} Response "Internal server error"
// @Router /communications [post]
func (h *CommunicationHandler) CreateCommunication(c *gin.Context) {
	var req service.CreateCommunicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	communication, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Communication logged successfully!", communication)
}

// GetCommunications handles GET /api/communications
// @Summary List all communications
// @Description Get the full communication log, newest entries first
// @Tags communications
// @Produce json
// @Success 200 {object} Response{data=[]service.CommunicationResponse} "Successfully retrieved communications"
// @Failure 500 {object} Response "Internal server error"
// @Router /communications [get]
func (h *CommunicationHandler) GetCommunications(c *gin.Context) {
	communications, err := h.service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, communications)
}

// UpdateCommunication handles PUT /api/communications/:id
// @Summary Update a communication
// @Description Replace a log entry's type, date and notes
// @Tags communications
// @Accept json
// @Produce json
// @Param id path string true "Communication ID (UUID)"
// @Param communication body service.UpdateCommunicationRequest true "Communication data"
// @Success 200 {object} Response{data=service.CommunicationResponse} "Successfully updated communication"
// @Failure 400 {object} Response "Invalid request body"
// @Failure 404 {object} Response "Communication not found"
// @Failure 500 {object} Response "Internal server error"
// @Router /communications/{id} [put]
func (h *CommunicationHandler) UpdateCommunication(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid communication ID: invalid UUID format")
		return
	}

	var req service.UpdateCommunicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	communication, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Message: "Communication updated successfully!", Data: communication})
}

// DeleteCommunication handles DELETE /api/communications/:id
// @Summary Delete a communication
// @Description Remove a log entry
// @Tags communications
// @Produce json
// @Param id path string true "Communication ID (UUID)"
// @Success 200 {object} Response "Successfully deleted communication"
// @Failure 400 {object} Response "Invalid communication ID"
// @Failure 404 {object} Response "Communication not found"
// @Failure 500 {object} Response "Internal server error"
// @Router /communications/{id} [delete]
func (h *CommunicationHandler) DeleteCommunication(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid communication ID: invalid UUID format")
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, "Communication deleted successfully!")
}
