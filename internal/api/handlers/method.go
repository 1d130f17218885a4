package handlers

import (
	"net/http"

	"communication-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MethodHandler handles HTTP requests for communication methods
type MethodHandler struct {
	service service.MethodServiceInterface
}

// NewMethodHandler creates a new method handler
func NewMethodHandler(service service.MethodServiceInterface) *MethodHandler {
	return &MethodHandler{service: service}
}

// CreateMethod handles POST /api/methods
// @Summary Create a communication method
// @Description Add a method to the outreach catalog with its cadence position
// @Tags methods
// @Accept json
// @Produce json
// @Param method body service.CreateMethodRequest true "Method data"
// @Success 201 {object} Response{data=service.MethodResponse} "Successfully created method"
// @Failure 400 {object} Response "Invalid request body"
// @Failure 500 {object} Response "Internal server error"
// @Router /methods [post]
func (h *MethodHandler) CreateMethod(c *gin.Context) {
	var req service.CreateMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	method, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Communication method added successfully!", method)
}

// GetMethods handles GET /api/methods
// @Summary List communication methods
// @Description Get all methods ordered by cadence sequence
// @Tags methods
// @Produce json
// @Success 200 {object} Response{data=[]service.MethodResponse} "Successfully retrieved methods"
// @Failure 500 {object} Response "Internal server error"
// @Router /methods [get]
func (h *MethodHandler) GetMethods(c *gin.Context) {
	methods, err := h.service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, methods)
}

// UpdateMethod handles PUT /api/methods/:id
// @Summary Update a communication method
// @Description Replace a method's catalog entry
// @Tags methods
// @Accept json
// @Produce json
// @Param id path string true "Method ID (UUID)"
// @Param method body service.UpdateMethodRequest true "Method data"
// @Success 200 {object} Response{data=service.MethodResponse} "Successfully updated method"
// @Failure 400 {object} Response "Invalid request body"
// @Failure 404 {object} Response "Method not found"
// @Failure 500 {object} Response "Internal server error"
// @Router /methods/{id} [put]
func (h *MethodHandler) UpdateMethod(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid method ID: invalid UUID format")
		return
	}

	var req service.UpdateMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	method, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Message: "Communication method updated successfully!", Data: method})
}

// DeleteMethod handles DELETE /api/methods/:id
// @Summary Delete a communication method
// @Description Remove a method from the catalog; logged communications keep their type text
// @Tags methods
// @Produce json
// @Param id path string true "Method ID (UUID)"
// @Success 200 {object} Response "Successfully deleted method"
// @Failure 400 {object} Response "Invalid method ID"
// @Failure 404 {object} Response "Method not found"
// @Failure 500 {object} Response "Internal server error"
// @Router /methods/{id} [delete]
func (h *MethodHandler) DeleteMethod(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid method ID: invalid UUID format")
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, "Communication method deleted successfully!")
}
