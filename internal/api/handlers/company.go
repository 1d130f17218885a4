package handlers

import (
	"net/http"

	"communication-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompanyHandler handles HTTP requests for companies
type CompanyHandler struct {
	service service.CompanyServiceInterface
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(service service.CompanyServiceInterface) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// CreateCompany handles POST /api/companies
// @Summary Create a new company
// @Description Create a new company with contact details and cadence periodicity
// @Tags companies
// @Accept json
// @Produce json
// @Param company body service.CreateCompanyRequest true "Company data"
// @Success 201 {object} Response{data=service.CompanyResponse} "Successfully created company"
// @Failure 400 {object} Response "Invalid request body"
// @Failure 409 {object} Response "Company email already exists"
// @Failure 500 {object} Response "Internal server error"
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req service.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	company, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Company added successfully!", company)
}

// GetCompanies handles GET /api/companies
// @Summary List all companies
// @Description Get all companies with their configured cadence
// @Tags companies
// @Produce json
// @Success 200 {object} Response{data=[]service.CompanyResponse} "Successfully retrieved companies"
// @Failure 500 {object} Response "Internal server error"
// @Router /companies [get]
func (h *CompanyHandler) GetCompanies(c *gin.Context) {
	companies, err := h.service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, companies)
}

// GetCompany handles GET /api/companies/:id
// @Summary Get company by ID
// @Description Get a specific company by its UUID
// @Tags companies
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} Response{data=service.CompanyResponse} "Successfully retrieved company"
// @Failure 400 {object} Response "Invalid company ID"
// @Failure 404 {object} Response "Company not found"
// @Failure 500 {object} Response "Internal server error"
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid company ID: invalid UUID format")
		return
	}

	company, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, company)
}

// UpdateCompany handles PUT /api/companies/:id
// @Summary Update a company
// @Description Replace a company's details; omitted periodicity is preserved
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param company body service.UpdateCompanyRequest true "Company data"
// @Success 200 {object} Response{data=service.CompanyResponse} "Successfully updated company"
// @Failure 400 {object} Response "Invalid request body"
// @Failure 404 {object} Response "Company not found"
// @Failure 409 {object} Response "Company email already exists"
// @Failure 500 {object} Response "Internal server error"
// @Router /companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid company ID: invalid UUID format")
		return
	}

	var req service.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	company, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Message: "Company updated successfully!", Data: company})
}

// DeleteCompany handles DELETE /api/companies/:id
// @Summary Delete a company
// @Description Delete a company; its logged communications are kept
// @Tags companies
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} Response "Successfully deleted company"
// @Failure 400 {object} Response "Invalid company ID"
// @Failure 404 {object} Response "Company not found"
// @Failure 500 {object} Response "Internal server error"
// @Router /companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid company ID: invalid UUID format")
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, "Company deleted successfully!")
}
