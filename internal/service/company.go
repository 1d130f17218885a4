package service

import (
	"errors"
	"fmt"

	"communication-tracker-backend/internal/database/models"
	apperrors "communication-tracker-backend/internal/errors"
	"communication-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyService handles business logic for companies
type CompanyService struct {
	repo               repository.CompanyRepositoryInterface
	validator          *validator.Validate
	defaultPeriodicity int
}

// NewCompanyService creates a new company service. defaultPeriodicity is the
// contact interval applied when a company is created without one.
func NewCompanyService(repo repository.CompanyRepositoryInterface, validator *validator.Validate, defaultPeriodicity int) *CompanyService {
	return &CompanyService{
		repo:               repo,
		validator:          validator,
		defaultPeriodicity: defaultPeriodicity,
	}
}

// CreateCompanyRequest represents the request to create a company
type CreateCompanyRequest struct {
	CompanyName  string `json:"companyName" validate:"required"`
	Location     string `json:"location" validate:"required"`
	LinkedIn     string `json:"linkedin" validate:"omitempty,url"`
	Email        string `json:"email" validate:"required,email"`
	PhoneNumbers string `json:"phoneNumbers"`
	Comments     string `json:"comments"`
	// Periodicity must be positive when given; omitted means the default.
	Periodicity *int `json:"periodicity" validate:"omitempty,gt=0"`
}

// UpdateCompanyRequest represents the full-record update of a company
type UpdateCompanyRequest struct {
	CompanyName  string `json:"companyName" validate:"required"`
	Location     string `json:"location" validate:"required"`
	LinkedIn     string `json:"linkedin" validate:"omitempty,url"`
	Email        string `json:"email" validate:"required,email"`
	PhoneNumbers string `json:"phoneNumbers"`
	Comments     string `json:"comments"`
	Periodicity  *int   `json:"periodicity" validate:"omitempty,gt=0"`
}

// CompanyResponse represents the response for company operations
type CompanyResponse struct {
	ID           uuid.UUID `json:"id"`
	CompanyName  string    `json:"companyName"`
	Location     string    `json:"location"`
	LinkedIn     string    `json:"linkedin"`
	Email        string    `json:"email"`
	PhoneNumbers string    `json:"phoneNumbers"`
	Comments     string    `json:"comments"`
	Periodicity  int       `json:"periodicity"`
	CreatedAt    string    `json:"createdAt"`
	UpdatedAt    string    `json:"updatedAt"`
}

// Create creates a new company, enforcing the unique-email constraint
func (s *CompanyService) Create(req *CreateCompanyRequest) (*CompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing company by email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCompanyEmailExists
	}

	periodicity := s.defaultPeriodicity
	if req.Periodicity != nil {
		periodicity = *req.Periodicity
	}

	company := &models.Company{
		CompanyName:  req.CompanyName,
		Location:     req.Location,
		LinkedIn:     req.LinkedIn,
		Email:        req.Email,
		PhoneNumbers: req.PhoneNumbers,
		Comments:     req.Comments,
		Periodicity:  periodicity,
	}

	if err := s.repo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return s.toResponse(company), nil
}

// GetByID retrieves a company by ID
func (s *CompanyService) GetByID(id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return s.toResponse(company), nil
}

// GetAll retrieves all companies
func (s *CompanyService) GetAll() ([]CompanyResponse, error) {
	companies, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get companies: %w", err)
	}

	responses := make([]CompanyResponse, len(companies))
	for i, company := range companies {
		responses[i] = *s.toResponse(&company)
	}
	return responses, nil
}

// Update replaces a company record
func (s *CompanyService) Update(id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	// The new email must not belong to a different company.
	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing company by email: %w", err)
	}
	if existing != nil && existing.ID != id {
		return nil, apperrors.ErrCompanyEmailExists
	}

	company.CompanyName = req.CompanyName
	company.Location = req.Location
	company.LinkedIn = req.LinkedIn
	company.Email = req.Email
	company.PhoneNumbers = req.PhoneNumbers
	company.Comments = req.Comments
	if req.Periodicity != nil {
		company.Periodicity = *req.Periodicity
	}

	if err := s.repo.Update(company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return s.toResponse(company), nil
}

// Delete deletes a company. Historical communications are intentionally left
// in place, orphaned company ids included.
func (s *CompanyService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to get company: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	return nil
}

// toResponse converts a company model to response
func (s *CompanyService) toResponse(company *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:           company.ID,
		CompanyName:  company.CompanyName,
		Location:     company.Location,
		LinkedIn:     company.LinkedIn,
		Email:        company.Email,
		PhoneNumbers: company.PhoneNumbers,
		Comments:     company.Comments,
		Periodicity:  company.Periodicity,
		CreatedAt:    company.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    company.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
