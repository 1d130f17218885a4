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

// MethodService handles business logic for communication methods
type MethodService struct {
	repo      repository.MethodRepositoryInterface
	validator *validator.Validate
}

// NewMethodService creates a new method service
func NewMethodService(repo repository.MethodRepositoryInterface, validator *validator.Validate) *MethodService {
	return &MethodService{
		repo:      repo,
		validator: validator,
	}
}

// CreateMethodRequest represents the request to create a method. Mandatory is
// a pointer so that a missing field is distinguishable from an explicit false.
type CreateMethodRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Sequence    int    `json:"sequence" validate:"required,gt=0"`
	Mandatory   *bool  `json:"mandatory" validate:"required"`
}

// UpdateMethodRequest represents the full-record update of a method
type UpdateMethodRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Sequence    int    `json:"sequence" validate:"required,gt=0"`
	Mandatory   *bool  `json:"mandatory" validate:"required"`
}

// MethodResponse represents the response for method operations
type MethodResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Sequence    int       `json:"sequence"`
	Mandatory   bool      `json:"mandatory"`
	CreatedAt   string    `json:"createdAt"`
}

// Create creates a new method
func (s *MethodService) Create(req *CreateMethodRequest) (*MethodResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	method := &models.Method{
		Name:        req.Name,
		Description: req.Description,
		Sequence:    req.Sequence,
		Mandatory:   *req.Mandatory,
	}

	if err := s.repo.Create(method); err != nil {
		return nil, fmt.Errorf("failed to create method: %w", err)
	}

	return s.toResponse(method), nil
}

// GetByID retrieves a method by ID
func (s *MethodService) GetByID(id uuid.UUID) (*MethodResponse, error) {
	method, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMethodNotFound
		}
		return nil, fmt.Errorf("failed to get method: %w", err)
	}

	return s.toResponse(method), nil
}

// GetAll retrieves all methods sorted by cadence sequence
func (s *MethodService) GetAll() ([]MethodResponse, error) {
	methods, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get methods: %w", err)
	}

	responses := make([]MethodResponse, len(methods))
	for i, method := range methods {
		responses[i] = *s.toResponse(&method)
	}
	return responses, nil
}

// Update replaces a method record
func (s *MethodService) Update(id uuid.UUID, req *UpdateMethodRequest) (*MethodResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	method, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMethodNotFound
		}
		return nil, fmt.Errorf("failed to get method: %w", err)
	}

	method.Name = req.Name
	method.Description = req.Description
	method.Sequence = req.Sequence
	method.Mandatory = *req.Mandatory

	if err := s.repo.Update(method); err != nil {
		return nil, fmt.Errorf("failed to update method: %w", err)
	}

	return s.toResponse(method), nil
}

// Delete deletes a method
func (s *MethodService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMethodNotFound
		}
		return fmt.Errorf("failed to get method: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete method: %w", err)
	}

	return nil
}

// toResponse converts a method model to response
func (s *MethodService) toResponse(method *models.Method) *MethodResponse {
	return &MethodResponse{
		ID:          method.ID,
		Name:        method.Name,
		Description: method.Description,
		Sequence:    method.Sequence,
		Mandatory:   method.Mandatory,
		CreatedAt:   method.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
