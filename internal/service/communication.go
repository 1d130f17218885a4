package service

import (
	"errors"
	"fmt"
	"time"

	"communication-tracker-backend/internal/database/models"
	apperrors "communication-tracker-backend/internal/errors"
	"communication-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommunicationService handles business logic for communication log entries
type CommunicationService struct {
	repo        repository.CommunicationRepositoryInterface
	companyRepo repository.CompanyRepositoryInterface
	validator   *validator.Validate
}

// NewCommunicationService creates a new communication service
func NewCommunicationService(
	repo repository.CommunicationRepositoryInterface,
	companyRepo repository.CompanyRepositoryInterface,
	validator *validator.Validate,
) *CommunicationService {
	return &CommunicationService{
		repo:        repo,
		companyRepo: companyRepo,
		validator:   validator,
	}
}

// CreateCommunicationRequest represents the request to log a communication.
// CommunicationType is free text by design; it is not validated against the
// method catalog. The date may be past or future.
type CreateCommunicationRequest struct {
	CompanyID         string `json:"companyId" validate:"required"`
	CommunicationType string `json:"communicationType" validate:"required"`
	CommunicationDate string `json:"communicationDate" validate:"required"`
	Notes             string `json:"notes"`
}

// UpdateCommunicationRequest represents the full replace of a communication's
// mutable fields (type, date, notes)
type UpdateCommunicationRequest struct {
	CommunicationType string `json:"communicationType" validate:"required"`
	CommunicationDate string `json:"communicationDate" validate:"required"`
	Notes             string `json:"notes"`
}

// CommunicationResponse represents the response for communication operations
type CommunicationResponse struct {
	ID                uuid.UUID `json:"id"`
	CompanyID         uuid.UUID `json:"companyId"`
	CompanyName       string    `json:"companyName"`
	CommunicationType string    `json:"communicationType"`
	CommunicationDate string    `json:"communicationDate"`
	Notes             string    `json:"notes"`
	CreatedAt         string    `json:"createdAt"`
}

// Create logs a communication. The referenced company must exist at creation
// time; its name is snapshotted onto the record and never re-synced.
func (s *CommunicationService) Create(req *CreateCommunicationRequest) (*CommunicationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return nil, apperrors.ErrInvalidCompanyID
	}

	date, err := parseCommunicationDate(req.CommunicationDate)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	communication := &models.Communication{
		CompanyID:         companyID,
		CompanyName:       company.CompanyName,
		CommunicationType: req.CommunicationType,
		CommunicationDate: date,
		Notes:             req.Notes,
	}

	if err := s.repo.Create(communication); err != nil {
		return nil, fmt.Errorf("failed to create communication: %w", err)
	}

	return s.toResponse(communication), nil
}

// GetAll retrieves all communications, newest log entries first
func (s *CommunicationService) GetAll() ([]CommunicationResponse, error) {
	communications, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get communications: %w", err)
	}

	responses := make([]CommunicationResponse, len(communications))
	for i, communication := range communications {
		responses[i] = *s.toResponse(&communication)
	}
	return responses, nil
}

// Update replaces a communication's type, date and notes
func (s *CommunicationService) Update(id uuid.UUID, req *UpdateCommunicationRequest) (*CommunicationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	date, err := parseCommunicationDate(req.CommunicationDate)
	if err != nil {
		return nil, err
	}

	communication, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommunicationNotFound
		}
		return nil, fmt.Errorf("failed to get communication: %w", err)
	}

	communication.CommunicationType = req.CommunicationType
	communication.CommunicationDate = date
	communication.Notes = req.Notes

	if err := s.repo.Update(communication); err != nil {
		return nil, fmt.Errorf("failed to update communication: %w", err)
	}

	return s.toResponse(communication), nil
}

// Delete deletes a communication
func (s *CommunicationService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommunicationNotFound
		}
		return fmt.Errorf("failed to get communication: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete communication: %w", err)
	}

	return nil
}

// parseCommunicationDate accepts RFC 3339 timestamps and plain dates, the two
// shapes the calendar frontend submits.
func parseCommunicationDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, apperrors.ErrInvalidDate
}

// toResponse converts a communication model to response
func (s *CommunicationService) toResponse(communication *models.Communication) *CommunicationResponse {
	return &CommunicationResponse{
		ID:                communication.ID,
		CompanyID:         communication.CompanyID,
		CompanyName:       communication.CompanyName,
		CommunicationType: communication.CommunicationType,
		CommunicationDate: communication.CommunicationDate.Format("2006-01-02T15:04:05Z07:00"),
		Notes:             communication.Notes,
		CreatedAt:         communication.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
