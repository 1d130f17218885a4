package repository

import (
	"communication-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(id uuid.UUID) (*models.Company, error)
	GetByEmail(email string) (*models.Company, error)
	GetAll() ([]models.Company, error)
	Update(company *models.Company) error
	Delete(id uuid.UUID) error
}

// MethodRepositoryInterface defines the interface for method repository operations
type MethodRepositoryInterface interface {
	Create(method *models.Method) error
	GetByID(id uuid.UUID) (*models.Method, error)
	GetAll() ([]models.Method, error)
	Update(method *models.Method) error
	Delete(id uuid.UUID) error
}

// CommunicationRepositoryInterface defines the interface for communication repository operations
type CommunicationRepositoryInterface interface {
	Create(communication *models.Communication) error
	GetByID(id uuid.UUID) (*models.Communication, error)
	GetAll() ([]models.Communication, error)
	GetChronological() ([]models.Communication, error)
	GetByCompanyID(companyID uuid.UUID) ([]models.Communication, error)
	Update(communication *models.Communication) error
	Delete(id uuid.UUID) error
}
