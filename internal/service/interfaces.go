package service

import (
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CompanyServiceInterface defines the interface for company service
type CompanyServiceInterface interface {
	Create(req *CreateCompanyRequest) (*CompanyResponse, error)
	GetByID(id uuid.UUID) (*CompanyResponse, error)
	GetAll() ([]CompanyResponse, error)
	Update(id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error)
	Delete(id uuid.UUID) error
}

// MethodServiceInterface defines the interface for method service
type MethodServiceInterface interface {
	Create(req *CreateMethodRequest) (*MethodResponse, error)
	GetByID(id uuid.UUID) (*MethodResponse, error)
	GetAll() ([]MethodResponse, error)
	Update(id uuid.UUID, req *UpdateMethodRequest) (*MethodResponse, error)
	Delete(id uuid.UUID) error
}

// CommunicationServiceInterface defines the interface for communication service
type CommunicationServiceInterface interface {
	Create(req *CreateCommunicationRequest) (*CommunicationResponse, error)
	GetAll() ([]CommunicationResponse, error)
	Update(id uuid.UUID, req *UpdateCommunicationRequest) (*CommunicationResponse, error)
	Delete(id uuid.UUID) error
}

// CadenceServiceInterface defines the interface for the cadence read models
type CadenceServiceInterface interface {
	Dashboard(now time.Time) (*DashboardResponse, error)
	Notifications(now time.Time) (*NotificationsResponse, error)
}
