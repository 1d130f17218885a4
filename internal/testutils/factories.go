package testutils

import (
	"fmt"
	"time"

	"communication-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	id := uuid.New()
	return &models.Company{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
		},
		CompanyName: "Test Company",
		Location:    "Berlin",
		LinkedIn:    "https://linkedin.com/company/test-company",
		Email:       fmt.Sprintf("contact+%s@test-company.example", id.String()[:8]),
		Periodicity: 14,
		UpdatedAt:   time.Now(),
	}
}

// WithName sets a custom name for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	company := f.Create()
	company.CompanyName = name
	return company
}

// WithPeriodicity sets a custom contact interval
func (f *CompanyFactory) WithPeriodicity(days int) *models.Company {
	company := f.Create()
	company.Periodicity = days
	return company
}

// MethodFactory provides methods to create test Method data
type MethodFactory struct{}

// NewMethodFactory creates a new MethodFactory
func NewMethodFactory() *MethodFactory {
	return &MethodFactory{}
}

// Create creates a test Method with default values
func (f *MethodFactory) Create() *models.Method {
	return &models.Method{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:        "Email",
		Description: "Send an email to the main contact",
		Sequence:    3,
		Mandatory:   true,
	}
}

// WithSequence sets a custom cadence position
func (f *MethodFactory) WithSequence(sequence int) *models.Method {
	method := f.Create()
	method.Sequence = sequence
	return method
}

// CommunicationFactory provides methods to create test Communication data
type CommunicationFactory struct{}

// NewCommunicationFactory creates a new CommunicationFactory
func NewCommunicationFactory() *CommunicationFactory {
	return &CommunicationFactory{}
}

// Create creates a test Communication linked to the given company
func (f *CommunicationFactory) Create(company *models.Company) *models.Communication {
	return &models.Communication{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		CompanyID:         company.ID,
		CompanyName:       company.CompanyName,
		CommunicationType: "Email",
		CommunicationDate: time.Now().AddDate(0, 0, -1),
		Notes:             "test communication",
	}
}

// OnDate sets a custom communication date
func (f *CommunicationFactory) OnDate(company *models.Company, date time.Time) *models.Communication {
	communication := f.Create(company)
	communication.CommunicationDate = date
	return communication
}
