package repository

import (
	"testing"

	"communication-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestCompany(name, email string) *models.Company {
	return &models.Company{
		CompanyName: name,
		Location:    "Berlin",
		Email:       email,
		Periodicity: 14,
	}
}

func TestCompanyCreateAndGet(t *testing.T) {
	repo := NewCompanyRepository(setupTestDB(t))

	company := newTestCompany("Acme Corp", "contact@acme.test")
	require.NoError(t, repo.Create(company))
	assert.NotEqual(t, uuid.Nil, company.ID, "BeforeCreate must assign an ID")

	retrieved, err := repo.GetByID(company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", retrieved.CompanyName)
	assert.Equal(t, 14, retrieved.Periodicity)
}

func TestCompanyGetByEmail(t *testing.T) {
	repo := NewCompanyRepository(setupTestDB(t))

	require.NoError(t, repo.Create(newTestCompany("Acme Corp", "contact@acme.test")))

	found, err := repo.GetByEmail("contact@acme.test")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", found.CompanyName)

	_, err = repo.GetByEmail("nobody@acme.test")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCompanyUniqueEmailConstraint(t *testing.T) {
	repo := NewCompanyRepository(setupTestDB(t))

	require.NoError(t, repo.Create(newTestCompany("Acme Corp", "contact@acme.test")))
	err := repo.Create(newTestCompany("Other Corp", "contact@acme.test"))
	assert.Error(t, err, "duplicate email must be rejected by the store")
}

func TestCompanyUpdate(t *testing.T) {
	repo := NewCompanyRepository(setupTestDB(t))

	company := newTestCompany("Acme Corp", "contact@acme.test")
	require.NoError(t, repo.Create(company))

	company.CompanyName = "Acme Industries"
	company.Periodicity = 7
	require.NoError(t, repo.Update(company))

	retrieved, err := repo.GetByID(company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Industries", retrieved.CompanyName)
	assert.Equal(t, 7, retrieved.Periodicity)
}

func TestCompanyDelete(t *testing.T) {
	repo := NewCompanyRepository(setupTestDB(t))

	company := newTestCompany("Acme Corp", "contact@acme.test")
	require.NoError(t, repo.Create(company))
	require.NoError(t, repo.Delete(company.ID))

	_, err := repo.GetByID(company.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCompanyGetAll(t *testing.T) {
	repo := NewCompanyRepository(setupTestDB(t))

	require.NoError(t, repo.Create(newTestCompany("Acme Corp", "a@acme.test")))
	require.NoError(t, repo.Create(newTestCompany("Beta GmbH", "b@beta.test")))

	companies, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, companies, 2)
}
