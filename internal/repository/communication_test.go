package repository

import (
	"testing"
	"time"

	"communication-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommunication(companyID uuid.UUID, companyName string, date time.Time) *models.Communication {
	return &models.Communication{
		CompanyID:         companyID,
		CompanyName:       companyName,
		CommunicationType: "Email",
		CommunicationDate: date,
	}
}

func TestCommunicationCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommunicationRepository(db)

	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	comm := newTestCommunication(uuid.New(), "Acme Corp", date)
	require.NoError(t, repo.Create(comm))

	retrieved, err := repo.GetByID(comm.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", retrieved.CompanyName)
	assert.True(t, retrieved.CommunicationDate.Equal(date))
}

func TestCommunicationGetAllNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommunicationRepository(db)

	companyID := uuid.New()
	first := newTestCommunication(companyID, "Acme Corp", time.Now())
	require.NoError(t, repo.Create(first))

	second := newTestCommunication(companyID, "Acme Corp", time.Now())
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Create(second))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "list endpoint returns newest log entries first")
}

func TestCommunicationGetByCompanyID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommunicationRepository(db)

	companyID := uuid.New()
	otherID := uuid.New()
	require.NoError(t, repo.Create(newTestCommunication(companyID, "Acme Corp", time.Now())))
	require.NoError(t, repo.Create(newTestCommunication(otherID, "Beta GmbH", time.Now())))
	require.NoError(t, repo.Create(newTestCommunication(companyID, "Acme Corp", time.Now())))

	comms, err := repo.GetByCompanyID(companyID)
	require.NoError(t, err)
	assert.Len(t, comms, 2)
	for _, c := range comms {
		assert.Equal(t, companyID, c.CompanyID)
	}
}

func TestCommunicationSurvivesCompanyDelete(t *testing.T) {
	db := setupTestDB(t)
	companyRepo := NewCompanyRepository(db)
	commRepo := NewCommunicationRepository(db)

	company := newTestCompany("Acme Corp", "contact@acme.test")
	require.NoError(t, companyRepo.Create(company))

	comm := newTestCommunication(company.ID, company.CompanyName, time.Now())
	require.NoError(t, commRepo.Create(comm))

	require.NoError(t, companyRepo.Delete(company.ID))

	// The history survives orphaned: snapshot name and company id intact.
	retrieved, err := commRepo.GetByID(comm.ID)
	require.NoError(t, err)
	assert.Equal(t, company.ID, retrieved.CompanyID)
	assert.Equal(t, "Acme Corp", retrieved.CompanyName)
}

func TestCommunicationSnapshotSurvivesRename(t *testing.T) {
	db := setupTestDB(t)
	companyRepo := NewCompanyRepository(db)
	commRepo := NewCommunicationRepository(db)

	company := newTestCompany("Acme Corp", "contact@acme.test")
	require.NoError(t, companyRepo.Create(company))

	comm := newTestCommunication(company.ID, company.CompanyName, time.Now())
	require.NoError(t, commRepo.Create(comm))

	company.CompanyName = "Acme Industries"
	require.NoError(t, companyRepo.Update(company))

	retrieved, err := commRepo.GetByID(comm.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", retrieved.CompanyName,
		"companyName must stay the creation-time snapshot")
}

func TestCommunicationUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommunicationRepository(db)

	comm := newTestCommunication(uuid.New(), "Acme Corp", time.Now())
	require.NoError(t, repo.Create(comm))

	comm.CommunicationType = "Phone Call"
	comm.Notes = "left voicemail"
	require.NoError(t, repo.Update(comm))

	retrieved, err := repo.GetByID(comm.ID)
	require.NoError(t, err)
	assert.Equal(t, "Phone Call", retrieved.CommunicationType)
	assert.Equal(t, "left voicemail", retrieved.Notes)

	require.NoError(t, repo.Delete(comm.ID))
	_, err = repo.GetByID(comm.ID)
	assert.Error(t, err)
}
