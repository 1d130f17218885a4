package repository

import (
	"communication-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommunicationRepository handles database operations for communication log entries
type CommunicationRepository struct {
	db *gorm.DB
}

// NewCommunicationRepository creates a new communication repository
func NewCommunicationRepository(db *gorm.DB) *CommunicationRepository {
	return &CommunicationRepository{db: db}
}

// Create creates a new communication log entry
func (r *CommunicationRepository) Create(communication *models.Communication) error {
	return r.db.Create(communication).Error
}

// GetByID retrieves a communication by ID
func (r *CommunicationRepository) GetByID(id uuid.UUID) (*models.Communication, error) {
	var communication models.Communication
	err := r.db.First(&communication, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &communication, nil
}

// GetAll retrieves all communications, newest log entries first. This is the
// list endpoint ordering.
func (r *CommunicationRepository) GetAll() ([]models.Communication, error) {
	var communications []models.Communication
	err := r.db.Order("created_at DESC").Find(&communications).Error
	if err != nil {
		return nil, err
	}
	return communications, nil
}

// GetChronological retrieves all communications in insertion order, the
// ordering the cadence engine relies on for stable same-day tie-breaking.
func (r *CommunicationRepository) GetChronological() ([]models.Communication, error) {
	var communications []models.Communication
	err := r.db.Order("created_at ASC, id ASC").Find(&communications).Error
	if err != nil {
		return nil, err
	}
	return communications, nil
}

// GetByCompanyID retrieves one company's communications in insertion order
func (r *CommunicationRepository) GetByCompanyID(companyID uuid.UUID) ([]models.Communication, error) {
	var communications []models.Communication
	err := r.db.Where("company_id = ?", companyID).
		Order("created_at ASC, id ASC").
		Find(&communications).Error
	if err != nil {
		return nil, err
	}
	return communications, nil
}

// Update updates a communication
func (r *CommunicationRepository) Update(communication *models.Communication) error {
	return r.db.Save(communication).Error
}

// Delete deletes a communication
func (r *CommunicationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Communication{}, "id = ?", id).Error
}
