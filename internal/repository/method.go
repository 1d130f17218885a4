package repository

import (
	"communication-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MethodRepository handles database operations for communication methods
type MethodRepository struct {
	db *gorm.DB
}

// NewMethodRepository creates a new method repository
func NewMethodRepository(db *gorm.DB) *MethodRepository {
	return &MethodRepository{db: db}
}

// Create creates a new method
func (r *MethodRepository) Create(method *models.Method) error {
	return r.db.Create(method).Error
}

// GetByID retrieves a method by ID
func (r *MethodRepository) GetByID(id uuid.UUID) (*models.Method, error) {
	var method models.Method
	err := r.db.First(&method, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &method, nil
}

// GetAll retrieves all methods ordered by cadence sequence. Sequence values
// are not unique; insertion order breaks ties.
func (r *MethodRepository) GetAll() ([]models.Method, error) {
	var methods []models.Method
	err := r.db.Order("sequence ASC, created_at ASC").Find(&methods).Error
	if err != nil {
		return nil, err
	}
	return methods, nil
}

// Update updates a method
func (r *MethodRepository) Update(method *models.Method) error {
	return r.db.Save(method).Error
}

// Delete deletes a method
func (r *MethodRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Method{}, "id = ?", id).Error
}
