package repository

import (
	"time"

	"train-console-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillingIntentRepository handles database operations for billing intents
type BillingIntentRepository struct {
	db *gorm.DB
}

// NewBillingIntentRepository creates a new billing intent repository
func NewBillingIntentRepository(db *gorm.DB) *BillingIntentRepository {
	return &BillingIntentRepository{db: db}
}

// Create creates a new billing intent
func (r *BillingIntentRepository) Create(intent *models.BillingIntent) error {
	return r.db.Create(intent).Error
}

// GetByID retrieves a billing intent by ID
func (r *BillingIntentRepository) GetByID(id uuid.UUID) (*models.BillingIntent, error) {
	var intent models.BillingIntent
	err := r.db.First(&intent, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

// Update updates a billing intent
func (r *BillingIntentRepository) Update(intent *models.BillingIntent) error {
	return r.db.Save(intent).Error
}

// GetPendingOlderThan lists pending intents created before the cutoff. These
// are the orphans of crashed launch workflows and feed the recovery sweep.
func (r *BillingIntentRepository) GetPendingOlderThan(cutoff time.Time) ([]models.BillingIntent, error) {
	var intents []models.BillingIntent
	err := r.db.Where("state = ? AND created_at < ?", models.IntentStatePending, cutoff).
		Order("created_at asc").
		Find(&intents).Error
	if err != nil {
		return nil, err
	}
	return intents, nil
}
