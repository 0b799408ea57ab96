package repository

import (
	"train-console-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrainingJobRepository handles database operations for training jobs
type TrainingJobRepository struct {
	db *gorm.DB
}

// NewTrainingJobRepository creates a new training job repository
func NewTrainingJobRepository(db *gorm.DB) *TrainingJobRepository {
	return &TrainingJobRepository{db: db}
}

// Create creates a new training job
func (r *TrainingJobRepository) Create(job *models.TrainingJob) error {
	return r.db.Create(job).Error
}

// GetByID retrieves a training job by ID
func (r *TrainingJobRepository) GetByID(id uuid.UUID) (*models.TrainingJob, error) {
	var job models.TrainingJob
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetByOrganizationID retrieves all jobs of an organization, newest first
func (r *TrainingJobRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.TrainingJob, int64, error) {
	var jobs []models.TrainingJob
	var total int64

	if err := r.db.Model(&models.TrainingJob{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// GetByOrganizationAndUser retrieves the jobs a standard member may see
func (r *TrainingJobRepository) GetByOrganizationAndUser(orgID uuid.UUID, userID string, limit, offset int) ([]models.TrainingJob, int64, error) {
	var jobs []models.TrainingJob
	var total int64

	query := r.db.Model(&models.TrainingJob{}).Where("organization_id = ? AND user_id = ?", orgID, userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ? AND user_id = ?", orgID, userID).
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// Update updates a training job
func (r *TrainingJobRepository) Update(job *models.TrainingJob) error {
	return r.db.Save(job).Error
}
