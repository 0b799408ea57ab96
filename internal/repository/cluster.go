package repository

import (
	"train-console-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClusterRepository handles database operations for clusters
type ClusterRepository struct {
	db *gorm.DB
}

// NewClusterRepository creates a new cluster repository
func NewClusterRepository(db *gorm.DB) *ClusterRepository {
	return &ClusterRepository{db: db}
}

// Create creates a new cluster
func (r *ClusterRepository) Create(cluster *models.Cluster) error {
	return r.db.Create(cluster).Error
}

// GetByID retrieves a cluster by ID
func (r *ClusterRepository) GetByID(id uuid.UUID) (*models.Cluster, error) {
	var cluster models.Cluster
	err := r.db.First(&cluster, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cluster, nil
}

// GetByOrganizationID retrieves all clusters of an organization
func (r *ClusterRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.Cluster, error) {
	var clusters []models.Cluster
	err := r.db.Where("organization_id = ?", orgID).Order("created_at asc").Find(&clusters).Error
	if err != nil {
		return nil, err
	}
	return clusters, nil
}

// GetPlatformOwned retrieves the platform-owned cluster of an organization,
// when one has been provisioned
func (r *ClusterRepository) GetPlatformOwned(orgID uuid.UUID) (*models.Cluster, error) {
	var cluster models.Cluster
	err := r.db.First(&cluster, "organization_id = ? AND owned_by = ?", orgID, models.ClusterOwnerPlatform).Error
	if err != nil {
		return nil, err
	}
	return &cluster, nil
}

// Update updates a cluster
func (r *ClusterRepository) Update(cluster *models.Cluster) error {
	return r.db.Save(cluster).Error
}

// Delete deletes a cluster
func (r *ClusterRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Cluster{}, "id = ?", id).Error
}
