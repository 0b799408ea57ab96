package repository

import (
	"train-console-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// GetByUserID retrieves the membership for a user. A user has at most one.
func (r *MembershipRepository) GetByUserID(userID string) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByOrganizationID retrieves all memberships of an organization
func (r *MembershipRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Where("organization_id = ?", orgID).Order("created_at asc").Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}
