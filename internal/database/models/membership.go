package models

import (
	"github.com/google/uuid"
)

// Membership binds an authenticated user to an organization with a role.
// A user belongs to exactly one organization in this model.
type Membership struct {
	BaseModel
	OrganizationID uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID         string         `json:"user_id" gorm:"uniqueIndex;not null;size:120" validate:"required,max=120"`
	Email          string         `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Role           MembershipRole `json:"role" gorm:"type:varchar(20);not null;default:'standard'" validate:"required"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
