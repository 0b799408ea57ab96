package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Organization represents the root tenant entity. All clusters, jobs and
// billing state hang off an organization.
type Organization struct {
	BaseModel
	Name              string          `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Slug              string          `json:"slug" gorm:"uniqueIndex;not null;size:120" validate:"required,max=120"`
	PaymentCustomerID string          `json:"-" gorm:"size:120"`
	PromoCredits      int             `json:"promo_credits" gorm:"not null;default:0"`
	FreeJobsConsumed  int             `json:"free_jobs_consumed" gorm:"not null;default:0"`
	DefaultClusterID  *uuid.UUID      `json:"default_cluster_id,omitempty" gorm:"type:uuid"`
	BillingAddress    json.RawMessage `json:"billing_address,omitempty" gorm:"type:jsonb"`

	// Relationships
	Memberships []Membership  `json:"memberships,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Clusters    []Cluster     `json:"clusters,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Jobs        []TrainingJob `json:"jobs,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

// BillingAddressInput is the structured form of the billing address stored on
// the organization and forwarded to the payment provider.
type BillingAddressInput struct {
	Line1      string `json:"line1" validate:"required,max=200"`
	Line2      string `json:"line2,omitempty" validate:"max=200"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state,omitempty" validate:"max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=20"`
	Country    string `json:"country" validate:"required,len=2"`
}
