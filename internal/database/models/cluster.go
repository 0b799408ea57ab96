package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Cluster is a registered execution endpoint for training jobs, either
// provisioned by the platform or registered by the customer. The platform
// default cluster is locked: it can never be deleted and its identity and
// ownership fields reject updates.
type Cluster struct {
	BaseModel
	OrganizationID  uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name            string          `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Provider        ClusterProvider `json:"provider" gorm:"type:varchar(40);not null" validate:"required"`
	APIBaseURL      string          `json:"api_base_url" gorm:"not null;size:500" validate:"required,url"`
	APIToken        string          `json:"-" gorm:"size:500"`
	Kind            ClusterKind     `json:"kind" gorm:"type:varchar(20);not null" validate:"required"`
	RequiresPayment bool            `json:"requires_payment" gorm:"not null;default:false"`
	OwnedBy         ClusterOwner    `json:"owned_by" gorm:"type:varchar(20);not null" validate:"required"`
	FreeJobLimit    int             `json:"free_job_limit" gorm:"not null;default:0"`
	Locked          bool            `json:"locked" gorm:"not null;default:false"`
	Metadata        json.RawMessage `json:"metadata,omitempty" gorm:"type:jsonb"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Cluster
func (Cluster) TableName() string {
	return "clusters"
}

// TokenPreview returns a redacted preview of the API token (first and last
// four characters). Full token values are never echoed back to callers.
func (c *Cluster) TokenPreview() string {
	if c.APIToken == "" {
		return ""
	}
	if len(c.APIToken) <= 8 {
		return "••••"
	}
	return c.APIToken[:4] + "…" + c.APIToken[len(c.APIToken)-4:]
}
