package repository

import (
	"time"

	"train-console-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetBySlug(slug string) (*models.Organization, error)
	Update(org *models.Organization) error
	SetPaymentCustomerID(id uuid.UUID, customerID string) error
	SetDefaultCluster(id uuid.UUID, clusterID uuid.UUID) error
	SetBillingAddress(id uuid.UUID, address []byte) error
	AddPromoCredits(id uuid.UUID, delta int) error
	ClampPromoCredits(id uuid.UUID) error
	ConsumePromoCredits(id uuid.UUID, amount int) error
	IncrementFreeJobs(id uuid.UUID, delta int) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.Membership) error
	GetByUserID(userID string) (*models.Membership, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.Membership, error)
}

// ClusterRepositoryInterface defines the interface for cluster repository operations
type ClusterRepositoryInterface interface {
	Create(cluster *models.Cluster) error
	GetByID(id uuid.UUID) (*models.Cluster, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.Cluster, error)
	GetPlatformOwned(orgID uuid.UUID) (*models.Cluster, error)
	Update(cluster *models.Cluster) error
	Delete(id uuid.UUID) error
}

// TrainingJobRepositoryInterface defines the interface for training job repository operations
type TrainingJobRepositoryInterface interface {
	Create(job *models.TrainingJob) error
	GetByID(id uuid.UUID) (*models.TrainingJob, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.TrainingJob, int64, error)
	GetByOrganizationAndUser(orgID uuid.UUID, userID string, limit, offset int) ([]models.TrainingJob, int64, error)
	Update(job *models.TrainingJob) error
}

// BillingIntentRepositoryInterface defines the interface for billing intent repository operations
type BillingIntentRepositoryInterface interface {
	Create(intent *models.BillingIntent) error
	GetByID(id uuid.UUID) (*models.BillingIntent, error)
	Update(intent *models.BillingIntent) error
	GetPendingOlderThan(cutoff time.Time) ([]models.BillingIntent, error)
}
