package service

import (
	"context"
	"time"

	"train-console-backend/internal/auth"
	"train-console-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrgResolverServiceInterface defines the interface for tenant resolution
type OrgResolverServiceInterface interface {
	ResolveForUser(identity *auth.Identity) (*ResolveResult, error)
	IsGlobalAdmin(userID string) bool
	AdjustPromoCredits(orgID uuid.UUID, delta int) (*models.Organization, error)
	IncrementFreeJobs(orgID uuid.UUID, delta int) error
}

// ClusterServiceInterface defines the interface for the cluster registry
type ClusterServiceInterface interface {
	List(orgID uuid.UUID) ([]ClusterResponse, error)
	Get(orgID, id uuid.UUID) (*ClusterResponse, error)
	Create(orgID uuid.UUID, req *CreateClusterRequest) (*ClusterResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateClusterRequest) (*ClusterResponse, error)
	Delete(orgID, id uuid.UUID) error
	GetModel(orgID, id uuid.UUID) (*models.Cluster, error)
	EnsureDefaultCluster(org *models.Organization) (*models.Cluster, error)
}

// BillingServiceInterface defines the interface for the billing engine
type BillingServiceInterface interface {
	PlanJobCharge(ctx context.Context, org *models.Organization, cluster *models.Cluster) (*BillingPlan, error)
	CommitJobCharge(ctx context.Context, org *models.Organization, jobID uuid.UUID, plan *BillingPlan) (*models.BillingIntent, error)
	FinalizeIntent(intentID uuid.UUID) error
	CompensateIntent(ctx context.Context, intentID uuid.UUID) error
	SweepOrphanedIntents(ctx context.Context, olderThan time.Duration) (int, error)
	GetOverview(ctx context.Context, org *models.Organization) (*BillingOverviewResponse, error)
	ApplyPromoCode(orgID uuid.UUID, code string) (*models.Organization, error)
	CreateSetupIntent(ctx context.Context, org *models.Organization) (*SetupIntentResponse, error)
	AttachPaymentMethod(ctx context.Context, org *models.Organization, paymentMethodID string) error
	DetachPaymentMethod(ctx context.Context, org *models.Organization, paymentMethodID string) error
	SetDefaultPaymentMethod(ctx context.Context, org *models.Organization, paymentMethodID string) error
	UpdateBillingAddress(ctx context.Context, org *models.Organization, req *models.BillingAddressInput) error
}

// JobServiceInterface defines the interface for the job lifecycle manager
type JobServiceInterface interface {
	Launch(ctx context.Context, org *models.Organization, userID string, req *LaunchJobRequest) (*JobResponse, error)
	List(orgID uuid.UUID, userID string, role models.MembershipRole, isGlobalAdmin bool, page, pageSize int) (*JobListResponse, error)
	Get(orgID, jobID uuid.UUID, userID string, role models.MembershipRole, isGlobalAdmin bool) (*JobResponse, error)
	UpdateStatus(orgID, jobID uuid.UUID, userID string, role models.MembershipRole, isGlobalAdmin bool, req *UpdateJobStatusRequest) (*JobResponse, error)
}
