package testutils

import (
	"time"

	"train-console-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:             "Test Organization",
		Slug:             "test-organization-" + id.String()[:8],
		PromoCredits:     0,
		FreeJobsConsumed: 0,
	}
}

// WithPromoCredits sets a custom promo credit balance
func (f *OrganizationFactory) WithPromoCredits(credits int) *models.Organization {
	org := f.Create()
	org.PromoCredits = credits
	return org
}

// WithFreeJobsConsumed sets the free-job counter
func (f *OrganizationFactory) WithFreeJobsConsumed(consumed int) *models.Organization {
	org := f.Create()
	org.FreeJobsConsumed = consumed
	return org
}

// WithCustomer attaches a payment-provider customer reference
func (f *OrganizationFactory) WithCustomer(customerID string) *models.Organization {
	org := f.Create()
	org.PaymentCustomerID = customerID
	return org
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test Membership with default values
func (f *MembershipFactory) Create(orgID uuid.UUID) *models.Membership {
	id := uuid.New()
	return &models.Membership{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		UserID:         "user-" + id.String()[:8],
		Email:          "user-" + id.String()[:8] + "@example.com",
		Role:           models.MembershipRoleStandard,
	}
}

// Admin creates a test admin Membership
func (f *MembershipFactory) Admin(orgID uuid.UUID) *models.Membership {
	membership := f.Create(orgID)
	membership.Role = models.MembershipRoleAdmin
	return membership
}

// ClusterFactory provides methods to create test Cluster data
type ClusterFactory struct{}

// NewClusterFactory creates a new ClusterFactory
func NewClusterFactory() *ClusterFactory {
	return &ClusterFactory{}
}

// Create creates a test customer-owned Cluster with default values
func (f *ClusterFactory) Create(orgID uuid.UUID) *models.Cluster {
	return &models.Cluster{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:  orgID,
		Name:            "Test Cluster",
		Provider:        models.ClusterProviderKubernetes,
		APIBaseURL:      "https://cluster.example.com",
		APIToken:        "tok-1234567890abcdef",
		Kind:            models.ClusterKindCustomer,
		RequiresPayment: false,
		OwnedBy:         models.ClusterOwnerCustomer,
		FreeJobLimit:    0,
		Locked:          false,
	}
}

// Managed creates a test platform-owned managed Cluster
func (f *ClusterFactory) Managed(orgID uuid.UUID) *models.Cluster {
	cluster := f.Create(orgID)
	cluster.Name = "Managed Training Cluster"
	cluster.Kind = models.ClusterKindManaged
	cluster.OwnedBy = models.ClusterOwnerPlatform
	cluster.RequiresPayment = true
	cluster.Locked = true
	return cluster
}

// TrainingJobFactory provides methods to create test TrainingJob data
type TrainingJobFactory struct{}

// NewTrainingJobFactory creates a new TrainingJobFactory
func NewTrainingJobFactory() *TrainingJobFactory {
	return &TrainingJobFactory{}
}

// Create creates a queued test TrainingJob with default values
func (f *TrainingJobFactory) Create(orgID uuid.UUID, userID string, cluster *models.Cluster) *models.TrainingJob {
	id := uuid.New()
	job := &models.TrainingJob{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:  orgID,
		UserID:          userID,
		Status:          models.JobStatusQueued,
		Method:          "sft",
		DatasetURI:      "s3://datasets/train.jsonl",
		OutputURI:       "s3://train-console-artifacts/test/" + id.String(),
		ClusterID:       cluster.ID,
		ClusterName:     cluster.Name,
		ClusterProvider: cluster.Provider,
		ClusterKind:     cluster.Kind,
	}
	_ = job.SetBillingRecord(&models.BillingRecord{
		Source:     models.BillingSourceCustomerFreeTier,
		Currency:   "usd",
		RecordedAt: time.Now().UTC(),
	})
	_ = job.AppendHistory(models.StatusEvent{
		Status:  models.JobStatusQueued,
		At:      time.Now().UTC(),
		Message: "job created",
	})
	return job
}

// WithStatus sets the job status and appends a matching history entry
func (f *TrainingJobFactory) WithStatus(orgID uuid.UUID, userID string, cluster *models.Cluster, status models.JobStatus) *models.TrainingJob {
	job := f.Create(orgID, userID, cluster)
	job.Status = status
	_ = job.AppendHistory(models.StatusEvent{Status: status, At: time.Now().UTC()})
	return job
}

// BillingIntentFactory provides methods to create test BillingIntent data
type BillingIntentFactory struct{}

// NewBillingIntentFactory creates a new BillingIntentFactory
func NewBillingIntentFactory() *BillingIntentFactory {
	return &BillingIntentFactory{}
}

// Pending creates a pending test BillingIntent linked to a job id
func (f *BillingIntentFactory) Pending(orgID, jobID uuid.UUID, source models.BillingSource) *models.BillingIntent {
	return &models.BillingIntent{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		JobID:          &jobID,
		Source:         source,
		Currency:       "usd",
		State:          models.IntentStatePending,
		RecordedAt:     time.Now().UTC(),
	}
}
