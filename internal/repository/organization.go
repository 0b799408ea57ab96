package repository

import (
	"train-console-backend/internal/database/models"
	apperrors "train-console-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetBySlug retrieves an organization by slug
func (r *OrganizationRepository) GetBySlug(slug string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Update updates an organization
func (r *OrganizationRepository) Update(org *models.Organization) error {
	return r.db.Save(org).Error
}

// SetPaymentCustomerID stores the payment provider customer reference
func (r *OrganizationRepository) SetPaymentCustomerID(id uuid.UUID, customerID string) error {
	return r.columnUpdate(id, "payment_customer_id", customerID)
}

// SetDefaultCluster stores the provisioned default cluster id
func (r *OrganizationRepository) SetDefaultCluster(id uuid.UUID, clusterID uuid.UUID) error {
	return r.columnUpdate(id, "default_cluster_id", clusterID)
}

// SetBillingAddress stores the billing address snapshot
func (r *OrganizationRepository) SetBillingAddress(id uuid.UUID, address []byte) error {
	return r.columnUpdate(id, "billing_address", address)
}

// AddPromoCredits applies an atomic increment (or decrement) to the promo
// credit balance. Callers that may drive the balance negative follow up with
// ClampPromoCredits; the transient negative value is self-healing.
func (r *OrganizationRepository) AddPromoCredits(id uuid.UUID, delta int) error {
	result := r.db.Model(&models.Organization{}).
		Where("id = ?", id).
		UpdateColumn("promo_credits", gorm.Expr("promo_credits + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClampPromoCredits corrects a negative balance back to the zero floor
func (r *OrganizationRepository) ClampPromoCredits(id uuid.UUID) error {
	return r.db.Model(&models.Organization{}).
		Where("id = ? AND promo_credits < 0", id).
		UpdateColumn("promo_credits", 0).Error
}

// ConsumePromoCredits atomically subtracts amount only when the balance
// covers it. Safe under concurrent launches against the same org: the
// condition and the subtraction are a single statement.
func (r *OrganizationRepository) ConsumePromoCredits(id uuid.UUID, amount int) error {
	result := r.db.Model(&models.Organization{}).
		Where("id = ? AND promo_credits >= ?", id, amount).
		UpdateColumn("promo_credits", gorm.Expr("promo_credits - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(id); err != nil {
			return err
		}
		return apperrors.ErrInsufficientCredits
	}
	return nil
}

// IncrementFreeJobs applies an atomic increment to the free-job counter
func (r *OrganizationRepository) IncrementFreeJobs(id uuid.UUID, delta int) error {
	result := r.db.Model(&models.Organization{}).
		Where("id = ?", id).
		UpdateColumn("free_jobs_consumed", gorm.Expr("free_jobs_consumed + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OrganizationRepository) columnUpdate(id uuid.UUID, column string, value interface{}) error {
	result := r.db.Model(&models.Organization{}).
		Where("id = ?", id).
		UpdateColumn(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
