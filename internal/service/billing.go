package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"train-console-backend/internal/config"
	"train-console-backend/internal/database/models"
	apperrors "train-console-backend/internal/errors"
	"train-console-backend/internal/logger"
	"train-console-backend/internal/payments"
	"train-console-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// promoCodes is the fixed code to credit-amount table. Codes are matched
// case-insensitively after trimming.
var promoCodes = map[string]int{
	"LAUNCHPAD": 5,
	"TRAINFREE": 1,
	"WELCOME10": 10,
}

// BillingPlan is the pre-commit decision of how a job will be paid for.
// Exactly one mode applies to a given (org, cluster) pair.
type BillingPlan struct {
	Mode                  models.BillingSource `json:"mode"`
	AmountUsd             float64              `json:"amount_usd"`
	PromoCreditsToConsume int                  `json:"promo_credits_to_consume"`
	FreeTierIncrement     int                  `json:"free_tier_increment"`
	RequiresCharge        bool                 `json:"requires_charge"`
}

// BillingOverviewResponse summarizes the org's billing position
type BillingOverviewResponse struct {
	PromoCredits                int                      `json:"promo_credits"`
	FreeJobsRemaining           int                      `json:"free_jobs_remaining"`
	FreeJobLimit                int                      `json:"free_job_limit"`
	PaymentMethods              []payments.PaymentMethod `json:"payment_methods"`
	MissingDefaultPaymentMethod bool                     `json:"missing_default_payment_method"`
	BillingEnabled              bool                     `json:"billing_enabled"`
	BillingAddress              json.RawMessage          `json:"billing_address,omitempty"`
}

// SetupIntentResponse carries the client secret the frontend needs to collect
// a card
type SetupIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// BillingService implements the charge-before-admit billing engine. A nil
// provider means the deployment operates without billing and every job rides
// the customer free tier.
type BillingService struct {
	orgRepo    repository.OrganizationRepositoryInterface
	intentRepo repository.BillingIntentRepositoryInterface
	jobRepo    repository.TrainingJobRepositoryInterface
	provider   payments.Provider
	cfg        *config.Config
	validator  *validator.Validate
	log        *logger.Logger
}

// NewBillingService creates a new billing service. Pass a nil provider to run
// without a payment integration.
func NewBillingService(
	orgRepo repository.OrganizationRepositoryInterface,
	intentRepo repository.BillingIntentRepositoryInterface,
	jobRepo repository.TrainingJobRepositoryInterface,
	provider payments.Provider,
	cfg *config.Config,
) *BillingService {
	return &BillingService{
		orgRepo:    orgRepo,
		intentRepo: intentRepo,
		jobRepo:    jobRepo,
		provider:   provider,
		cfg:        cfg,
		validator:  validator.New(),
		log:        logger.New(),
	}
}

// PlanJobCharge decides how a job will be paid for. The rules form an
// ordered, mutually-exclusive sequence; the first match wins. Planning never
// mutates counters or creates charges, so a failed launch after planning
// costs the org nothing.
func (s *BillingService) PlanJobCharge(ctx context.Context, org *models.Organization, cluster *models.Cluster) (*BillingPlan, error) {
	if s.provider == nil {
		return &BillingPlan{
			Mode:              models.BillingSourceCustomerFreeTier,
			FreeTierIncrement: 1,
		}, nil
	}

	if err := s.ensureCustomer(ctx, org); err != nil {
		return nil, err
	}

	methods, err := s.provider.ListPaymentMethods(ctx, org.PaymentCustomerID)
	if err != nil {
		return nil, err
	}
	if !hasDefaultMethod(methods) {
		return nil, apperrors.ErrNoDefaultPaymentMethod
	}

	if org.PromoCredits > 0 {
		return &BillingPlan{
			Mode:                  models.BillingSourcePromoCredit,
			PromoCreditsToConsume: 1,
		}, nil
	}

	if cluster.Kind == models.ClusterKindCustomer && org.FreeJobsConsumed < s.cfg.FreeJobLimit {
		return &BillingPlan{
			Mode:              models.BillingSourceCustomerFreeTier,
			FreeTierIncrement: 1,
		}, nil
	}

	if cluster.Kind == models.ClusterKindManaged && !cluster.RequiresPayment {
		return &BillingPlan{Mode: models.BillingSourceManagedFreeTier}, nil
	}

	return &BillingPlan{
		Mode:           models.BillingSourceCard,
		AmountUsd:      s.cfg.JobFlatRateUsd,
		RequiresCharge: true,
	}, nil
}

// CommitJobCharge executes exactly the side effect the plan implies and
// returns the pending billing intent. The intent is persisted before any side
// effect runs so a crash mid-commit is recoverable; the job launch path
// finalizes it once the job row exists.
func (s *BillingService) CommitJobCharge(ctx context.Context, org *models.Organization, jobID uuid.UUID, plan *BillingPlan) (*models.BillingIntent, error) {
	intent := &models.BillingIntent{
		OrganizationID:   org.ID,
		JobID:            &jobID,
		Source:           plan.Mode,
		AmountUsd:        plan.AmountUsd,
		Currency:         s.cfg.BillingCurrency,
		PromoCreditsUsed: plan.PromoCreditsToConsume,
		State:            models.IntentStatePending,
		RecordedAt:       time.Now().UTC(),
	}
	if err := s.intentRepo.Create(intent); err != nil {
		return nil, fmt.Errorf("failed to record billing intent: %w", err)
	}

	switch plan.Mode {
	case models.BillingSourcePromoCredit:
		if err := s.orgRepo.ConsumePromoCredits(org.ID, plan.PromoCreditsToConsume); err != nil {
			s.abandonIntent(intent)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrOrganizationNotFound
			}
			return nil, err
		}

	case models.BillingSourceCustomerFreeTier:
		if err := s.orgRepo.IncrementFreeJobs(org.ID, plan.FreeTierIncrement); err != nil {
			s.abandonIntent(intent)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrOrganizationNotFound
			}
			return nil, fmt.Errorf("failed to increment free jobs: %w", err)
		}

	case models.BillingSourceManagedFreeTier:
		// Nothing to do. The cluster owner absorbs the cost.

	case models.BillingSourceCard:
		chargeCtx, cancel := context.WithTimeout(ctx, s.chargeTimeout())
		defer cancel()
		charge, err := s.provider.CreateCharge(chargeCtx, org.PaymentCustomerID,
			usdToCents(plan.AmountUsd), s.cfg.BillingCurrency, chargeDescription(jobID))
		if err != nil {
			// A timed-out charge may have gone through on the provider side.
			// Leave the intent pending so the sweep reconciles it instead of
			// assuming no charge happened.
			s.log.WithField("intent_id", intent.ID).
				Warnf("charge attempt failed, intent left pending for reconciliation: %v", err)
			return nil, err
		}
		intent.ChargeID = charge.ID
		if err := s.intentRepo.Update(intent); err != nil {
			return nil, fmt.Errorf("failed to record charge on intent: %w", err)
		}
	}

	return intent, nil
}

// FinalizeIntent marks an intent committed once the job record exists
func (s *BillingService) FinalizeIntent(intentID uuid.UUID) error {
	intent, err := s.getIntent(intentID)
	if err != nil {
		return err
	}
	if intent.State != models.IntentStatePending {
		return nil
	}
	intent.State = models.IntentStateCommitted
	if err := s.intentRepo.Update(intent); err != nil {
		return fmt.Errorf("failed to finalize billing intent: %w", err)
	}
	return nil
}

// CompensateIntent undoes the side effect of a pending intent: refund the
// charge, restore the promo credit, or roll back the free-tier counter. The
// counter rollback is the one place freeJobsConsumed decreases; everywhere
// else the counter only grows. A card intent with no recorded charge id is
// reconciled against the provider first, because the charge attempt may have
// landed even though the response never arrived. Idempotent; compensating a
// non-pending intent is a no-op.
func (s *BillingService) CompensateIntent(ctx context.Context, intentID uuid.UUID) error {
	intent, err := s.getIntent(intentID)
	if err != nil {
		return err
	}
	if intent.State != models.IntentStatePending {
		return nil
	}

	switch intent.Source {
	case models.BillingSourcePromoCredit:
		if err := s.orgRepo.AddPromoCredits(intent.OrganizationID, intent.PromoCreditsUsed); err != nil {
			return fmt.Errorf("failed to restore promo credits: %w", err)
		}
	case models.BillingSourceCustomerFreeTier:
		if err := s.orgRepo.IncrementFreeJobs(intent.OrganizationID, -1); err != nil {
			return fmt.Errorf("failed to roll back free-job counter: %w", err)
		}
	case models.BillingSourceCard:
		chargeID := intent.ChargeID
		if chargeID == "" {
			chargeID, err = s.findUnrecordedCharge(ctx, intent)
			if err != nil {
				return err
			}
		}
		if chargeID != "" {
			if err := s.provider.RefundCharge(ctx, chargeID); err != nil {
				return err
			}
		}
	}

	intent.State = models.IntentStateCompensated
	if err := s.intentRepo.Update(intent); err != nil {
		return fmt.Errorf("failed to mark intent compensated: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"intent_id": intent.ID,
		"source":    intent.Source,
	}).Info("compensated billing intent")
	return nil
}

// SweepOrphanedIntents reconciles pending intents older than the given age.
// An intent whose job row exists is finalized (the crash happened between job
// creation and finalization); one whose job never materialized is
// compensated. Returns the number of intents reconciled.
func (s *BillingService) SweepOrphanedIntents(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	intents, err := s.intentRepo.GetPendingOlderThan(cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending intents: %w", err)
	}

	reconciled := 0
	for i := range intents {
		intent := &intents[i]
		if intent.JobID != nil {
			if _, err := s.jobRepo.GetByID(*intent.JobID); err == nil {
				if err := s.FinalizeIntent(intent.ID); err != nil {
					s.log.WithField("intent_id", intent.ID).
						Warnf("sweep failed to finalize intent: %v", err)
					continue
				}
				reconciled++
				continue
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				s.log.WithField("intent_id", intent.ID).
					Warnf("sweep failed to look up job: %v", err)
				continue
			}
		}
		if err := s.CompensateIntent(ctx, intent.ID); err != nil {
			s.log.WithField("intent_id", intent.ID).
				Warnf("sweep failed to compensate intent: %v", err)
			continue
		}
		reconciled++
	}
	return reconciled, nil
}

// GetOverview reports the org's billing position: credits, remaining free
// jobs, on-file payment methods and whether a default card is missing
func (s *BillingService) GetOverview(ctx context.Context, org *models.Organization) (*BillingOverviewResponse, error) {
	overview := &BillingOverviewResponse{
		PromoCredits:      org.PromoCredits,
		FreeJobsRemaining: maxInt(0, s.cfg.FreeJobLimit-org.FreeJobsConsumed),
		FreeJobLimit:      s.cfg.FreeJobLimit,
		PaymentMethods:    []payments.PaymentMethod{},
		BillingEnabled:    s.provider != nil,
		BillingAddress:    org.BillingAddress,
	}
	if s.provider == nil {
		return overview, nil
	}

	if err := s.ensureCustomer(ctx, org); err != nil {
		return nil, err
	}
	methods, err := s.provider.ListPaymentMethods(ctx, org.PaymentCustomerID)
	if err != nil {
		return nil, err
	}
	overview.PaymentMethods = methods
	overview.MissingDefaultPaymentMethod = !hasDefaultMethod(methods)
	return overview, nil
}

// ApplyPromoCode credits the org from the fixed promo table. Codes match
// case-insensitively; unknown codes fail without touching the balance.
func (s *BillingService) ApplyPromoCode(orgID uuid.UUID, code string) (*models.Organization, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	credits, ok := promoCodes[normalized]
	if !ok {
		return nil, apperrors.ErrInvalidPromoCode
	}

	if err := s.orgRepo.AddPromoCredits(orgID, credits); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to apply promo code: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"organization_id": orgID,
		"code":            normalized,
		"credits":         credits,
	}).Info("applied promo code")

	org, err := s.orgRepo.GetByID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

// CreateSetupIntent starts card collection for the org's customer record
func (s *BillingService) CreateSetupIntent(ctx context.Context, org *models.Organization) (*SetupIntentResponse, error) {
	if err := s.requireProvider(); err != nil {
		return nil, err
	}
	if err := s.ensureCustomer(ctx, org); err != nil {
		return nil, err
	}
	intent, err := s.provider.CreateSetupIntent(ctx, org.PaymentCustomerID)
	if err != nil {
		return nil, err
	}
	return &SetupIntentResponse{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

// AttachPaymentMethod attaches a collected card to the org's customer record
func (s *BillingService) AttachPaymentMethod(ctx context.Context, org *models.Organization, paymentMethodID string) error {
	if err := s.requireProvider(); err != nil {
		return err
	}
	if err := s.ensureCustomer(ctx, org); err != nil {
		return err
	}
	return s.provider.AttachPaymentMethod(ctx, org.PaymentCustomerID, paymentMethodID)
}

// DetachPaymentMethod removes a card from the org's customer record
func (s *BillingService) DetachPaymentMethod(ctx context.Context, org *models.Organization, paymentMethodID string) error {
	if err := s.requireProvider(); err != nil {
		return err
	}
	return s.provider.DetachPaymentMethod(ctx, paymentMethodID)
}

// SetDefaultPaymentMethod marks a card as the org's default
func (s *BillingService) SetDefaultPaymentMethod(ctx context.Context, org *models.Organization, paymentMethodID string) error {
	if err := s.requireProvider(); err != nil {
		return err
	}
	if err := s.ensureCustomer(ctx, org); err != nil {
		return err
	}
	return s.provider.SetDefaultPaymentMethod(ctx, org.PaymentCustomerID, paymentMethodID)
}

// UpdateBillingAddress stores the billing address on the org and forwards it
// to the payment provider when one is configured
func (s *BillingService) UpdateBillingAddress(ctx context.Context, org *models.Organization, req *models.BillingAddressInput) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	raw, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode billing address: %w", err)
	}
	if err := s.orgRepo.SetBillingAddress(org.ID, raw); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to store billing address: %w", err)
	}
	org.BillingAddress = raw

	if s.provider == nil {
		return nil
	}
	if err := s.ensureCustomer(ctx, org); err != nil {
		return err
	}
	return s.provider.UpdateAddress(ctx, org.PaymentCustomerID, payments.Address{
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
}

// ensureCustomer creates the payment-provider customer record on first need
// and persists the reference on the org
func (s *BillingService) ensureCustomer(ctx context.Context, org *models.Organization) error {
	if org.PaymentCustomerID != "" {
		return nil
	}
	customer, err := s.provider.CreateCustomer(ctx, org.Name, "")
	if err != nil {
		return err
	}
	if err := s.orgRepo.SetPaymentCustomerID(org.ID, customer.ID); err != nil {
		return fmt.Errorf("failed to store payment customer reference: %w", err)
	}
	org.PaymentCustomerID = customer.ID
	return nil
}

func (s *BillingService) requireProvider() error {
	if s.provider == nil {
		return apperrors.NewPolicyError("billing is not enabled for this deployment")
	}
	return nil
}

// findUnrecordedCharge asks the provider whether a card intent's charge
// landed even though no charge id was recorded. The description embeds the
// job id the intent was created with, which makes the charge findable.
func (s *BillingService) findUnrecordedCharge(ctx context.Context, intent *models.BillingIntent) (string, error) {
	if s.provider == nil || intent.JobID == nil {
		return "", nil
	}
	org, err := s.orgRepo.GetByID(intent.OrganizationID)
	if err != nil {
		return "", fmt.Errorf("failed to get organization for charge lookup: %w", err)
	}
	if org.PaymentCustomerID == "" {
		return "", nil
	}
	charge, err := s.provider.FindCharge(ctx, org.PaymentCustomerID, chargeDescription(*intent.JobID))
	if err != nil {
		return "", err
	}
	if charge == nil {
		return "", nil
	}
	s.log.WithFields(map[string]interface{}{
		"intent_id": intent.ID,
		"charge_id": charge.ID,
	}).Warn("recovered charge that was never recorded on its intent")
	return charge.ID, nil
}

func chargeDescription(jobID uuid.UUID) string {
	return "training job " + jobID.String()
}

func (s *BillingService) getIntent(intentID uuid.UUID) (*models.BillingIntent, error) {
	intent, err := s.intentRepo.GetByID(intentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillingIntentNotFound
		}
		return nil, fmt.Errorf("failed to get billing intent: %w", err)
	}
	return intent, nil
}

// abandonIntent marks an intent compensated after its side effect failed to
// apply. Nothing external happened, so there is nothing to undo.
func (s *BillingService) abandonIntent(intent *models.BillingIntent) {
	intent.State = models.IntentStateCompensated
	if err := s.intentRepo.Update(intent); err != nil {
		s.log.WithField("intent_id", intent.ID).
			Warnf("failed to abandon billing intent: %v", err)
	}
}

func (s *BillingService) chargeTimeout() time.Duration {
	if s.cfg.ChargeTimeoutSec <= 0 {
		return 20 * time.Second
	}
	return time.Duration(s.cfg.ChargeTimeoutSec) * time.Second
}

func hasDefaultMethod(methods []payments.PaymentMethod) bool {
	for _, m := range methods {
		if m.IsDefault {
			return true
		}
	}
	return false
}

func usdToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
