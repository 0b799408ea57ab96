package models

import (
	"time"

	"github.com/google/uuid"
)

// BillingRecord is the immutable receipt of how a job was actually paid for.
// It is written onto the job at admission and mirrored by the committed
// billing intent.
type BillingRecord struct {
	Source           BillingSource `json:"source"`
	AmountUsd        float64       `json:"amount_usd"`
	Currency         string        `json:"currency"`
	PromoCreditsUsed int           `json:"promo_credits_used,omitempty"`
	ChargeID         string        `json:"charge_id,omitempty"`
	RecordedAt       time.Time     `json:"recorded_at"`
}

// BillingIntent is the durable saga record for the charge-before-admit
// workflow. An intent is persisted pending before any side effect runs,
// finalized with the job id once the job row exists, and compensated
// (refund or counter restore) when job creation fails. Pending intents left
// behind by a crash are reconciled by a periodic sweep.
type BillingIntent struct {
	BaseModel
	OrganizationID   uuid.UUID     `json:"organization_id" gorm:"type:uuid;not null;index"`
	JobID            *uuid.UUID    `json:"job_id,omitempty" gorm:"type:uuid;index"`
	Source           BillingSource `json:"source" gorm:"type:varchar(40);not null"`
	AmountUsd        float64       `json:"amount_usd" gorm:"not null;default:0"`
	Currency         string        `json:"currency" gorm:"size:10;not null;default:'usd'"`
	PromoCreditsUsed int           `json:"promo_credits_used" gorm:"not null;default:0"`
	ChargeID         string        `json:"charge_id" gorm:"size:120"`
	State            IntentState   `json:"state" gorm:"type:varchar(20);not null;default:'pending';index"`
	RecordedAt       time.Time     `json:"recorded_at"`
}

// TableName returns the table name for BillingIntent
func (BillingIntent) TableName() string {
	return "billing_intents"
}

// Record converts a committed intent into the job-facing billing record
func (i *BillingIntent) Record() *BillingRecord {
	return &BillingRecord{
		Source:           i.Source,
		AmountUsd:        i.AmountUsd,
		Currency:         i.Currency,
		PromoCreditsUsed: i.PromoCreditsUsed,
		ChargeID:         i.ChargeID,
		RecordedAt:       i.RecordedAt,
	}
}
