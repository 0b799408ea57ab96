package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// StatusEvent is one entry in a job's append-only status history
type StatusEvent struct {
	Status  JobStatus `json:"status"`
	At      time.Time `json:"at"`
	Message string    `json:"message,omitempty"`
}

// TrainingJob represents an admitted model-training job. Cluster fields are a
// denormalized snapshot taken at creation so later cluster edits never change
// what a job ran against. The billing record is written once at admission and
// never mutated.
type TrainingJob struct {
	BaseModel
	OrganizationID  uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID          string          `json:"user_id" gorm:"not null;size:120;index" validate:"required,max=120"`
	Status          JobStatus       `json:"status" gorm:"type:varchar(20);not null;default:'queued'"`
	Method          string          `json:"method" gorm:"not null;size:100" validate:"required,max=100"`
	DatasetURI      string          `json:"dataset_uri" gorm:"not null;size:1000" validate:"required,max=1000"`
	OutputURI       string          `json:"output_uri" gorm:"size:1000"`
	Hyperparameters json.RawMessage `json:"hyperparameters,omitempty" gorm:"type:jsonb"`
	ClusterID       uuid.UUID       `json:"cluster_id" gorm:"type:uuid;not null"`
	ClusterName     string          `json:"cluster_name" gorm:"size:200"`
	ClusterProvider ClusterProvider `json:"cluster_provider" gorm:"type:varchar(40)"`
	ClusterKind     ClusterKind     `json:"cluster_kind" gorm:"type:varchar(20)"`
	Billing         json.RawMessage `json:"billing" gorm:"type:jsonb"`
	StatusHistory   json.RawMessage `json:"status_history" gorm:"type:jsonb"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TrainingJob
func (TrainingJob) TableName() string {
	return "training_jobs"
}

// History decodes the append-only status history
func (j *TrainingJob) History() ([]StatusEvent, error) {
	if len(j.StatusHistory) == 0 {
		return nil, nil
	}
	var events []StatusEvent
	if err := json.Unmarshal(j.StatusHistory, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// AppendHistory appends one status event to the history
func (j *TrainingJob) AppendHistory(event StatusEvent) error {
	events, err := j.History()
	if err != nil {
		return err
	}
	events = append(events, event)
	raw, err := json.Marshal(events)
	if err != nil {
		return err
	}
	j.StatusHistory = raw
	return nil
}

// BillingRecord decodes the immutable billing snapshot written at admission
func (j *TrainingJob) BillingRecord() (*BillingRecord, error) {
	if len(j.Billing) == 0 {
		return nil, nil
	}
	var record BillingRecord
	if err := json.Unmarshal(j.Billing, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// SetBillingRecord encodes the billing record onto the job
func (j *TrainingJob) SetBillingRecord(record *BillingRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	j.Billing = raw
	return nil
}
