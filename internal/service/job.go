package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"train-console-backend/internal/database/models"
	apperrors "train-console-backend/internal/errors"
	"train-console-backend/internal/logger"
	"train-console-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LaunchJobRequest represents a request to launch a training job
type LaunchJobRequest struct {
	ClusterID       uuid.UUID       `json:"cluster_id" validate:"required"`
	Method          string          `json:"method" validate:"required,max=100"`
	DatasetURI      string          `json:"dataset_uri" validate:"required,max=1000"`
	OutputURI       string          `json:"output_uri" validate:"max=1000"`
	Hyperparameters json.RawMessage `json:"hyperparameters,omitempty"`
}

// UpdateJobStatusRequest represents a job status transition
type UpdateJobStatusRequest struct {
	Status  models.JobStatus `json:"status" validate:"required"`
	Message string           `json:"message,omitempty" validate:"max=500"`
}

// JobResponse represents job data returned to clients
type JobResponse struct {
	ID              uuid.UUID              `json:"id"`
	OrganizationID  uuid.UUID              `json:"organization_id"`
	UserID          string                 `json:"user_id"`
	Status          models.JobStatus       `json:"status"`
	Method          string                 `json:"method"`
	DatasetURI      string                 `json:"dataset_uri"`
	OutputURI       string                 `json:"output_uri"`
	Hyperparameters json.RawMessage        `json:"hyperparameters,omitempty"`
	ClusterID       uuid.UUID              `json:"cluster_id"`
	ClusterName     string                 `json:"cluster_name"`
	ClusterProvider models.ClusterProvider `json:"cluster_provider"`
	ClusterKind     models.ClusterKind     `json:"cluster_kind"`
	Billing         *models.BillingRecord  `json:"billing,omitempty"`
	StatusHistory   []models.StatusEvent   `json:"status_history"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// JobListResponse represents a paginated job listing
type JobListResponse struct {
	Jobs     []JobResponse `json:"jobs"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// JobService manages the training-job lifecycle. Launch follows the
// charge-before-admit policy: the billing side effect is committed before the
// job row is created, and compensated if creation fails.
type JobService struct {
	jobRepo        repository.TrainingJobRepositoryInterface
	clusterService ClusterServiceInterface
	billingService BillingServiceInterface
	validator      *validator.Validate
	log            *logger.Logger
}

// NewJobService creates a new job service
func NewJobService(
	jobRepo repository.TrainingJobRepositoryInterface,
	clusterService ClusterServiceInterface,
	billingService BillingServiceInterface,
) *JobService {
	return &JobService{
		jobRepo:        jobRepo,
		clusterService: clusterService,
		billingService: billingService,
		validator:      validator.New(),
		log:            logger.New(),
	}
}

// Launch validates, bills and admits a training job. A job is never
// observable without its billing settled: plan, commit, create, finalize, in
// that order, with compensation when creation fails after commit.
func (s *JobService) Launch(ctx context.Context, org *models.Organization, userID string, req *LaunchJobRequest) (*JobResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if err := validateDatasetURI(req.DatasetURI); err != nil {
		return nil, err
	}

	cluster, err := s.clusterService.GetModel(org.ID, req.ClusterID)
	if err != nil {
		return nil, err
	}

	plan, err := s.billingService.PlanJobCharge(ctx, org, cluster)
	if err != nil {
		return nil, err
	}

	// The job id is fixed before commit so the pending intent already points
	// at the job it pays for. The recovery sweep uses that link.
	jobID := uuid.New()
	intent, err := s.billingService.CommitJobCharge(ctx, org, jobID, plan)
	if err != nil {
		return nil, err
	}

	outputURI := req.OutputURI
	if outputURI == "" {
		outputURI = defaultOutputURI(org, jobID)
	}

	job := &models.TrainingJob{
		BaseModel:       models.BaseModel{ID: jobID},
		OrganizationID:  org.ID,
		UserID:          userID,
		Status:          models.JobStatusQueued,
		Method:          req.Method,
		DatasetURI:      req.DatasetURI,
		OutputURI:       outputURI,
		Hyperparameters: req.Hyperparameters,
		ClusterID:       cluster.ID,
		ClusterName:     cluster.Name,
		ClusterProvider: cluster.Provider,
		ClusterKind:     cluster.Kind,
	}
	if err := job.SetBillingRecord(intent.Record()); err != nil {
		return nil, fmt.Errorf("failed to encode billing record: %w", err)
	}
	if err := job.AppendHistory(models.StatusEvent{
		Status:  models.JobStatusQueued,
		At:      time.Now().UTC(),
		Message: "job created",
	}); err != nil {
		return nil, fmt.Errorf("failed to seed status history: %w", err)
	}

	if err := s.jobRepo.Create(job); err != nil {
		if compErr := s.billingService.CompensateIntent(ctx, intent.ID); compErr != nil {
			s.log.WithField("intent_id", intent.ID).
				Errorf("failed to compensate after job creation failure: %v", compErr)
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if err := s.billingService.FinalizeIntent(intent.ID); err != nil {
		// The job exists and carries its billing record; the sweep will
		// finalize the intent through the job link.
		s.log.WithField("intent_id", intent.ID).
			Warnf("failed to finalize billing intent: %v", err)
	}

	s.log.WithFields(map[string]interface{}{
		"organization_id": org.ID,
		"job_id":          job.ID,
		"billing_source":  intent.Source,
	}).Info("launched training job")

	return s.toResponse(job)
}

// List returns the org's jobs, newest first. Org admins and global admins see
// every job; standard members see only their own.
func (s *JobService) List(orgID uuid.UUID, userID string, role models.MembershipRole, isGlobalAdmin bool, page, pageSize int) (*JobListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var (
		jobs  []models.TrainingJob
		total int64
		err   error
	)
	if role == models.MembershipRoleAdmin || isGlobalAdmin {
		jobs, total, err = s.jobRepo.GetByOrganizationID(orgID, pageSize, offset)
	} else {
		jobs, total, err = s.jobRepo.GetByOrganizationAndUser(orgID, userID, pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	responses := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		resp, err := s.toResponse(&jobs[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return &JobListResponse{
		Jobs:     responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Get returns a single job. The same visibility filter as List applies:
// standard members cannot see other members' jobs, and a filtered job reads
// as not found.
func (s *JobService) Get(orgID, jobID uuid.UUID, userID string, role models.MembershipRole, isGlobalAdmin bool) (*JobResponse, error) {
	job, err := s.getScoped(orgID, jobID)
	if err != nil {
		return nil, err
	}
	if role != models.MembershipRoleAdmin && !isGlobalAdmin && job.UserID != userID {
		return nil, apperrors.ErrJobNotFound
	}
	return s.toResponse(job)
}

// UpdateStatus applies a state-machine transition and appends one history
// entry. Transitions the state diagram does not allow are rejected. The same
// visibility filter as Get applies: a standard member cannot transition
// another member's job, and a filtered job reads as not found.
func (s *JobService) UpdateStatus(orgID, jobID uuid.UUID, userID string, role models.MembershipRole, isGlobalAdmin bool, req *UpdateJobStatusRequest) (*JobResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be one of: queued, running, succeeded, failed, cancelled")
	}

	job, err := s.getScoped(orgID, jobID)
	if err != nil {
		return nil, err
	}
	if role != models.MembershipRoleAdmin && !isGlobalAdmin && job.UserID != userID {
		return nil, apperrors.ErrJobNotFound
	}
	if !job.Status.CanTransitionTo(req.Status) {
		return nil, apperrors.NewInvalidTransitionError(string(job.Status), string(req.Status))
	}

	job.Status = req.Status
	if err := job.AppendHistory(models.StatusEvent{
		Status:  req.Status,
		At:      time.Now().UTC(),
		Message: req.Message,
	}); err != nil {
		return nil, fmt.Errorf("failed to append status history: %w", err)
	}
	if err := s.jobRepo.Update(job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"job_id": job.ID,
		"status": job.Status,
	}).Info("job status updated")

	return s.toResponse(job)
}

func (s *JobService) getScoped(orgID, jobID uuid.UUID) (*models.TrainingJob, error) {
	job, err := s.jobRepo.GetByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job.OrganizationID != orgID {
		return nil, apperrors.ErrJobNotFound
	}
	return job, nil
}

func (s *JobService) toResponse(job *models.TrainingJob) (*JobResponse, error) {
	billing, err := job.BillingRecord()
	if err != nil {
		return nil, fmt.Errorf("failed to decode billing record: %w", err)
	}
	history, err := job.History()
	if err != nil {
		return nil, fmt.Errorf("failed to decode status history: %w", err)
	}
	return &JobResponse{
		ID:              job.ID,
		OrganizationID:  job.OrganizationID,
		UserID:          job.UserID,
		Status:          job.Status,
		Method:          job.Method,
		DatasetURI:      job.DatasetURI,
		OutputURI:       job.OutputURI,
		Hyperparameters: job.Hyperparameters,
		ClusterID:       job.ClusterID,
		ClusterName:     job.ClusterName,
		ClusterProvider: job.ClusterProvider,
		ClusterKind:     job.ClusterKind,
		Billing:         billing,
		StatusHistory:   history,
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
	}, nil
}

// validateDatasetURI accepts http(s) URLs and the two recognized
// object-store schemes
func validateDatasetURI(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return apperrors.NewValidationError("dataset_uri", "must be a valid URI")
	}
	switch u.Scheme {
	case "http", "https", "s3", "gs":
	default:
		return apperrors.NewValidationError("dataset_uri", "scheme must be one of: http, https, s3, gs")
	}
	if u.Host == "" {
		return apperrors.NewValidationError("dataset_uri", "must include a host or bucket")
	}
	return nil
}

// defaultOutputURI places results under the org's prefix in the shared
// artifact bucket
func defaultOutputURI(org *models.Organization, jobID uuid.UUID) string {
	return fmt.Sprintf("s3://train-console-artifacts/%s/%s", org.Slug, jobID)
}
