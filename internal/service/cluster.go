package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"train-console-backend/internal/config"
	"train-console-backend/internal/database/models"
	apperrors "train-console-backend/internal/errors"
	"train-console-backend/internal/logger"
	"train-console-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultClusterName is the display name of the platform-provisioned cluster
const DefaultClusterName = "Managed Training Cluster"

// CreateClusterRequest represents a request to register a cluster
type CreateClusterRequest struct {
	Name            string          `json:"name" validate:"required,max=200"`
	Provider        string          `json:"provider" validate:"required"`
	APIBaseURL      string          `json:"api_base_url" validate:"required,url,max=500"`
	APIToken        string          `json:"api_token" validate:"max=500"`
	Kind            string          `json:"kind" validate:"omitempty"`
	RequiresPayment bool            `json:"requires_payment"`
	FreeJobLimit    int             `json:"free_job_limit" validate:"min=0"`
	Metadata        json.RawMessage `json:"metadata,omitempty"`
}

// UpdateClusterRequest represents a request to update a cluster. Nil fields
// are left unchanged.
type UpdateClusterRequest struct {
	Name            *string         `json:"name,omitempty" validate:"omitempty,max=200"`
	APIBaseURL      *string         `json:"api_base_url,omitempty" validate:"omitempty,url,max=500"`
	APIToken        *string         `json:"api_token,omitempty" validate:"omitempty,max=500"`
	RequiresPayment *bool           `json:"requires_payment,omitempty"`
	FreeJobLimit    *int            `json:"free_job_limit,omitempty" validate:"omitempty,min=0"`
	Metadata        json.RawMessage `json:"metadata,omitempty"`
}

// ClusterResponse represents cluster data returned to clients. The API token
// never leaves the service; only a redacted preview is exposed.
type ClusterResponse struct {
	ID              uuid.UUID              `json:"id"`
	OrganizationID  uuid.UUID              `json:"organization_id"`
	Name            string                 `json:"name"`
	Provider        models.ClusterProvider `json:"provider"`
	APIBaseURL      string                 `json:"api_base_url"`
	APITokenPreview string                 `json:"api_token_preview,omitempty"`
	Kind            models.ClusterKind     `json:"kind"`
	RequiresPayment bool                   `json:"requires_payment"`
	OwnedBy         models.ClusterOwner    `json:"owned_by"`
	FreeJobLimit    int                    `json:"free_job_limit"`
	Locked          bool                   `json:"locked"`
	Metadata        json.RawMessage        `json:"metadata,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// ClusterService handles business logic for the cluster registry
type ClusterService struct {
	clusterRepo repository.ClusterRepositoryInterface
	cfg         *config.Config
	validator   *validator.Validate
	log         *logger.Logger
}

// NewClusterService creates a new cluster service
func NewClusterService(clusterRepo repository.ClusterRepositoryInterface, cfg *config.Config) *ClusterService {
	return &ClusterService{
		clusterRepo: clusterRepo,
		cfg:         cfg,
		validator:   validator.New(),
		log:         logger.New(),
	}
}

// List returns all clusters registered for the organization
func (s *ClusterService) List(orgID uuid.UUID) ([]ClusterResponse, error) {
	clusters, err := s.clusterRepo.GetByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clusters: %w", err)
	}
	responses := make([]ClusterResponse, len(clusters))
	for i := range clusters {
		responses[i] = *s.toResponse(&clusters[i])
	}
	return responses, nil
}

// Get returns a single cluster scoped to the organization
func (s *ClusterService) Get(orgID, id uuid.UUID) (*ClusterResponse, error) {
	cluster, err := s.GetModel(orgID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(cluster), nil
}

// GetModel returns the raw cluster model scoped to the organization. Used by
// the job launch path, which needs the full record for its snapshot.
func (s *ClusterService) GetModel(orgID, id uuid.UUID) (*models.Cluster, error) {
	cluster, err := s.clusterRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClusterNotFound
		}
		return nil, fmt.Errorf("failed to get cluster: %w", err)
	}
	if cluster.OrganizationID != orgID {
		return nil, apperrors.ErrClusterNotFound
	}
	return cluster, nil
}

// Create registers a customer-owned cluster for the organization
func (s *ClusterService) Create(orgID uuid.UUID, req *CreateClusterRequest) (*ClusterResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	provider := models.ClusterProvider(req.Provider)
	if !provider.IsValid() {
		return nil, apperrors.NewValidationError("provider", "must be one of: kubernetes, slurm, ray, custom")
	}
	kind := models.ClusterKind(req.Kind)
	if req.Kind == "" {
		kind = models.ClusterKindCustomer
	} else if !kind.IsValid() {
		return nil, apperrors.NewValidationError("kind", "must be one of: managed, customer")
	}

	cluster := &models.Cluster{
		OrganizationID:  orgID,
		Name:            req.Name,
		Provider:        provider,
		APIBaseURL:      normalizeBaseURL(req.APIBaseURL),
		APIToken:        req.APIToken,
		Kind:            kind,
		RequiresPayment: req.RequiresPayment,
		OwnedBy:         models.ClusterOwnerCustomer,
		FreeJobLimit:    req.FreeJobLimit,
		Locked:          false,
		Metadata:        req.Metadata,
	}
	if err := s.clusterRepo.Create(cluster); err != nil {
		return nil, fmt.Errorf("failed to create cluster: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"organization_id": orgID,
		"cluster_id":      cluster.ID,
	}).Info("registered cluster")

	return s.toResponse(cluster), nil
}

// Update modifies a cluster. Locked clusters reject changes to identity
// fields (name, endpoint, token); only metadata and billing knobs may change.
func (s *ClusterService) Update(orgID, id uuid.UUID, req *UpdateClusterRequest) (*ClusterResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	cluster, err := s.GetModel(orgID, id)
	if err != nil {
		return nil, err
	}

	if cluster.Locked && (req.Name != nil || req.APIBaseURL != nil || req.APIToken != nil) {
		return nil, apperrors.ErrClusterLocked
	}

	if req.Name != nil {
		cluster.Name = *req.Name
	}
	if req.APIBaseURL != nil {
		cluster.APIBaseURL = normalizeBaseURL(*req.APIBaseURL)
	}
	if req.APIToken != nil {
		cluster.APIToken = *req.APIToken
	}
	if req.RequiresPayment != nil {
		cluster.RequiresPayment = *req.RequiresPayment
	}
	if req.FreeJobLimit != nil {
		cluster.FreeJobLimit = *req.FreeJobLimit
	}
	if req.Metadata != nil {
		cluster.Metadata = req.Metadata
	}

	if err := s.clusterRepo.Update(cluster); err != nil {
		return nil, fmt.Errorf("failed to update cluster: %w", err)
	}
	return s.toResponse(cluster), nil
}

// Delete removes a cluster. The locked platform default can never be deleted.
func (s *ClusterService) Delete(orgID, id uuid.UUID) error {
	cluster, err := s.GetModel(orgID, id)
	if err != nil {
		return err
	}
	if cluster.Locked {
		return apperrors.ErrClusterLocked
	}
	if err := s.clusterRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete cluster: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"organization_id": orgID,
		"cluster_id":      id,
	}).Info("deleted cluster")
	return nil
}

// EnsureDefaultCluster provisions the platform-managed default cluster for an
// organization when the deployment has one configured. Idempotent: an org
// gets at most one platform-owned cluster.
func (s *ClusterService) EnsureDefaultCluster(org *models.Organization) (*models.Cluster, error) {
	existing, err := s.clusterRepo.GetPlatformOwned(org.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up platform cluster: %w", err)
	}
	if !s.cfg.ManagedClusterConfigured() {
		return nil, nil
	}

	provider := models.ClusterProvider(s.cfg.ManagedClusterProvider)
	if !provider.IsValid() {
		provider = models.ClusterProviderKubernetes
	}

	cluster := &models.Cluster{
		OrganizationID:  org.ID,
		Name:            DefaultClusterName,
		Provider:        provider,
		APIBaseURL:      normalizeBaseURL(s.cfg.ManagedClusterURL),
		APIToken:        s.cfg.ManagedClusterToken,
		Kind:            models.ClusterKindManaged,
		RequiresPayment: true,
		OwnedBy:         models.ClusterOwnerPlatform,
		FreeJobLimit:    0,
		Locked:          true,
	}
	if err := s.clusterRepo.Create(cluster); err != nil {
		return nil, fmt.Errorf("failed to provision default cluster: %w", err)
	}
	return cluster, nil
}

func (s *ClusterService) toResponse(cluster *models.Cluster) *ClusterResponse {
	return &ClusterResponse{
		ID:              cluster.ID,
		OrganizationID:  cluster.OrganizationID,
		Name:            cluster.Name,
		Provider:        cluster.Provider,
		APIBaseURL:      cluster.APIBaseURL,
		APITokenPreview: cluster.TokenPreview(),
		Kind:            cluster.Kind,
		RequiresPayment: cluster.RequiresPayment,
		OwnedBy:         cluster.OwnedBy,
		FreeJobLimit:    cluster.FreeJobLimit,
		Locked:          cluster.Locked,
		Metadata:        cluster.Metadata,
		CreatedAt:       cluster.CreatedAt,
		UpdatedAt:       cluster.UpdatedAt,
	}
}

// normalizeBaseURL strips trailing slashes so stored endpoints join cleanly
// with request paths
func normalizeBaseURL(u string) string {
	return strings.TrimRight(strings.TrimSpace(u), "/")
}
