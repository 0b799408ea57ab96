package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"train-console-backend/internal/auth"
	"train-console-backend/internal/config"
	"train-console-backend/internal/database/models"
	apperrors "train-console-backend/internal/errors"
	"train-console-backend/internal/logger"
	"train-console-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResolveResult is the tenant context established for a verified caller
type ResolveResult struct {
	Organization  *models.Organization `json:"organization"`
	Membership    *models.Membership   `json:"membership"`
	IsGlobalAdmin bool                 `json:"is_global_admin"`
}

// OrgResolverService maps a verified identity onto exactly one organization,
// bootstrapping a tenant on first contact. Global-admin status comes from a
// static allow-list resolved once at startup.
type OrgResolverService struct {
	orgRepo        repository.OrganizationRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	clusterService ClusterServiceInterface
	globalAdminIDs map[string]struct{}
	log            *logger.Logger
}

// NewOrgResolverService creates a new org resolver service
func NewOrgResolverService(
	orgRepo repository.OrganizationRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	clusterService ClusterServiceInterface,
	cfg *config.Config,
) *OrgResolverService {
	admins := make(map[string]struct{}, len(cfg.GlobalAdminIDs))
	for _, id := range cfg.GlobalAdminIDs {
		id = strings.TrimSpace(id)
		if id != "" {
			admins[id] = struct{}{}
		}
	}
	return &OrgResolverService{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		clusterService: clusterService,
		globalAdminIDs: admins,
		log:            logger.New(),
	}
}

// ResolveForUser returns the caller's organization and membership, creating
// both on first contact. Bootstrap makes the user an admin of a fresh org and
// provisions the platform default cluster when one is configured.
func (s *OrgResolverService) ResolveForUser(identity *auth.Identity) (*ResolveResult, error) {
	membership, err := s.membershipRepo.GetByUserID(identity.UserID)
	if err == nil {
		org, err := s.orgRepo.GetByID(membership.OrganizationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrOrganizationNotFound
			}
			return nil, fmt.Errorf("failed to get organization: %w", err)
		}
		return s.result(org, membership), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return s.bootstrap(identity)
}

// bootstrap creates the org, the admin membership and the default cluster for
// a first-time user
func (s *OrgResolverService) bootstrap(identity *auth.Identity) (*ResolveResult, error) {
	name := organizationName(identity)
	org := &models.Organization{
		Name: name,
		Slug: slugify(name) + "-" + strconv.FormatInt(time.Now().UnixMilli(), 36),
	}
	if err := s.orgRepo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	membership := &models.Membership{
		OrganizationID: org.ID,
		UserID:         identity.UserID,
		Email:          identity.Email,
		Role:           models.MembershipRoleAdmin,
	}
	if err := s.membershipRepo.Create(membership); err != nil {
		// A concurrent first request for the same user won the unique index on
		// user_id. Use the winner's membership and org.
		existing, lookupErr := s.membershipRepo.GetByUserID(identity.UserID)
		if lookupErr != nil {
			return nil, fmt.Errorf("failed to create membership: %w", err)
		}
		s.log.WithField("user_id", identity.UserID).
			Warn("concurrent tenant bootstrap detected, using existing membership")
		existingOrg, lookupErr := s.orgRepo.GetByID(existing.OrganizationID)
		if lookupErr != nil {
			return nil, fmt.Errorf("failed to get organization: %w", lookupErr)
		}
		return s.result(existingOrg, existing), nil
	}

	cluster, err := s.clusterService.EnsureDefaultCluster(org)
	if err != nil {
		s.log.WithField("organization_id", org.ID).
			Warnf("failed to provision default cluster: %v", err)
	} else if cluster != nil {
		if err := s.orgRepo.SetDefaultCluster(org.ID, cluster.ID); err != nil {
			s.log.WithField("organization_id", org.ID).
				Warnf("failed to record default cluster: %v", err)
		} else {
			org.DefaultClusterID = &cluster.ID
		}
	}

	s.log.WithFields(map[string]interface{}{
		"organization_id": org.ID,
		"user_id":         identity.UserID,
	}).Info("bootstrapped new tenant")

	return s.result(org, membership), nil
}

// IsGlobalAdmin reports whether the user id is on the static global-admin
// allow-list. Independent of per-org membership roles.
func (s *OrgResolverService) IsGlobalAdmin(userID string) bool {
	_, ok := s.globalAdminIDs[userID]
	return ok
}

// AdjustPromoCredits applies a signed credit adjustment with a zero floor and
// returns the updated organization. Grants and administrative corrections go
// through here; job-charge consumption uses the conditional decrement on the
// billing path instead.
func (s *OrgResolverService) AdjustPromoCredits(orgID uuid.UUID, delta int) (*models.Organization, error) {
	if err := s.orgRepo.AddPromoCredits(orgID, delta); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to adjust promo credits: %w", err)
	}
	if delta < 0 {
		if err := s.orgRepo.ClampPromoCredits(orgID); err != nil {
			return nil, fmt.Errorf("failed to clamp promo credits: %w", err)
		}
	}
	org, err := s.orgRepo.GetByID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

// IncrementFreeJobs applies an atomic adjustment to the free-job counter
func (s *OrgResolverService) IncrementFreeJobs(orgID uuid.UUID, delta int) error {
	if err := s.orgRepo.IncrementFreeJobs(orgID, delta); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to increment free jobs: %w", err)
	}
	return nil
}

func (s *OrgResolverService) result(org *models.Organization, membership *models.Membership) *ResolveResult {
	return &ResolveResult{
		Organization:  org,
		Membership:    membership,
		IsGlobalAdmin: s.IsGlobalAdmin(membership.UserID),
	}
}

// organizationName derives a display name for a bootstrapped org from the
// identity claims, falling back to the opaque user id
func organizationName(identity *auth.Identity) string {
	if identity.Name != "" {
		return identity.Name
	}
	if identity.Email != "" {
		if at := strings.Index(identity.Email, "@"); at > 0 {
			return identity.Email[:at]
		}
		return identity.Email
	}
	return identity.UserID
}

// slugify lowercases the name and replaces runs of non-alphanumeric
// characters with single hyphens
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "org"
	}
	return slug
}
