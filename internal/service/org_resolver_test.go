package service_test

import (
	"errors"
	"testing"

	"train-console-backend/internal/auth"
	"train-console-backend/internal/config"
	"train-console-backend/internal/database/models"
	"train-console-backend/internal/mocks"
	"train-console-backend/internal/service"
	"train-console-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OrgResolverServiceTestSuite defines the test suite for OrgResolverService
type OrgResolverServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockOrgRepo        *mocks.MockOrganizationRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	mockClusterService *mocks.MockClusterServiceInterface
	resolver           *service.OrgResolverService
	orgFactory         *testutils.OrganizationFactory
	membershipFactory  *testutils.MembershipFactory
}

// SetupTest sets up the test suite
func (suite *OrgResolverServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockClusterService = mocks.NewMockClusterServiceInterface(suite.ctrl)
	suite.orgFactory = testutils.NewOrganizationFactory()
	suite.membershipFactory = testutils.NewMembershipFactory()

	cfg := &config.Config{GlobalAdminIDs: []string{"admin-user-1", " admin-user-2 "}}
	suite.resolver = service.NewOrgResolverService(
		suite.mockOrgRepo, suite.mockMembershipRepo, suite.mockClusterService, cfg)
}

// TearDownTest cleans up after each test
func (suite *OrgResolverServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestResolveExistingMembership tests that a known user resolves without any
// writes
func (suite *OrgResolverServiceTestSuite) TestResolveExistingMembership() {
	org := suite.orgFactory.Create()
	membership := suite.membershipFactory.Create(org.ID)

	suite.mockMembershipRepo.EXPECT().GetByUserID(membership.UserID).Return(membership, nil).Times(1)
	suite.mockOrgRepo.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)

	result, err := suite.resolver.ResolveForUser(&auth.Identity{UserID: membership.UserID})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), org.ID, result.Organization.ID)
	assert.Equal(suite.T(), membership.ID, result.Membership.ID)
	assert.False(suite.T(), result.IsGlobalAdmin)
}

// TestResolveBootstrapsFirstTimeUser tests lazy tenant creation: org, admin
// membership and the default cluster in one pass
func (suite *OrgResolverServiceTestSuite) TestResolveBootstrapsFirstTimeUser() {
	identity := &auth.Identity{UserID: "user-new", Email: "jane@example.com", Name: "Jane Doe"}
	clusterID := uuid.New()

	suite.mockMembershipRepo.EXPECT().
		GetByUserID("user-new").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockOrgRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(org *models.Organization) error {
			assert.Equal(suite.T(), "Jane Doe", org.Name)
			assert.Contains(suite.T(), org.Slug, "jane-doe-")
			org.ID = uuid.New()
			return nil
		}).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(m *models.Membership) error {
			assert.Equal(suite.T(), "user-new", m.UserID)
			assert.Equal(suite.T(), models.MembershipRoleAdmin, m.Role)
			return nil
		}).
		Times(1)
	suite.mockClusterService.EXPECT().
		EnsureDefaultCluster(gomock.Any()).
		Return(&models.Cluster{BaseModel: models.BaseModel{ID: clusterID}}, nil).
		Times(1)
	suite.mockOrgRepo.EXPECT().SetDefaultCluster(gomock.Any(), clusterID).Return(nil).Times(1)

	result, err := suite.resolver.ResolveForUser(identity)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Jane Doe", result.Organization.Name)
	assert.Equal(suite.T(), models.MembershipRoleAdmin, result.Membership.Role)
	assert.Equal(suite.T(), clusterID, *result.Organization.DefaultClusterID)
}

// TestResolveBootstrapNameFallsBackToEmail tests the org-name derivation when
// the identity carries no display name
func (suite *OrgResolverServiceTestSuite) TestResolveBootstrapNameFallsBackToEmail() {
	identity := &auth.Identity{UserID: "user-x", Email: "team@corp.io"}

	suite.mockMembershipRepo.EXPECT().
		GetByUserID("user-x").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockOrgRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(org *models.Organization) error {
			assert.Equal(suite.T(), "team", org.Name)
			return nil
		}).
		Times(1)
	suite.mockMembershipRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockClusterService.EXPECT().EnsureDefaultCluster(gomock.Any()).Return(nil, nil).Times(1)

	_, err := suite.resolver.ResolveForUser(identity)
	assert.NoError(suite.T(), err)
}

// TestResolveConcurrentBootstrapUsesWinner tests that losing the membership
// unique-index race falls back to the winner's tenant
func (suite *OrgResolverServiceTestSuite) TestResolveConcurrentBootstrapUsesWinner() {
	identity := &auth.Identity{UserID: "user-race", Email: "race@example.com"}
	winnerOrg := suite.orgFactory.Create()
	winnerMembership := suite.membershipFactory.Admin(winnerOrg.ID)
	winnerMembership.UserID = "user-race"

	suite.mockMembershipRepo.EXPECT().
		GetByUserID("user-race").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockOrgRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockMembershipRepo.EXPECT().
		Create(gomock.Any()).
		Return(errors.New("duplicate key value violates unique constraint")).
		Times(1)
	suite.mockMembershipRepo.EXPECT().GetByUserID("user-race").Return(winnerMembership, nil).Times(1)
	suite.mockOrgRepo.EXPECT().GetByID(winnerOrg.ID).Return(winnerOrg, nil).Times(1)

	result, err := suite.resolver.ResolveForUser(identity)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), winnerOrg.ID, result.Organization.ID)
	assert.Equal(suite.T(), winnerMembership.ID, result.Membership.ID)
}

// TestIsGlobalAdmin tests the static allow-list, including whitespace trimming
func (suite *OrgResolverServiceTestSuite) TestIsGlobalAdmin() {
	assert.True(suite.T(), suite.resolver.IsGlobalAdmin("admin-user-1"))
	assert.True(suite.T(), suite.resolver.IsGlobalAdmin("admin-user-2"))
	assert.False(suite.T(), suite.resolver.IsGlobalAdmin("someone-else"))
}

// TestResolveMarksGlobalAdmin tests that allow-listed users resolve with the
// global-admin flag set
func (suite *OrgResolverServiceTestSuite) TestResolveMarksGlobalAdmin() {
	org := suite.orgFactory.Create()
	membership := suite.membershipFactory.Create(org.ID)
	membership.UserID = "admin-user-1"

	suite.mockMembershipRepo.EXPECT().GetByUserID("admin-user-1").Return(membership, nil).Times(1)
	suite.mockOrgRepo.EXPECT().GetByID(org.ID).Return(org, nil).Times(1)

	result, err := suite.resolver.ResolveForUser(&auth.Identity{UserID: "admin-user-1"})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), result.IsGlobalAdmin)
}

// TestAdjustPromoCreditsPositiveDelta tests that grants skip the clamp
func (suite *OrgResolverServiceTestSuite) TestAdjustPromoCreditsPositiveDelta() {
	orgID := uuid.New()
	updated := &models.Organization{BaseModel: models.BaseModel{ID: orgID}, PromoCredits: 7}

	suite.mockOrgRepo.EXPECT().AddPromoCredits(orgID, 5).Return(nil).Times(1)
	suite.mockOrgRepo.EXPECT().GetByID(orgID).Return(updated, nil).Times(1)

	org, err := suite.resolver.AdjustPromoCredits(orgID, 5)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, org.PromoCredits)
}

// TestAdjustPromoCreditsNegativeDeltaClamps tests the zero floor on
// administrative deductions
func (suite *OrgResolverServiceTestSuite) TestAdjustPromoCreditsNegativeDeltaClamps() {
	orgID := uuid.New()
	updated := &models.Organization{BaseModel: models.BaseModel{ID: orgID}, PromoCredits: 0}

	suite.mockOrgRepo.EXPECT().AddPromoCredits(orgID, -10).Return(nil).Times(1)
	suite.mockOrgRepo.EXPECT().ClampPromoCredits(orgID).Return(nil).Times(1)
	suite.mockOrgRepo.EXPECT().GetByID(orgID).Return(updated, nil).Times(1)

	org, err := suite.resolver.AdjustPromoCredits(orgID, -10)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, org.PromoCredits)
}

// TestOrgResolverServiceTestSuite runs the test suite
func TestOrgResolverServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrgResolverServiceTestSuite))
}
