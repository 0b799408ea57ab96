package service_test

import (
	"testing"

	"train-console-backend/internal/config"
	"train-console-backend/internal/database/models"
	apperrors "train-console-backend/internal/errors"
	"train-console-backend/internal/mocks"
	"train-console-backend/internal/service"
	"train-console-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ClusterServiceTestSuite defines the test suite for ClusterService
type ClusterServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockClusterRepo *mocks.MockClusterRepositoryInterface
	clusterService  *service.ClusterService
	clusterFactory  *testutils.ClusterFactory
	orgFactory      *testutils.OrganizationFactory
}

// SetupTest sets up the test suite
func (suite *ClusterServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockClusterRepo = mocks.NewMockClusterRepositoryInterface(suite.ctrl)
	suite.clusterFactory = testutils.NewClusterFactory()
	suite.orgFactory = testutils.NewOrganizationFactory()

	cfg := &config.Config{
		ManagedClusterURL:      "https://managed.train.example.com/",
		ManagedClusterToken:    "managed-token-abcdef123456",
		ManagedClusterProvider: "kubernetes",
	}
	suite.clusterService = service.NewClusterService(suite.mockClusterRepo, cfg)
}

// TearDownTest cleans up after each test
func (suite *ClusterServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateClusterForcesCustomerOwnership tests that registration always
// yields an unlocked customer-owned cluster with a normalized endpoint
func (suite *ClusterServiceTestSuite) TestCreateClusterForcesCustomerOwnership() {
	orgID := uuid.New()
	req := &service.CreateClusterRequest{
		Name:       "GPU Cluster",
		Provider:   "slurm",
		APIBaseURL: "https://slurm.corp.io/api/",
		APIToken:   "tok-secretsecretsecret",
	}

	suite.mockClusterRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(cluster *models.Cluster) error {
			assert.Equal(suite.T(), models.ClusterOwnerCustomer, cluster.OwnedBy)
			assert.False(suite.T(), cluster.Locked)
			assert.Equal(suite.T(), "https://slurm.corp.io/api", cluster.APIBaseURL)
			cluster.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.clusterService.Create(orgID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ClusterKindCustomer, response.Kind)
	assert.NotContains(suite.T(), response.APITokenPreview, "secretsecret")
}

// TestCreateClusterInvalidProvider tests provider enum validation
func (suite *ClusterServiceTestSuite) TestCreateClusterInvalidProvider() {
	req := &service.CreateClusterRequest{
		Name:       "Bad Cluster",
		Provider:   "mainframe",
		APIBaseURL: "https://cluster.example.com",
	}

	response, err := suite.clusterService.Create(uuid.New(), req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestGetClusterScopedToOrganization tests that another org's cluster reads as
// not found
func (suite *ClusterServiceTestSuite) TestGetClusterScopedToOrganization() {
	cluster := suite.clusterFactory.Create(uuid.New())

	suite.mockClusterRepo.EXPECT().GetByID(cluster.ID).Return(cluster, nil).Times(1)

	response, err := suite.clusterService.Get(uuid.New(), cluster.ID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrClusterNotFound)
}

// TestGetClusterRedactsToken tests that responses never expose the raw API
// token
func (suite *ClusterServiceTestSuite) TestGetClusterRedactsToken() {
	orgID := uuid.New()
	cluster := suite.clusterFactory.Create(orgID)

	suite.mockClusterRepo.EXPECT().GetByID(cluster.ID).Return(cluster, nil).Times(1)

	response, err := suite.clusterService.Get(orgID, cluster.ID)

	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), cluster.APIToken, response.APITokenPreview)
	assert.Equal(suite.T(), cluster.TokenPreview(), response.APITokenPreview)
}

// TestUpdateLockedClusterIdentityFieldRejected tests that the platform
// default's identity fields cannot be changed
func (suite *ClusterServiceTestSuite) TestUpdateLockedClusterIdentityFieldRejected() {
	orgID := uuid.New()
	cluster := suite.clusterFactory.Managed(orgID)
	newName := "Renamed"

	suite.mockClusterRepo.EXPECT().GetByID(cluster.ID).Return(cluster, nil).Times(1)

	response, err := suite.clusterService.Update(orgID, cluster.ID, &service.UpdateClusterRequest{Name: &newName})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrClusterLocked)
}

// TestUpdateLockedClusterMetadataAllowed tests that non-identity fields stay
// editable on a locked cluster
func (suite *ClusterServiceTestSuite) TestUpdateLockedClusterMetadataAllowed() {
	orgID := uuid.New()
	cluster := suite.clusterFactory.Managed(orgID)
	requiresPayment := false

	suite.mockClusterRepo.EXPECT().GetByID(cluster.ID).Return(cluster, nil).Times(1)
	suite.mockClusterRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	response, err := suite.clusterService.Update(orgID, cluster.ID, &service.UpdateClusterRequest{
		RequiresPayment: &requiresPayment,
	})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), response.RequiresPayment)
}

// TestDeleteLockedClusterRejected tests that the platform default cannot be
// deleted
func (suite *ClusterServiceTestSuite) TestDeleteLockedClusterRejected() {
	orgID := uuid.New()
	cluster := suite.clusterFactory.Managed(orgID)

	suite.mockClusterRepo.EXPECT().GetByID(cluster.ID).Return(cluster, nil).Times(1)

	err := suite.clusterService.Delete(orgID, cluster.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrClusterLocked)
}

// TestDeleteCustomerCluster tests the normal delete path
func (suite *ClusterServiceTestSuite) TestDeleteCustomerCluster() {
	orgID := uuid.New()
	cluster := suite.clusterFactory.Create(orgID)

	suite.mockClusterRepo.EXPECT().GetByID(cluster.ID).Return(cluster, nil).Times(1)
	suite.mockClusterRepo.EXPECT().Delete(cluster.ID).Return(nil).Times(1)

	err := suite.clusterService.Delete(orgID, cluster.ID)
	assert.NoError(suite.T(), err)
}

// TestEnsureDefaultClusterIdempotent tests that an existing platform cluster
// is reused, not duplicated
func (suite *ClusterServiceTestSuite) TestEnsureDefaultClusterIdempotent() {
	org := suite.orgFactory.Create()
	existing := suite.clusterFactory.Managed(org.ID)

	suite.mockClusterRepo.EXPECT().GetPlatformOwned(org.ID).Return(existing, nil).Times(1)

	cluster, err := suite.clusterService.EnsureDefaultCluster(org)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), existing.ID, cluster.ID)
}

// TestEnsureDefaultClusterProvisionsLocked tests first-time provisioning of
// the managed default
func (suite *ClusterServiceTestSuite) TestEnsureDefaultClusterProvisionsLocked() {
	org := suite.orgFactory.Create()

	suite.mockClusterRepo.EXPECT().GetPlatformOwned(org.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockClusterRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(cluster *models.Cluster) error {
			assert.Equal(suite.T(), service.DefaultClusterName, cluster.Name)
			assert.Equal(suite.T(), models.ClusterKindManaged, cluster.Kind)
			assert.Equal(suite.T(), models.ClusterOwnerPlatform, cluster.OwnedBy)
			assert.True(suite.T(), cluster.RequiresPayment)
			assert.True(suite.T(), cluster.Locked)
			assert.Equal(suite.T(), "https://managed.train.example.com", cluster.APIBaseURL)
			return nil
		}).
		Times(1)

	cluster, err := suite.clusterService.EnsureDefaultCluster(org)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), cluster)
}

// TestEnsureDefaultClusterSkippedWhenUnconfigured tests that deployments
// without a managed cluster provision nothing
func (suite *ClusterServiceTestSuite) TestEnsureDefaultClusterSkippedWhenUnconfigured() {
	noManaged := service.NewClusterService(suite.mockClusterRepo, &config.Config{})
	org := suite.orgFactory.Create()

	suite.mockClusterRepo.EXPECT().GetPlatformOwned(org.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	cluster, err := noManaged.EnsureDefaultCluster(org)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), cluster)
}

// TestClusterServiceTestSuite runs the test suite
func TestClusterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClusterServiceTestSuite))
}
