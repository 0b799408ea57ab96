//go:build integration
// +build integration

package repository

import (
	"testing"

	"train-console-backend/internal/database/models"
	"train-console-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TrainingJobRepositoryTestSuite tests the TrainingJobRepository
type TrainingJobRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	repo           *TrainingJobRepository
	orgFactory     *testutils.OrganizationFactory
	clusterFactory *testutils.ClusterFactory
	jobFactory     *testutils.TrainingJobFactory
	orgID          uuid.UUID
	cluster        *models.Cluster
}

// SetupSuite runs before all tests in the suite
func (suite *TrainingJobRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTrainingJobRepository(suite.baseTestSuite.DB)
	suite.orgFactory = testutils.NewOrganizationFactory()
	suite.clusterFactory = testutils.NewClusterFactory()
	suite.jobFactory = testutils.NewTrainingJobFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *TrainingJobRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TrainingJobRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	org := suite.orgFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)
	suite.orgID = org.ID
	suite.cluster = suite.clusterFactory.Create(org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.cluster).Error)
}

// TearDownTest runs after each test
func (suite *TrainingJobRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests round-tripping a job with its JSON columns
func (suite *TrainingJobRepositoryTestSuite) TestCreateAndGetByID() {
	job := suite.jobFactory.Create(suite.orgID, "user-1", suite.cluster)
	suite.NoError(suite.repo.Create(job))

	found, err := suite.repo.GetByID(job.ID)
	suite.NoError(err)
	suite.Equal(models.JobStatusQueued, found.Status)

	history, err := found.History()
	suite.NoError(err)
	suite.Len(history, 1)

	billing, err := found.BillingRecord()
	suite.NoError(err)
	suite.NotNil(billing)
	suite.Equal(models.BillingSourceCustomerFreeTier, billing.Source)
}

// TestGetByOrganizationID tests the org-wide listing with pagination
func (suite *TrainingJobRepositoryTestSuite) TestGetByOrganizationID() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.jobFactory.Create(suite.orgID, "user-1", suite.cluster)))
	}
	suite.NoError(suite.repo.Create(suite.jobFactory.Create(suite.orgID, "user-2", suite.cluster)))

	jobs, total, err := suite.repo.GetByOrganizationID(suite.orgID, 2, 0)
	suite.NoError(err)
	suite.Len(jobs, 2)
	suite.Equal(int64(4), total)

	jobs, total, err = suite.repo.GetByOrganizationID(suite.orgID, 2, 2)
	suite.NoError(err)
	suite.Len(jobs, 2)
	suite.Equal(int64(4), total)
}

// TestGetByOrganizationAndUser tests the per-user filter
func (suite *TrainingJobRepositoryTestSuite) TestGetByOrganizationAndUser() {
	suite.NoError(suite.repo.Create(suite.jobFactory.Create(suite.orgID, "user-1", suite.cluster)))
	suite.NoError(suite.repo.Create(suite.jobFactory.Create(suite.orgID, "user-2", suite.cluster)))

	jobs, total, err := suite.repo.GetByOrganizationAndUser(suite.orgID, "user-1", 20, 0)
	suite.NoError(err)
	suite.Len(jobs, 1)
	suite.Equal(int64(1), total)
	suite.Equal("user-1", jobs[0].UserID)
}

// TestUpdatePersistsStatusAndHistory tests writing a transition back
func (suite *TrainingJobRepositoryTestSuite) TestUpdatePersistsStatusAndHistory() {
	job := suite.jobFactory.Create(suite.orgID, "user-1", suite.cluster)
	suite.NoError(suite.repo.Create(job))

	job.Status = models.JobStatusRunning
	suite.NoError(job.AppendHistory(models.StatusEvent{Status: models.JobStatusRunning}))
	suite.NoError(suite.repo.Update(job))

	found, err := suite.repo.GetByID(job.ID)
	suite.NoError(err)
	suite.Equal(models.JobStatusRunning, found.Status)

	history, err := found.History()
	suite.NoError(err)
	suite.Len(history, 2)
}

// TestGetByIDNotFound tests the missing-row path
func (suite *TrainingJobRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTrainingJobRepositoryTestSuite runs the test suite
func TestTrainingJobRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TrainingJobRepositoryTestSuite))
}
