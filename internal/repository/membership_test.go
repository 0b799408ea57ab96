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

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite     *testutils.BaseTestSuite
	repo              *MembershipRepository
	orgFactory        *testutils.OrganizationFactory
	membershipFactory *testutils.MembershipFactory
	orgID             uuid.UUID
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.orgFactory = testutils.NewOrganizationFactory()
	suite.membershipFactory = testutils.NewMembershipFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *MembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	org := suite.orgFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)
	suite.orgID = org.ID
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByUserID tests round-tripping a membership
func (suite *MembershipRepositoryTestSuite) TestCreateAndGetByUserID() {
	membership := suite.membershipFactory.Admin(suite.orgID)
	suite.NoError(suite.repo.Create(membership))

	found, err := suite.repo.GetByUserID(membership.UserID)
	suite.NoError(err)
	suite.Equal(suite.orgID, found.OrganizationID)
	suite.Equal(models.MembershipRoleAdmin, found.Role)
}

// TestGetByUserIDNotFound tests the missing-row path
func (suite *MembershipRepositoryTestSuite) TestGetByUserIDNotFound() {
	_, err := suite.repo.GetByUserID("nobody")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUserIDUniqueness tests the unique index backing single-org membership.
// Concurrent bootstrap races are settled by this constraint.
func (suite *MembershipRepositoryTestSuite) TestUserIDUniqueness() {
	membership := suite.membershipFactory.Create(suite.orgID)
	suite.NoError(suite.repo.Create(membership))

	otherOrg := suite.orgFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherOrg).Error)

	dup := suite.membershipFactory.Create(otherOrg.ID)
	dup.UserID = membership.UserID
	suite.Error(suite.repo.Create(dup))
}

// TestGetByOrganizationID tests listing an org's members
func (suite *MembershipRepositoryTestSuite) TestGetByOrganizationID() {
	suite.NoError(suite.repo.Create(suite.membershipFactory.Admin(suite.orgID)))
	suite.NoError(suite.repo.Create(suite.membershipFactory.Create(suite.orgID)))

	members, err := suite.repo.GetByOrganizationID(suite.orgID)
	suite.NoError(err)
	suite.Len(members, 2)
}

// TestMembershipRepositoryTestSuite runs the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
