package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"train-console-backend/internal/api/handlers"
	"train-console-backend/internal/auth"
	"train-console-backend/internal/database/models"
	apperrors "train-console-backend/internal/errors"
	"train-console-backend/internal/mocks"
	"train-console-backend/internal/service"
	"train-console-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// JobHandlerTestSuite defines the test suite for JobHandler
type JobHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockResolver   *mocks.MockOrgResolverServiceInterface
	mockJobService *mocks.MockJobServiceInterface
	handler        *handlers.JobHandler
	httpSuite      *testutils.HTTPTestSuite
	org            *models.Organization
	membership     *models.Membership
}

// SetupTest sets up the test suite
func (suite *JobHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockResolver = mocks.NewMockOrgResolverServiceInterface(suite.ctrl)
	suite.mockJobService = mocks.NewMockJobServiceInterface(suite.ctrl)
	suite.handler = handlers.NewJobHandler(suite.mockResolver, suite.mockJobService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.org = testutils.NewOrganizationFactory().Create()
	suite.membership = testutils.NewMembershipFactory().Create(suite.org.ID)

	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("identity", &auth.Identity{UserID: suite.membership.UserID})
		c.Next()
	})
	suite.httpSuite.Router.POST("/jobs", suite.handler.LaunchJob)
	suite.httpSuite.Router.GET("/jobs", suite.handler.ListJobs)
	suite.httpSuite.Router.GET("/jobs/:id", suite.handler.GetJob)
	suite.httpSuite.Router.PATCH("/jobs/:id/status", suite.handler.UpdateJobStatus)
}

// TearDownTest cleans up after each test
func (suite *JobHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *JobHandlerTestSuite) resolveResult() *service.ResolveResult {
	return &service.ResolveResult{
		Organization: suite.org,
		Membership:   suite.membership,
	}
}

func (suite *JobHandlerTestSuite) expectResolve() {
	suite.mockResolver.EXPECT().
		ResolveForUser(gomock.Any()).
		Return(suite.resolveResult(), nil).
		Times(1)
}

// TestLaunchJobSuccess tests launching a job via the API
func (suite *JobHandlerTestSuite) TestLaunchJobSuccess() {
	clusterID := uuid.New()
	jobID := uuid.New()
	body := map[string]interface{}{
		"cluster_id":  clusterID.String(),
		"method":      "sft",
		"dataset_uri": "s3://datasets/train.jsonl",
	}

	suite.expectResolve()
	suite.mockJobService.EXPECT().
		Launch(gomock.Any(), suite.org, suite.membership.UserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Organization, _ string, req *service.LaunchJobRequest) (*service.JobResponse, error) {
			assert.Equal(suite.T(), clusterID, req.ClusterID)
			return &service.JobResponse{ID: jobID, Status: models.JobStatusQueued}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/jobs", body)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	var response service.JobResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), jobID, response.ID)
	assert.Equal(suite.T(), models.JobStatusQueued, response.Status)
}

// TestLaunchJobPolicyRejection tests the 422 mapping for policy errors
func (suite *JobHandlerTestSuite) TestLaunchJobPolicyRejection() {
	body := map[string]interface{}{
		"cluster_id":  uuid.New().String(),
		"method":      "sft",
		"dataset_uri": "s3://datasets/train.jsonl",
	}

	suite.expectResolve()
	suite.mockJobService.EXPECT().
		Launch(gomock.Any(), suite.org, suite.membership.UserID, gomock.Any()).
		Return(nil, apperrors.ErrNoDefaultPaymentMethod).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/jobs", body)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, recorder.Code)
}

// TestLaunchJobProviderFailure tests that provider errors stay generic 502s
func (suite *JobHandlerTestSuite) TestLaunchJobProviderFailure() {
	body := map[string]interface{}{
		"cluster_id":  uuid.New().String(),
		"method":      "sft",
		"dataset_uri": "s3://datasets/train.jsonl",
	}

	suite.expectResolve()
	suite.mockJobService.EXPECT().
		Launch(gomock.Any(), suite.org, suite.membership.UserID, gomock.Any()).
		Return(nil, apperrors.NewExternalProviderError("create charge", assert.AnError)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/jobs", body)

	assert.Equal(suite.T(), http.StatusBadGateway, recorder.Code)
	var response map[string]string
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Payment provider request failed", response["error"])
	assert.NotContains(suite.T(), recorder.Body.String(), assert.AnError.Error())
}

// TestLaunchJobUnauthenticated tests the missing-identity path
func (suite *JobHandlerTestSuite) TestLaunchJobUnauthenticated() {
	bare := testutils.SetupHTTPTest()
	bare.Router.POST("/jobs", suite.handler.LaunchJob)

	recorder := bare.MakeRequest("POST", "/jobs", map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestListJobsPagination tests that query parameters reach the service
func (suite *JobHandlerTestSuite) TestListJobsPagination() {
	suite.expectResolve()
	suite.mockJobService.EXPECT().
		List(suite.org.ID, suite.membership.UserID, suite.membership.Role, false, 2, 10).
		Return(&service.JobListResponse{Jobs: []service.JobResponse{}, Total: 0, Page: 2, PageSize: 10}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/jobs?page=2&page_size=10", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.JobListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), 2, response.Page)
}

// TestGetJobNotFound tests the 404 mapping
func (suite *JobHandlerTestSuite) TestGetJobNotFound() {
	jobID := uuid.New()

	suite.expectResolve()
	suite.mockJobService.EXPECT().
		Get(suite.org.ID, jobID, suite.membership.UserID, suite.membership.Role, false).
		Return(nil, apperrors.ErrJobNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/jobs/"+jobID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestGetJobInvalidID tests UUID validation on the path parameter
func (suite *JobHandlerTestSuite) TestGetJobInvalidID() {
	suite.expectResolve()

	recorder := suite.httpSuite.MakeRequest("GET", "/jobs/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestUpdateJobStatusInvalidTransition tests the 409 mapping for rejected
// transitions
func (suite *JobHandlerTestSuite) TestUpdateJobStatusInvalidTransition() {
	jobID := uuid.New()
	body := map[string]interface{}{"status": "running"}

	suite.expectResolve()
	suite.mockJobService.EXPECT().
		UpdateStatus(suite.org.ID, jobID, suite.membership.UserID, suite.membership.Role, false, gomock.Any()).
		Return(nil, apperrors.NewInvalidTransitionError("succeeded", "running")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/jobs/"+jobID.String()+"/status", body)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestUpdateJobStatusSuccess tests a valid transition via the API
func (suite *JobHandlerTestSuite) TestUpdateJobStatusSuccess() {
	jobID := uuid.New()
	body := map[string]interface{}{"status": "running", "message": "started"}

	suite.expectResolve()
	suite.mockJobService.EXPECT().
		UpdateStatus(suite.org.ID, jobID, suite.membership.UserID, suite.membership.Role, false, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ uuid.UUID, _ string, _ models.MembershipRole, _ bool, req *service.UpdateJobStatusRequest) (*service.JobResponse, error) {
			assert.Equal(suite.T(), models.JobStatusRunning, req.Status)
			assert.Equal(suite.T(), "started", req.Message)
			return &service.JobResponse{ID: jobID, Status: models.JobStatusRunning}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/jobs/"+jobID.String()+"/status", body)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestUpdateJobStatusOtherMembersJobHidden tests the 404 mapping when the
// caller cannot see the job it tries to transition
func (suite *JobHandlerTestSuite) TestUpdateJobStatusOtherMembersJobHidden() {
	jobID := uuid.New()
	body := map[string]interface{}{"status": "cancelled"}

	suite.expectResolve()
	suite.mockJobService.EXPECT().
		UpdateStatus(suite.org.ID, jobID, suite.membership.UserID, suite.membership.Role, false, gomock.Any()).
		Return(nil, apperrors.ErrJobNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/jobs/"+jobID.String()+"/status", body)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestJobHandlerTestSuite runs the test suite
func TestJobHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JobHandlerTestSuite))
}
