package handlers

import (
	"net/http"
	"strconv"

	"train-console-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// JobHandler handles HTTP requests for training jobs
type JobHandler struct {
	resolver service.OrgResolverServiceInterface
	service  service.JobServiceInterface
}

// NewJobHandler creates a new job handler
func NewJobHandler(resolver service.OrgResolverServiceInterface, jobService service.JobServiceInterface) *JobHandler {
	return &JobHandler{resolver: resolver, service: jobService}
}

// LaunchJob handles POST /api/v1/jobs
// @Summary Launch training job
// @Description Validate, bill and admit a training job. The billing side effect is settled before the job becomes visible.
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body service.LaunchJobRequest true "Job data"
// @Success 201 {object} service.JobResponse "Launched job"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Cluster not found"
// @Failure 422 {object} ErrorResponse "No default payment method on file"
// @Failure 502 {object} ErrorResponse "Payment provider request failed"
// @Security BearerAuth
// @Router /jobs [post]
func (h *JobHandler) LaunchJob(c *gin.Context) {
	result, ok := resolveTenant(c, h.resolver)
	if !ok {
		return
	}

	var req service.LaunchJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	job, err := h.service.Launch(c.Request.Context(), result.Organization, result.Membership.UserID, &req)
	if err != nil {
		handleServiceError(c, err, "Failed to launch job")
		return
	}
	c.JSON(http.StatusCreated, job)
}

// ListJobs handles GET /api/v1/jobs
// @Summary List training jobs
// @Description List the organization's jobs, newest first. Standard members see only their own jobs.
// @Tags jobs
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.JobListResponse "Jobs"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	result, ok := resolveTenant(c, h.resolver)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	jobs, err := h.service.List(result.Organization.ID, result.Membership.UserID,
		result.Membership.Role, result.IsGlobalAdmin, page, pageSize)
	if err != nil {
		handleServiceError(c, err, "Failed to list jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob handles GET /api/v1/jobs/:id
// @Summary Get training job
// @Description Get a single job. Standard members cannot see other members' jobs.
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Success 200 {object} service.JobResponse "Job"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Security BearerAuth
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	result, ok := resolveTenant(c, h.resolver)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID: invalid UUID format"})
		return
	}

	job, err := h.service.Get(result.Organization.ID, id, result.Membership.UserID,
		result.Membership.Role, result.IsGlobalAdmin)
	if err != nil {
		handleServiceError(c, err, "Failed to get job")
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateJobStatus handles PATCH /api/v1/jobs/:id/status
// @Summary Update job status
// @Description Apply a state-machine transition and append one history entry. Standard members can only transition their own jobs.
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Param status body service.UpdateJobStatusRequest true "New status"
// @Success 200 {object} service.JobResponse "Updated job"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /jobs/{id}/status [patch]
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	result, ok := resolveTenant(c, h.resolver)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID: invalid UUID format"})
		return
	}

	var req service.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	job, err := h.service.UpdateStatus(result.Organization.ID, id, result.Membership.UserID,
		result.Membership.Role, result.IsGlobalAdmin, &req)
	if err != nil {
		handleServiceError(c, err, "Failed to update job status")
		return
	}
	c.JSON(http.StatusOK, job)
}
