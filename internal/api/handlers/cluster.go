package handlers

import (
	"net/http"

	"train-console-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClusterHandler handles HTTP requests for the cluster registry
type ClusterHandler struct {
	resolver service.OrgResolverServiceInterface
	service  service.ClusterServiceInterface
}

// NewClusterHandler creates a new cluster handler
func NewClusterHandler(resolver service.OrgResolverServiceInterface, clusterService service.ClusterServiceInterface) *ClusterHandler {
	return &ClusterHandler{resolver: resolver, service: clusterService}
}

// ListClusters handles GET /api/v1/clusters
// @Summary List clusters
// @Description List all clusters registered for the caller's organization
// @Tags clusters
// @Accept json
// @Produce json
// @Success 200 {array} service.ClusterResponse "Clusters"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /clusters [get]
func (h *ClusterHandler) ListClusters(c *gin.Context) {
	result, ok := resolveTenant(c, h.resolver)
	if !ok {
		return
	}
	clusters, err := h.service.List(result.Organization.ID)
	if err != nil {
		handleServiceError(c, err, "Failed to list clusters")
		return
	}
	c.JSON(http.StatusOK, clusters)
}

// GetCluster handles GET /api/v1/clusters/:id
// @Summary Get cluster
// @Description Get a single cluster by id, scoped to the caller's organization
// @Tags clusters
// @Accept json
// @Produce json
// @Param id path string true "Cluster ID (UUID)"
// @Success 200 {object} service.ClusterResponse "Cluster"
// @Failure 404 {object} ErrorResponse "Cluster not found"
// @Security BearerAuth
// @Router /clusters/{id} [get]
func (h *ClusterHandler) GetCluster(c *gin.Context) {
	result, ok := resolveTenant(c, h.resolver)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cluster ID: invalid UUID format"})
		return
	}
	cluster, err := h.service.Get(result.Organization.ID, id)
	if err != nil {
		handleServiceError(c, err, "Failed to get cluster")
		return
	}
	c.JSON(http.StatusOK, cluster)
}

// CreateCluster handles POST /api/v1/clusters
// @Summary Register cluster
// @Description Register a customer-owned cluster. Admin only.
// @Tags clusters
// @Accept json
// @Produce json
// @Param cluster body service.CreateClusterRequest true "Cluster data"
// @Success 201 {object} service.ClusterResponse "Registered cluster"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Security BearerAuth
// @Router /clusters [post]
func (h *ClusterHandler) CreateCluster(c *gin.Context) {
	result, ok := resolveTenant(c, h.resolver)
	if !ok {
		return
	}
	if !requireAdmin(c, result) {
		return
	}

	var req service.CreateClusterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	cluster, err := h.service.Create(result.Organization.ID, &req)
	if err != nil {
		handleServiceError(c, err, "Failed to create cluster")
		return
	}
	c.JSON(http.StatusCreated, cluster)
}

// UpdateCluster handles PUT /api/v1/clusters/:id
// @Summary Update cluster
// @Description Update a cluster. Admin only. Locked clusters reject identity-field changes.
// @Tags clusters
// @Accept json
// @Produce json
// @Param id path string true "Cluster ID (UUID)"
// @Param cluster body service.UpdateClusterRequest true "Fields to update"
// @Success 200 {object} service.ClusterResponse "Updated cluster"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Cluster not found"
// @Failure 422 {object} ErrorResponse "Cluster is locked"
// @Security BearerAuth
// @Router /clusters/{id} [put]
func (h *ClusterHandler) UpdateCluster(c *gin.Context) {
	result, ok := resolveTenant(c, h.resolver)
	if !ok {
		return
	}
	if !requireAdmin(c, result) {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cluster ID: invalid UUID format"})
		return
	}

	var req service.UpdateClusterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	cluster, err := h.service.Update(result.Organization.ID, id, &req)
	if err != nil {
		handleServiceError(c, err, "Failed to update cluster")
		return
	}
	c.JSON(http.StatusOK, cluster)
}

// DeleteCluster handles DELETE /api/v1/clusters/:id
// @Summary Delete cluster
// @Description Delete a cluster. Admin only. The locked platform default can never be deleted.
// @Tags clusters
// @Accept json
// @Produce json
// @Param id path string true "Cluster ID (UUID)"
// @Success 204 "Cluster deleted"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Cluster not found"
// @Failure 422 {object} ErrorResponse "Cluster is locked"
// @Security BearerAuth
// @Router /clusters/{id} [delete]
func (h *ClusterHandler) DeleteCluster(c *gin.Context) {
	result, ok := resolveTenant(c, h.resolver)
	if !ok {
		return
	}
	if !requireAdmin(c, result) {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cluster ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(result.Organization.ID, id); err != nil {
		handleServiceError(c, err, "Failed to delete cluster")
		return
	}
	c.Status(http.StatusNoContent)
}
