package handlers

import (
	"net/http"

	"train-console-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrgHandler handles HTTP requests for organization context
type OrgHandler struct {
	resolver service.OrgResolverServiceInterface
}

// NewOrgHandler creates a new org handler
func NewOrgHandler(resolver service.OrgResolverServiceInterface) *OrgHandler {
	return &OrgHandler{resolver: resolver}
}

// AdjustCreditsRequest represents a signed promo-credit adjustment
type AdjustCreditsRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// Resolve handles GET /api/v1/org
// @Summary Resolve organization context
// @Description Return the caller's organization and membership, bootstrapping a tenant on first contact
// @Tags org
// @Accept json
// @Produce json
// @Success 200 {object} service.ResolveResult "Resolved organization context"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /org [get]
func (h *OrgHandler) Resolve(c *gin.Context) {
	result, ok := resolveTenant(c, h.resolver)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

// AdjustPromoCredits handles POST /api/v1/organizations/:id/promo-credits
// @Summary Adjust promo credits
// @Description Apply a signed promo-credit adjustment to an organization. Global admins only; the balance never goes below zero.
// @Tags org
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param adjustment body AdjustCreditsRequest true "Signed credit delta"
// @Success 200 {object} models.Organization "Updated organization"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Global admin required"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/promo-credits [post]
func (h *OrgHandler) AdjustPromoCredits(c *gin.Context) {
	result, ok := resolveTenant(c, h.resolver)
	if !ok {
		return
	}
	if !result.IsGlobalAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Global admin required for this operation"})
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	var req AdjustCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.resolver.AdjustPromoCredits(orgID, req.Delta)
	if err != nil {
		handleServiceError(c, err, "Failed to adjust promo credits")
		return
	}
	c.JSON(http.StatusOK, org)
}
