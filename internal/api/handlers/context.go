package handlers

import (
	"errors"
	"net/http"

	"train-console-backend/internal/auth"
	"train-console-backend/internal/database/models"
	apperrors "train-console-backend/internal/errors"
	"train-console-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string            `json:"error" example:"error message"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// resolveTenant establishes the caller's organization context, bootstrapping
// a tenant on first contact. On failure the response is already written.
func resolveTenant(c *gin.Context, resolver service.OrgResolverServiceInterface) (*service.ResolveResult, bool) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}
	result, err := resolver.ResolveForUser(identity)
	if err != nil {
		handleServiceError(c, err, "Failed to resolve organization")
		return nil, false
	}
	return result, true
}

// requireAdmin enforces admin-only operations: org admins and global admins
// pass, standard members are rejected
func requireAdmin(c *gin.Context, result *service.ResolveResult) bool {
	if result.IsGlobalAdmin || result.Membership.Role == models.MembershipRoleAdmin {
		return true
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required for this operation"})
	return false
}

// handleServiceError maps service-layer errors onto HTTP statuses. Provider
// failures stay generic so internal failure codes never leak to callers.
func handleServiceError(c *gin.Context, err error, fallback string) {
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field()] = "failed validation: " + fe.Tag()
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Fields: fields})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidPromoCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientCredits):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsInvalidTransition(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsPolicy(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case apperrors.IsExternalProvider(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider request failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
