package handlers

import (
	"context"
	"net/http"

	"train-console-backend/internal/database/models"
	"train-console-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BillingHandler handles HTTP requests for the billing engine
type BillingHandler struct {
	resolver service.OrgResolverServiceInterface
	service  service.BillingServiceInterface
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(resolver service.OrgResolverServiceInterface, billingService service.BillingServiceInterface) *BillingHandler {
	return &BillingHandler{resolver: resolver, service: billingService}
}

// ApplyPromoCodeRequest represents a promo code redemption
type ApplyPromoCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// PaymentMethodRequest references a provider payment method
type PaymentMethodRequest struct {
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
}

// GetOverview handles GET /api/v1/billing/overview
// @Summary Billing overview
// @Description Report promo credits, remaining free jobs and on-file payment methods. Admin only.
// @Tags billing
// @Accept json
// @Produce json
// @Success 200 {object} service.BillingOverviewResponse "Billing overview"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 502 {object} ErrorResponse "Payment provider request failed"
// @Security BearerAuth
// @Router /billing/overview [get]
func (h *BillingHandler) GetOverview(c *gin.Context) {
	result, ok := resolveTenant(c, h.resolver)
	if !ok {
		return
	}
	if !requireAdmin(c, result) {
		return
	}
	overview, err := h.service.GetOverview(c.Request.Context(), result.Organization)
	if err != nil {
		handleServiceError(c, err, "Failed to get billing overview")
		return
	}
	c.JSON(http.StatusOK, overview)
}

// ApplyPromoCode handles POST /api/v1/billing/promo-codes
// @Summary Apply promo code
// @Description Redeem a promo code for credits. Admin only. Codes match case-insensitively.
// @Tags billing
// @Accept json
// @Produce json
// @Param code body ApplyPromoCodeRequest true "Promo code"
// @Success 200 {object} models.Organization "Updated organization"
// @Failure 400 {object} ErrorResponse "Invalid promo code"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Security BearerAuth
// @Router /billing/promo-codes [post]
func (h *BillingHandler) ApplyPromoCode(c *gin.Context) {
	result, ok := resolveTenant(c, h.resolver)
	if !ok {
		return
	}
	if !requireAdmin(c, result) {
		return
	}

	var req ApplyPromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.ApplyPromoCode(result.Organization.ID, req.Code)
	if err != nil {
		handleServiceError(c, err, "Failed to apply promo code")
		return
	}
	c.JSON(http.StatusOK, org)
}

// CreateSetupIntent handles POST /api/v1/billing/setup-intent
// @Summary Create setup intent
// @Description Start card collection for the organization. Admin only.
// @Tags billing
// @Accept json
// @Produce json
// @Success 201 {object} service.SetupIntentResponse "Setup intent"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 502 {object} ErrorResponse "Payment provider request failed"
// @Security BearerAuth
// @Router /billing/setup-intent [post]
func (h *BillingHandler) CreateSetupIntent(c *gin.Context) {
	result, ok := resolveTenant(c, h.resolver)
	if !ok {
		return
	}
	if !requireAdmin(c, result) {
		return
	}
	intent, err := h.service.CreateSetupIntent(c.Request.Context(), result.Organization)
	if err != nil {
		handleServiceError(c, err, "Failed to create setup intent")
		return
	}
	c.JSON(http.StatusCreated, intent)
}

// AttachPaymentMethod handles POST /api/v1/billing/payment-methods
// @Summary Attach payment method
// @Description Attach a collected card to the organization. Admin only.
// @Tags billing
// @Accept json
// @Produce json
// @Param method body PaymentMethodRequest true "Payment method reference"
// @Success 204 "Payment method attached"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 502 {object} ErrorResponse "Payment provider request failed"
// @Security BearerAuth
// @Router /billing/payment-methods [post]
func (h *BillingHandler) AttachPaymentMethod(c *gin.Context) {
	h.paymentMethodOp(c, h.service.AttachPaymentMethod)
}

// DetachPaymentMethod handles DELETE /api/v1/billing/payment-methods
// @Summary Detach payment method
// @Description Remove a card from the organization. Admin only.
// @Tags billing
// @Accept json
// @Produce json
// @Param method body PaymentMethodRequest true "Payment method reference"
// @Success 204 "Payment method detached"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 502 {object} ErrorResponse "Payment provider request failed"
// @Security BearerAuth
// @Router /billing/payment-methods [delete]
func (h *BillingHandler) DetachPaymentMethod(c *gin.Context) {
	h.paymentMethodOp(c, h.service.DetachPaymentMethod)
}

// SetDefaultPaymentMethod handles PUT /api/v1/billing/payment-methods/default
// @Summary Set default payment method
// @Description Mark a card as the organization's default. Admin only.
// @Tags billing
// @Accept json
// @Produce json
// @Param method body PaymentMethodRequest true "Payment method reference"
// @Success 204 "Default payment method set"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 502 {object} ErrorResponse "Payment provider request failed"
// @Security BearerAuth
// @Router /billing/payment-methods/default [put]
func (h *BillingHandler) SetDefaultPaymentMethod(c *gin.Context) {
	h.paymentMethodOp(c, h.service.SetDefaultPaymentMethod)
}

// UpdateBillingAddress handles PUT /api/v1/billing/address
// @Summary Update billing address
// @Description Store the organization's billing address and forward it to the payment provider. Admin only.
// @Tags billing
// @Accept json
// @Produce json
// @Param address body models.BillingAddressInput true "Billing address"
// @Success 204 "Billing address updated"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Security BearerAuth
// @Router /billing/address [put]
func (h *BillingHandler) UpdateBillingAddress(c *gin.Context) {
	result, ok := resolveTenant(c, h.resolver)
	if !ok {
		return
	}
	if !requireAdmin(c, result) {
		return
	}

	var req models.BillingAddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.UpdateBillingAddress(c.Request.Context(), result.Organization, &req); err != nil {
		handleServiceError(c, err, "Failed to update billing address")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BillingHandler) paymentMethodOp(c *gin.Context, op func(ctx context.Context, org *models.Organization, paymentMethodID string) error) {
	result, ok := resolveTenant(c, h.resolver)
	if !ok {
		return
	}
	if !requireAdmin(c, result) {
		return
	}

	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := op(c.Request.Context(), result.Organization, req.PaymentMethodID); err != nil {
		handleServiceError(c, err, "Failed to update payment method")
		return
	}
	c.Status(http.StatusNoContent)
}
