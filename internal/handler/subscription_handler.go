package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"givehub/internal/guard"
	"givehub/internal/model"
	"givehub/internal/service"
)

// SubscriptionHandler handles merchant subscription status and linking.
type SubscriptionHandler struct {
	subService service.SubscriptionService
}

// NewSubscriptionHandler creates a new subscription handler.
func NewSubscriptionHandler(subService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subService: subService}
}

// LinkSubscriptionRequest attaches a provider subscription to the merchant.
type LinkSubscriptionRequest struct {
	ProviderSubscriptionID string `json:"provider_subscription_id" validate:"required"`
}

// Status godoc
// @Summary Reconciled subscription status for the merchant
// @Tags subscriptions
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/merchant/subscription [get]
func (h *SubscriptionHandler) Status(c echo.Context) error {
	user := guard.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	sub, active, err := h.subService.EnsureActive(c.Request().Context(), user.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"subscription": sub,
		"active":       active,
	})
}

// Link godoc
// @Summary Link a provider subscription after checkout
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body LinkSubscriptionRequest true "Provider subscription"
// @Success 201 {object} model.Subscription
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/merchant/subscription [post]
func (h *SubscriptionHandler) Link(c echo.Context) error {
	user := guard.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req LinkSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.subService.Record(c.Request().Context(), user.ID,
		req.ProviderSubscriptionID, model.SubscriptionActive)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, sub)
}
