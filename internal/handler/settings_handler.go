package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"givehub/internal/model"
	"givehub/internal/settings"
)

// SettingsHandler handles the admin runtime settings.
type SettingsHandler struct {
	store *settings.Store
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(store *settings.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// UpdateSettingsRequest represents a settings update payload.
type UpdateSettingsRequest struct {
	EmailVerificationRequired *bool `json:"email_verification_required" validate:"required"`
}

// Get godoc
// @Summary Read runtime settings
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"email_verification_required": h.store.EmailVerificationRequired(c.Request().Context()),
	})
}

// Update godoc
// @Summary Update runtime settings
// @Tags admin
// @Accept json
// @Produce json
// @Param request body UpdateSettingsRequest true "Settings"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/admin/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if err := h.store.Set(ctx, model.SettingEmailVerificationRequired,
		strconv.FormatBool(*req.EmailVerificationRequired)); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"email_verification_required": *req.EmailVerificationRequired,
	})
}
