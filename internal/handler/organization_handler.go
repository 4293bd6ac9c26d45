package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"givehub/internal/guard"
	"givehub/internal/service"
)

// OrganizationHandler handles organization registration, the admin approval
// queue and the barter directory.
type OrganizationHandler struct {
	orgService service.OrganizationService
}

// NewOrganizationHandler creates a new organization handler.
func NewOrganizationHandler(orgService service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

// RegisterOrganizationRequest represents an organization registration.
type RegisterOrganizationRequest struct {
	Name               string `json:"name" validate:"required"`
	EIN                string `json:"ein" validate:"omitempty,max=16"`
	NteeCode           string `json:"ntee_code" validate:"omitempty,max=10"`
	ClassificationCode string `json:"classification_code" validate:"omitempty,max=10"`
}

// Register godoc
// @Summary Register an organization for review
// @Tags organizations
// @Accept json
// @Produce json
// @Param request body RegisterOrganizationRequest true "Organization data"
// @Success 201 {object} model.Organization
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/organizations [post]
func (h *OrganizationHandler) Register(c echo.Context) error {
	user := guard.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req RegisterOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	org, err := h.orgService.RegisterOrganization(c.Request().Context(), user.ID,
		req.Name, req.EIN, req.NteeCode, req.ClassificationCode)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, org)
}

// ListPending godoc
// @Summary List organizations awaiting review
// @Tags admin
// @Produce json
// @Success 200 {array} model.Organization
// @Router /api/admin/organizations/pending [get]
func (h *OrganizationHandler) ListPending(c echo.Context) error {
	orgs, err := h.orgService.ListPending(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, orgs)
}

// Approve godoc
// @Summary Approve an organization
// @Tags admin
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} model.Organization
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/organizations/{id}/approve [post]
func (h *OrganizationHandler) Approve(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid organization id")
	}
	org, err := h.orgService.Approve(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, org)
}

// Reject godoc
// @Summary Reject an organization
// @Tags admin
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} model.Organization
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/organizations/{id}/reject [post]
func (h *OrganizationHandler) Reject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid organization id")
	}
	org, err := h.orgService.Reject(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, org)
}

// BarterDirectory godoc
// @Summary List approved organizations in the barter network
// @Tags barter
// @Produce json
// @Success 200 {array} model.Organization
// @Router /api/organization/barter/directory [get]
func (h *OrganizationHandler) BarterDirectory(c echo.Context) error {
	// The caller's own organization was attached by the approval guard.
	orgs, err := h.orgService.ListApproved(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"organization":  guard.CurrentOrganization(c),
		"organizations": orgs,
	})
}
