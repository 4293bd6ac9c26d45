package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"givehub/internal/model"
	"givehub/internal/rbac"
	"givehub/internal/repository"
)

// RoleHandler handles the admin role and permission catalog.
type RoleHandler struct {
	roleRepo repository.RoleRepository
}

// NewRoleHandler creates a new role handler.
func NewRoleHandler(roleRepo repository.RoleRepository) *RoleHandler {
	return &RoleHandler{roleRepo: roleRepo}
}

// RoleRequest represents a role create or update payload.
type RoleRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

// SetPermissionsRequest replaces a role's permission bundle.
type SetPermissionsRequest struct {
	Permissions []string `json:"permissions" validate:"required"`
}

// List godoc
// @Summary List roles with their permission bundles
// @Tags admin
// @Produce json
// @Success 200 {array} model.Role
// @Router /api/admin/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roleRepo.List(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, roles)
}

// Create godoc
// @Summary Create a role
// @Tags admin
// @Accept json
// @Produce json
// @Param request body RoleRequest true "Role data"
// @Success 201 {object} model.Role
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/admin/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req RoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role := &model.Role{Name: req.Name, Description: req.Description}
	if err := h.roleRepo.Create(c.Request().Context(), role); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, role)
}

// Update godoc
// @Summary Update a role
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Role ID"
// @Param request body RoleRequest true "Role data"
// @Success 200 {object} model.Role
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/roles/{id} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid role id")
	}

	var req RoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	role, err := h.roleRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "role not found")
		}
		return domainError(err)
	}
	role.Name = req.Name
	role.Description = req.Description
	if err := h.roleRepo.Update(ctx, role); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, role)
}

// Delete godoc
// @Summary Delete a role
// @Tags admin
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/admin/roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid role id")
	}
	if err := h.roleRepo.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "role deleted",
	})
}

// SetPermissions godoc
// @Summary Replace a role's permission bundle
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Role ID"
// @Param request body SetPermissionsRequest true "Permission names"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/roles/{id}/permissions [put]
func (h *RoleHandler) SetPermissions(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid role id")
	}

	var req SetPermissionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.roleRepo.SetPermissions(c.Request().Context(), id, req.Permissions); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "permissions updated",
	})
}

// ListPermissions godoc
// @Summary List the permission catalog
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/permissions [get]
func (h *RoleHandler) ListPermissions(c echo.Context) error {
	stored, err := h.roleRepo.ListPermissions(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"permissions": stored,
		"catalog":     rbac.Catalog(),
	})
}
