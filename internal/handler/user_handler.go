package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"givehub/internal/guard"
	"givehub/internal/service"
)

// UserHandler handles profile, topic selection and email verification.
type UserHandler struct {
	userService service.UserService
	notifier    guard.Notifier
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, notifier guard.Notifier) *UserHandler {
	return &UserHandler{userService: userService, notifier: notifier}
}

// UpdateProfileRequest represents a profile update request.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
}

// SelectTopicsRequest represents a topic selection submission.
type SelectTopicsRequest struct {
	TopicIDs []string `json:"topic_ids" validate:"required,min=1,dive,uuid"`
}

// Me godoc
// @Summary Current user profile
// @Tags users
// @Produce json
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user := guard.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/me [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user := guard.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.userService.UpdateProfile(c.Request().Context(), user.ID, req.Name, req.Phone)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// ListTopics godoc
// @Summary List selectable topics
// @Tags topics
// @Produce json
// @Success 200 {array} model.Topic
// @Router /api/topics [get]
func (h *UserHandler) ListTopics(c echo.Context) error {
	topics, err := h.userService.ListTopics(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, topics)
}

// SelectTopics godoc
// @Summary Select interested topics
// @Tags topics
// @Accept json
// @Produce json
// @Param request body SelectTopicsRequest true "Topic IDs"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/topics [post]
func (h *UserHandler) SelectTopics(c echo.Context) error {
	user := guard.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req SelectTopicsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	topicIDs := make([]uuid.UUID, 0, len(req.TopicIDs))
	for _, raw := range req.TopicIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid topic id")
		}
		topicIDs = append(topicIDs, id)
	}

	if err := h.userService.SelectTopics(c.Request().Context(), user.ID, topicIDs); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "topics updated",
	})
}

// VerifyEmail godoc
// @Summary Verify the current user's email
// @Tags users
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /verify-email/{id} [get]
func (h *UserHandler) VerifyEmail(c echo.Context) error {
	user := guard.CurrentUser(c)
	if user == nil {
		return c.Redirect(http.StatusFound, "/login")
	}
	// The link carries the recipient's ID; verifying someone else's link
	// stamps nothing.
	if c.Param("id") != user.ID.String() {
		return echo.NewHTTPError(http.StatusForbidden, "verification link does not match this account")
	}

	if err := h.userService.VerifyEmail(c.Request().Context(), user.ID); err != nil {
		return domainError(err)
	}
	return c.Redirect(http.StatusFound, "/dashboard")
}

// ResendVerification godoc
// @Summary Re-send the verification notice
// @Tags users
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/email/resend [post]
func (h *UserHandler) ResendVerification(c echo.Context) error {
	user := guard.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	if err := h.notifier.SendVerificationNotice(c.Request().Context(), user); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "verification notice sent",
	})
}
