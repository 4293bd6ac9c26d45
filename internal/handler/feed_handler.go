package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"givehub/internal/guard"
	"givehub/internal/service"
)

// FeedHandler handles the social feed.
type FeedHandler struct {
	feedService service.FeedService
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(feedService service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// CreatePostRequest represents a feed post submission.
type CreatePostRequest struct {
	Body string `json:"body" validate:"required,max=2000"`
}

// List godoc
// @Summary List recent feed posts
// @Tags feed
// @Produce json
// @Success 200 {array} model.FeedPost
// @Router /api/feed [get]
func (h *FeedHandler) List(c echo.Context) error {
	posts, err := h.feedService.ListRecent(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// Create godoc
// @Summary Create a feed post
// @Tags feed
// @Accept json
// @Produce json
// @Param request body CreatePostRequest true "Post body"
// @Success 201 {object} model.FeedPost
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/feed [post]
func (h *FeedHandler) Create(c echo.Context) error {
	user := guard.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.feedService.CreatePost(c.Request().Context(), user.ID, req.Body)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, post)
}
