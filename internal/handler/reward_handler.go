package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"givehub/internal/guard"
	"givehub/internal/service"
)

// RewardHandler handles merchant reward offers and the public rewards hub.
type RewardHandler struct {
	rewardService service.RewardService
}

// NewRewardHandler creates a new reward handler.
func NewRewardHandler(rewardService service.RewardService) *RewardHandler {
	return &RewardHandler{rewardService: rewardService}
}

// OfferRequest represents a reward-offer create or update payload.
type OfferRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	Points      int    `json:"points" validate:"required,min=1"`
	Active      bool   `json:"active"`
}

// Hub godoc
// @Summary List all active reward offers
// @Tags rewards
// @Produce json
// @Success 200 {array} model.RewardOffer
// @Router /api/rewards [get]
func (h *RewardHandler) Hub(c echo.Context) error {
	offers, err := h.rewardService.ListActiveOffers(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, offers)
}

// ListMine godoc
// @Summary List the merchant's own offers
// @Tags rewards
// @Produce json
// @Success 200 {array} model.RewardOffer
// @Router /api/merchant/offers [get]
func (h *RewardHandler) ListMine(c echo.Context) error {
	user := guard.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	offers, err := h.rewardService.ListMerchantOffers(c.Request().Context(), user.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, offers)
}

// Create godoc
// @Summary Create a reward offer
// @Tags rewards
// @Accept json
// @Produce json
// @Param request body OfferRequest true "Offer data"
// @Success 201 {object} model.RewardOffer
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/merchant/offers [post]
func (h *RewardHandler) Create(c echo.Context) error {
	user := guard.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req OfferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	offer, err := h.rewardService.CreateOffer(c.Request().Context(),
		user.ID, req.Title, req.Description, req.Points)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, offer)
}

// Update godoc
// @Summary Update a reward offer
// @Tags rewards
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body OfferRequest true "Offer data"
// @Success 200 {object} model.RewardOffer
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/merchant/offers/{id} [put]
func (h *RewardHandler) Update(c echo.Context) error {
	user := guard.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid offer id")
	}

	var req OfferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	offer, err := h.rewardService.UpdateOffer(c.Request().Context(),
		user.ID, offerID, req.Title, req.Description, req.Points, req.Active)
	if err != nil {
		return rewardError(err)
	}
	return c.JSON(http.StatusOK, offer)
}

// Delete godoc
// @Summary Delete a reward offer
// @Tags rewards
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/merchant/offers/{id} [delete]
func (h *RewardHandler) Delete(c echo.Context) error {
	user := guard.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid offer id")
	}

	if err := h.rewardService.DeleteOffer(c.Request().Context(), user.ID, offerID); err != nil {
		return rewardError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "offer deleted",
	})
}

func rewardError(err error) *echo.HTTPError {
	switch err {
	case service.ErrNotOfferOwner:
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case gorm.ErrRecordNotFound:
		return echo.NewHTTPError(http.StatusNotFound, "offer not found")
	}
	return domainError(err)
}
