package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"

	"givehub/internal/guard"
	"givehub/internal/service"
)

// DonationHandler handles fundraising campaigns, hosted-checkout donations
// and the billing provider's webhook.
type DonationHandler struct {
	donationService service.DonationService
	baseURL         string
	webhookSecret   string
}

// NewDonationHandler creates a new donation handler.
func NewDonationHandler(donationService service.DonationService, baseURL, webhookSecret string) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
		baseURL:         baseURL,
		webhookSecret:   webhookSecret,
	}
}

// CreateCampaignRequest represents a campaign creation payload.
type CreateCampaignRequest struct {
	Title       string          `json:"title" validate:"required,max=255"`
	Description string          `json:"description"`
	Goal        decimal.Decimal `json:"goal" validate:"required"`
}

// DonateRequest represents a donation checkout request.
type DonateRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// ListCampaigns godoc
// @Summary List active fundraising campaigns
// @Tags campaigns
// @Produce json
// @Success 200 {array} model.Campaign
// @Router /api/campaigns [get]
func (h *DonationHandler) ListCampaigns(c echo.Context) error {
	campaigns, err := h.donationService.ListCampaigns(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, campaigns)
}

// GetCampaign godoc
// @Summary Get a campaign
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} model.Campaign
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/campaigns/{id} [get]
func (h *DonationHandler) GetCampaign(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid campaign id")
	}
	campaign, err := h.donationService.GetCampaign(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, campaign)
}

// CreateCampaign godoc
// @Summary Create a fundraising campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body CreateCampaignRequest true "Campaign data"
// @Success 201 {object} model.Campaign
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/organization/campaigns [post]
func (h *DonationHandler) CreateCampaign(c echo.Context) error {
	org := guard.CurrentOrganization(c)
	if org == nil {
		return echo.NewHTTPError(http.StatusForbidden, "no organization on request")
	}

	var req CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	campaign, err := h.donationService.CreateCampaign(c.Request().Context(),
		org.ID, req.Title, req.Description, req.Goal)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, campaign)
}

// Donate godoc
// @Summary Start a donation checkout
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body DonateRequest true "Donation amount"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/campaigns/{id}/donate [post]
func (h *DonationHandler) Donate(c echo.Context) error {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid campaign id")
	}

	var req DonateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Donations are open to guests; a logged-in donor gets attributed.
	var donorID *uuid.UUID
	if user := guard.CurrentUser(c); user != nil {
		donorID = &user.ID
	}

	checkoutURL, err := h.donationService.Donate(c.Request().Context(),
		campaignID, donorID, req.Amount,
		h.baseURL+"/campaigns/"+campaignID.String()+"?donated=1",
		h.baseURL+"/campaigns/"+campaignID.String())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"checkout_url": checkoutURL,
	})
}

// Webhook godoc
// @Summary Billing provider webhook
// @Tags campaigns
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /webhooks/stripe [post]
func (h *DonationHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable payload")
	}

	event, err := webhook.ConstructEvent(payload,
		c.Request().Header.Get("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid signature")
	}

	if event.Type == "checkout.session.completed" {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid event payload")
		}
		// Deliveries retry; completion is idempotent.
		if err := h.donationService.ConfirmBySession(c.Request().Context(), session.ID); err != nil {
			c.Logger().Warnf("confirm checkout session %s: %v", session.ID, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"received": "true",
	})
}
