package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"givehub/internal/config"
	"givehub/internal/guard"
	"givehub/internal/handler"
	"givehub/internal/rbac"
)

// secondaryPathPrefixes are the routes the donation domain serves. Everything
// else 404s when requested on that host.
var secondaryPathPrefixes = []string{
	"/campaigns",
	"/api/campaigns",
	"/webhooks/stripe",
	"/assets",
	"/healthz",
}

// Handlers bundles the HTTP layer for registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Organization *handler.OrganizationHandler
	Role         *handler.RoleHandler
	RefData      *handler.RefDataHandler
	Donation     *handler.DonationHandler
	Reward       *handler.RewardHandler
	Feed         *handler.FeedHandler
	Settings     *handler.SettingsHandler
	Subscription *handler.SubscriptionHandler
	Page         *handler.PageHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, g *guard.Guard, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Admission chain prologue: cache suppression runs first so auth paths
	// carry no-store headers on every outcome, including the domain guard's
	// 404. Then the identity is attached (or not) for the guards further down.
	e.Use(guard.NoStoreCacheHeaders())
	e.Use(guard.SecondaryDomainOnly(cfg.SecondaryDomain, secondaryPathPrefixes))
	e.Use(guard.Authenticate(cfg.JWTSecret))
	e.Use(g.LoadUser())
	e.Use(g.SyncTimezone())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Provider webhook; authenticated by signature, not by session.
	e.POST("/webhooks/stripe", h.Donation.Webhook)

	registerPages(e, g, h)
	registerAPI(e, g, h)
}

func registerPages(e *echo.Echo, g *guard.Guard, h Handlers) {
	e.GET("/", h.Page.Home)
	e.GET("/login", h.Page.Login)
	e.GET("/register", h.Page.RegisterPage)
	e.GET("/verify-email", h.Page.VerifyNotice, g.RequireAuth())
	e.GET("/verify-email/:id", h.User.VerifyEmail)

	authed := e.Group("", g.RequireAuth())
	authed.GET("/profile", h.Page.Profile)
	authed.GET("/topics/select", h.Page.TopicSelect)
	authed.GET("/organization/topics/select", h.Page.OrgTopicSelect)
	authed.GET("/dashboard", h.Page.Dashboard)
	authed.GET("/feed", h.Page.Feed, g.RequireVerifiedEmail(), g.RequireTopicsSelected())

	merchant := e.Group("/merchant", g.RequireAuth(),
		g.RequireRoles(rbac.RoleMerchant), g.RequireActiveSubscription())
	merchant.GET("/dashboard", h.Page.MerchantDashboard)

	barter := e.Group("/barter", g.RequireAuth(),
		g.RequireRoles(rbac.RoleOrganization), g.RequireVerifiedEmail(),
		g.RequireTopicsSelected(), g.RequireApprovedOrganization())
	barter.GET("", h.Page.BarterHome)
}

func registerAPI(e *echo.Echo, g *guard.Guard, h Handlers) {
	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.POST("/auth/logout", h.Auth.Logout)
	api.GET("/campaigns", h.Donation.ListCampaigns)
	api.GET("/campaigns/:id", h.Donation.GetCampaign)
	api.POST("/campaigns/:id/donate", h.Donation.Donate)
	api.GET("/rewards", h.Reward.Hub)
	api.GET("/topics", h.User.ListTopics)

	// Authenticated routes
	authed := api.Group("", g.RequireAuth())
	authed.GET("/me", h.User.Me)
	authed.PUT("/me", h.User.UpdateProfile)
	authed.POST("/topics", h.User.SelectTopics)
	authed.POST("/email/resend", h.User.ResendVerification)
	authed.POST("/organizations", h.Organization.Register)
	authed.GET("/feed", h.Feed.List, g.RequireTopicsSelected())
	authed.POST("/feed", h.Feed.Create, g.RequireVerifiedEmail(), g.RequireTopicsSelected())

	// Organization routes; the approval guard attaches the organization.
	org := authed.Group("/organization",
		g.RequireRoles(rbac.RoleOrganization), g.RequireVerifiedEmail())
	org.POST("/campaigns", h.Donation.CreateCampaign, g.RequireApprovedOrganization())
	org.GET("/barter/directory", h.Organization.BarterDirectory, g.RequireApprovedOrganization())

	// Merchant routes behind the subscription guard.
	merchant := authed.Group("/merchant",
		g.RequireRoles(rbac.RoleMerchant), g.RequireActiveSubscription())
	merchant.GET("/subscription", h.Subscription.Status)
	merchant.POST("/subscription", h.Subscription.Link)
	merchant.GET("/offers", h.Reward.ListMine)
	merchant.POST("/offers", h.Reward.Create)
	merchant.PUT("/offers/:id", h.Reward.Update)
	merchant.DELETE("/offers/:id", h.Reward.Delete)

	// Admin routes: the role guard gates the group, named permissions gate
	// each operation.
	admin := authed.Group("/admin", g.RequireRoles(rbac.RoleAdmin))

	admin.GET("/roles", h.Role.List, g.RequirePermission(rbac.PermRoleView))
	admin.POST("/roles", h.Role.Create, g.RequirePermission(rbac.PermRoleCreate))
	admin.PUT("/roles/:id", h.Role.Update, g.RequirePermission(rbac.PermRoleUpdate))
	admin.DELETE("/roles/:id", h.Role.Delete, g.RequirePermission(rbac.PermRoleDelete))
	admin.PUT("/roles/:id/permissions", h.Role.SetPermissions, g.RequirePermission(rbac.PermRoleUpdate))
	admin.GET("/permissions", h.Role.ListPermissions, g.RequirePermission(rbac.PermRoleView))

	admin.GET("/organizations/pending", h.Organization.ListPending, g.RequirePermission(rbac.PermOrgView))
	admin.POST("/organizations/:id/approve", h.Organization.Approve, g.RequirePermission(rbac.PermOrgApprove))
	admin.POST("/organizations/:id/reject", h.Organization.Reject, g.RequirePermission(rbac.PermOrgReject))

	admin.GET("/settings", h.Settings.Get)
	admin.PUT("/settings", h.Settings.Update, g.RequirePermission(rbac.PermSettingsUpdate))

	admin.GET("/codes/:kind", h.RefData.ListCodes, g.RequireCodePermission("view"))
	admin.POST("/codes/:kind", h.RefData.CreateCode, g.RequireCodePermission("create"))
	admin.PUT("/codes/:kind/:id", h.RefData.UpdateCode, g.RequireCodePermission("update"))
	admin.DELETE("/codes/:kind/:id", h.RefData.DeleteCode, g.RequireCodePermission("delete"))

	admin.GET("/bmf", h.RefData.ListBmf, g.RequirePermission(rbac.PermBmfRecordView))
	admin.POST("/bmf", h.RefData.CreateBmf, g.RequirePermission(rbac.PermBmfRecordCreate))
	admin.PUT("/bmf/:id", h.RefData.UpdateBmf, g.RequirePermission(rbac.PermBmfRecordUpdate))
	admin.DELETE("/bmf/:id", h.RefData.DeleteBmf, g.RequirePermission(rbac.PermBmfRecordDelete))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
