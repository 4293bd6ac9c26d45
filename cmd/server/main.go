package main

import (
	"log"
	"net/http"
	"os"

	_ "givehub/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"givehub/internal/auth"
	"givehub/internal/billing"
	"givehub/internal/cache"
	"givehub/internal/config"
	"givehub/internal/db"
	"givehub/internal/guard"
	"givehub/internal/handler"
	"givehub/internal/model"
	"givehub/internal/notification"
	"givehub/internal/page"
	"givehub/internal/repository"
	"givehub/internal/router"
	"givehub/internal/service"
	"givehub/internal/settings"
)

// @title GiveHub API
// @version 1.0
// @description Nonprofit and merchant platform with role and permission based access control.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Donation{},
			&model.Campaign{},
			&model.Subscription{},
			&model.RewardOffer{},
			&model.FeedPost{},
			&model.BoardMember{},
			&model.Organization{},
			&model.BmfRecord{},
			&model.RefCode{},
			&model.Setting{},
			&model.Topic{},
			&model.Permission{},
			&model.Role{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.Permission{},
		&model.Topic{},
		&model.Setting{},
		&model.Organization{},
		&model.BoardMember{},
		&model.RefCode{},
		&model.BmfRecord{},
		&model.Subscription{},
		&model.Campaign{},
		&model.Donation{},
		&model.RewardOffer{},
		&model.FeedPost{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	orgRepo := repository.NewOrganizationRepository(gormDB)
	subRepo := repository.NewSubscriptionRepository(gormDB)
	donationRepo := repository.NewDonationRepository(gormDB)
	refRepo := repository.NewRefCodeRepository(gormDB)
	rewardRepo := repository.NewRewardRepository(gormDB)
	feedRepo := repository.NewFeedRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	settingsStore := settings.NewStore(gormDB)
	notifier := notification.NewService(cfg.BaseURL)
	provider := billing.NewStripeProvider(cfg.StripeSecretKey)

	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	orgService := service.NewOrganizationService(orgRepo, userRepo)
	subService := service.NewSubscriptionService(subRepo, provider)
	donationService := service.NewDonationService(donationRepo, provider)
	refService := service.NewRefDataService(refRepo)
	rewardService := service.NewRewardService(rewardRepo)
	feedService := service.NewFeedService(feedRepo)

	// Page renderer and guard chain
	pages := page.NewRenderer(roleRepo, cfg.PublicStorageURL)
	g := guard.New(guard.Deps{
		Users:      userRepo,
		Orgs:       orgRepo,
		Subs:       subService,
		Resolver:   roleRepo,
		Settings:   settingsStore,
		Notifier:   notifier,
		Pages:      pages,
		Compliance: cfg.Compliance,
	})

	// Initialize handlers
	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		User:         handler.NewUserHandler(userService, notifier),
		Organization: handler.NewOrganizationHandler(orgService),
		Role:         handler.NewRoleHandler(roleRepo),
		RefData:      handler.NewRefDataHandler(refService),
		Donation:     handler.NewDonationHandler(donationService, cfg.BaseURL, cfg.StripeWebhookKey),
		Reward:       handler.NewRewardHandler(rewardService),
		Feed:         handler.NewFeedHandler(feedService),
		Settings:     handler.NewSettingsHandler(settingsStore),
		Subscription: handler.NewSubscriptionHandler(subService),
		Page:         handler.NewPageHandler(pages, userService, orgService, subService, feedService),
	}

	// Register routes
	router.Register(e, cfg, g, handlers)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
