package config

import (
	"os"
	"strconv"
)

// ComplianceChecks toggles the organization compliance sub-checks that are
// currently disabled in production. They ship off by default so re-enabling
// any of them is a configuration change, not a deploy.
type ComplianceChecks struct {
	TaxID        bool
	KYB          bool
	BoardOfficer bool
}

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort       string
	BaseURL          string
	MySQLDSN         string
	RedisAddr        string
	RedisDB          int
	RedisPass        string
	JWTSecret        string
	SwaggerHost      string
	PublicStorageURL string
	SecondaryDomain  string
	StripeSecretKey  string
	StripeWebhookKey string
	Compliance       ComplianceChecks
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		BaseURL:          getEnv("BASE_URL", "http://localhost:8080"),
		MySQLDSN:         getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/givehub?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        getEnv("JWT_SECRET", "change-me"),
		SwaggerHost:      os.Getenv("SWAGGER_HOST"),
		PublicStorageURL: getEnv("PUBLIC_STORAGE_URL", "/storage"),
		SecondaryDomain:  os.Getenv("SECONDARY_DOMAIN"),
		StripeSecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookKey: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		Compliance: ComplianceChecks{
			TaxID:        getEnvBool("GUARD_TAX_ID_CHECK", false),
			KYB:          getEnvBool("GUARD_KYB_CHECK", false),
			BoardOfficer: getEnvBool("GUARD_BOARD_OFFICER_CHECK", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
