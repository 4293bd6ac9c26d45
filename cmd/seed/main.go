package main

import (
	"context"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"givehub/internal/config"
	"givehub/internal/db"
	"givehub/internal/model"
	"givehub/internal/rbac"
)

// defaultTopics are the interest areas offered on first login.
var defaultTopics = []string{
	"Education",
	"Environment",
	"Health",
	"Housing",
	"Animal Welfare",
	"Arts & Culture",
	"Food Security",
	"Youth Programs",
}

// sampleCodes gives each reference-code table a few rows so the admin pages
// are not empty on a fresh install.
var sampleCodes = map[string][][2]string{
	"classification": {
		{"1000", "Charitable Organization"},
		{"2000", "Educational Organization"},
		{"7000", "Religious Organization"},
	},
	"ntee": {
		{"A20", "Arts & Culture"},
		{"B25", "Secondary Schools"},
		{"P30", "Children & Youth Services"},
	},
	"status": {
		{"01", "Unconditional Exemption"},
		{"02", "Conditional Exemption"},
	},
	"deductibility": {
		{"1", "Contributions are deductible"},
		{"2", "Contributions are not deductible"},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.Permission{},
		&model.Topic{},
		&model.Setting{},
		&model.RefCode{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seedPermissions(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed permissions: %v", err)
	}
	if err := seedRoles(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}
	if err := seedTopics(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed topics: %v", err)
	}
	if err := seedRefCodes(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed reference codes: %v", err)
	}
	if err := seedSettings(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}
	if err := seedAdmin(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// seedPermissions inserts the permission catalog. Re-runs are no-ops; names
// are unique and existing rows are left untouched.
func seedPermissions(ctx context.Context, gormDB *gorm.DB) error {
	for _, entry := range rbac.Catalog() {
		permission := model.Permission{Name: entry.Name, Category: entry.Category}
		if err := gormDB.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&permission).Error; err != nil {
			return err
		}
	}
	log.Printf("  - Permissions seeded: %d", len(rbac.Catalog()))
	return nil
}

// seedRoles creates a role row per built-in role carrying its default bundle.
// Bundles an admin already edited in the database are not overwritten.
func seedRoles(ctx context.Context, gormDB *gorm.DB) error {
	for role, bundle := range rbac.DefaultBundles {
		var existing model.Role
		err := gormDB.WithContext(ctx).Where("name = ?", string(role)).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		var permissions []model.Permission
		if err := gormDB.WithContext(ctx).
			Where("name IN ?", bundle).Find(&permissions).Error; err != nil {
			return err
		}

		newRole := model.Role{
			Name:        string(role),
			Description: "Built-in " + string(role) + " role",
			Permissions: permissions,
		}
		if err := gormDB.WithContext(ctx).Create(&newRole).Error; err != nil {
			return err
		}
		log.Printf("  - Role created: %s (%d permissions)", role, len(permissions))
	}
	return nil
}

func seedTopics(ctx context.Context, gormDB *gorm.DB) error {
	for _, name := range defaultTopics {
		topic := model.Topic{Name: name}
		if err := gormDB.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&topic).Error; err != nil {
			return err
		}
	}
	log.Printf("  - Topics seeded: %d", len(defaultTopics))
	return nil
}

func seedRefCodes(ctx context.Context, gormDB *gorm.DB) error {
	total := 0
	for kind, codes := range sampleCodes {
		for _, pair := range codes {
			refCode := model.RefCode{Kind: kind, Code: pair[0], Name: pair[1]}
			if err := gormDB.WithContext(ctx).
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&refCode).Error; err != nil {
				return err
			}
			total++
		}
	}
	log.Printf("  - Reference codes seeded: %d", total)
	return nil
}

func seedSettings(ctx context.Context, gormDB *gorm.DB) error {
	setting := model.Setting{
		Key:   model.SettingEmailVerificationRequired,
		Value: "true",
	}
	return gormDB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&setting).Error
}

// seedAdmin creates the bootstrap admin from ADMIN_EMAIL / ADMIN_PASSWORD.
// Skipped when the account already exists or the variables are unset.
func seedAdmin(ctx context.Context, gormDB *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("  - ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin user")
		return nil
	}

	var existing model.User
	err := gormDB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("  - Admin user already exists: %s", email)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := model.User{
		Name:            "Administrator",
		Email:           email,
		PasswordHash:    string(hash),
		Role:            string(rbac.RoleAdmin),
		EmailVerifiedAt: &now,
	}
	if err := gormDB.WithContext(ctx).Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("  - Admin user created: %s", email)
	return nil
}
