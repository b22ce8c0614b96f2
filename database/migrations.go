package database

import (
	"log/slog"
	"os"

	"github.com/craftbase/appcatalog/accesscontrol"
	"github.com/craftbase/appcatalog/database/models"
	"gorm.io/gorm"
)

// AutoMigrate brings the schema up to date for all catalog entities.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.App{},
		&models.Documentation{},
		&models.Changelog{},
		&models.Attachment{},
	)
}

// SeedAdminUser creates the initial admin account if no user exists for the
// configured email. Credentials come from SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD.
func SeedAdminUser(db *gorm.DB) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		slog.Info("no seed admin configured, skipping")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		slog.Info("seed admin already exists", "email", email)
		return nil
	}

	admin := models.User{
		Name:  "Admin User",
		Email: email,
		Role:  accesscontrol.RoleAdmin,
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	slog.Info("seed admin created", "email", email)
	return nil
}
