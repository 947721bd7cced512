package database

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/examplan/examplan_backend/internal/config"
	"github.com/examplan/examplan_backend/internal/models"
	"github.com/examplan/examplan_backend/internal/utils"
)

// SeedAdmin creates the initial Admin account when no admin exists yet.
func SeedAdmin(db *gorm.DB, cfg *config.Config, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", "Admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:        cfg.AdminEmail,
		PasswordHash: hashed,
		FirstName:    cfg.AdminFirstName,
		LastName:     cfg.AdminLastName,
		Role:         "Admin",
		Status:       "Active",
		CreationDate: time.Now().UTC(),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logger.Info("seeded initial admin", zap.String("email", admin.Email))
	return nil
}
