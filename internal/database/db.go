package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/examplan/examplan_backend/internal/config"
	"github.com/examplan/examplan_backend/internal/models"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Faculty{},
		&models.Department{},
		&models.Specialization{},
		&models.Group{},
		&models.User{},
		&models.Student{},
		&models.Professor{},
		&models.Session{},
		&models.Course{},
		&models.LabHolder{},
		&models.Room{},
		&models.ExamRequest{},
		&models.ExamRequestRoom{},
	)
}
