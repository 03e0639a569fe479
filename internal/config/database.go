package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"crewquick/internal/models"
)

// InitDB opens the database connection and applies migrations. TranslateError
// makes unique-constraint violations surface as gorm.ErrDuplicatedKey so the
// handlers can map them to conflict responses.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate applies the schema for all marketplace models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Worker{},
		&models.Contractor{},
		&models.Job{},
		&models.JobApplication{},
	)
}
