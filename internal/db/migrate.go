package db

import (
	"fmt"                             // Error wrapping
	"posyandu_system/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// Migrate synchronizes the schema with the domain models
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing columns and indexes
	if err := db.AutoMigrate(&domain.User{}, &domain.HasilPemeriksaan{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logrus.Info("Database and tables synchronized") // Log successful migration
	return nil
}
