package db

import (
	"fmt"
	"log"

	"github.com/auntiehomie/castkeepr/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations. The handle is
// returned rather than stored in a package global so tests can substitute
// their own store.
func Connect(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established")

	// Auto Migrate
	if err := database.AutoMigrate(&models.SavedCast{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("Database migration completed")

	return database, nil
}
