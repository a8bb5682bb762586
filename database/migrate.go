package database

import (
	"gorm.io/gorm"

	"talenthub_backend/internal/models"
)

// AutoMigrate creates or updates the four auth tables. Profile tables
// carry the ON DELETE CASCADE foreign keys back to users.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Candidate{},
		&models.Company{},
		&models.RefreshToken{},
	)
}
