package database

import (
	"fmt"

	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"

	"gorm.io/gorm"
)

// Migrate creates or updates every table, parents before children.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.ServiceCategory{},
		&entity.Professional{},
		&entity.ServiceRequest{},
		&entity.Review{},
		&entity.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
