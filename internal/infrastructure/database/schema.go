package database

import (
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
)

// EnsureSchema creates or updates the tables for every persistence
// model. Used by the CLI before seeding.
func EnsureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.MenuModel{},
		&models.RoleModel{},
		&models.RoleGrantModel{},
		&models.UserGrantModel{},
		&models.AccountModel{},
		&models.TicketModel{},
		&models.TicketStatusModel{},
		&models.TicketPriorityModel{},
		&models.TicketSequenceModel{},
		&models.NotificationLogModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
