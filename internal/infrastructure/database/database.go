package database

import (
	"fmt"

	"foodstall-backend/config"
	"foodstall-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// NewConnection opens the database selected by DB_DRIVER.
func NewConnection(cfg config.DBConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "", "postgres":
		return NewPostgresConnection(cfg)
	case "sqlite":
		return NewSQLiteConnection(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate creates or updates every table of the application.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.FoodCategory{},
		&entity.Food{},
		&entity.FoodMenu{},
		&entity.Employee{},
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.AuditLog{},
	)
}
