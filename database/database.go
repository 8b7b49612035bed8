// Package database wires the relational store.
package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/stocktally/inventory-api/models"
)

// Open connects to Postgres. TranslateError is enabled so unique-constraint
// violations surface as gorm.ErrDuplicatedKey and can be matched upstream
// instead of being parsed out of driver messages.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// Migrate creates or updates the schema for all inventory tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Item{},
		&models.StockTransaction{},
	)
}
