package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&User{}, &Category{}, &Item{}, &StockTransaction{}))
	return db
}

func mustCreateItem(t *testing.T, repo *CatalogRepository, name, sku, category string, price float64, quantity int) *Item {
	t.Helper()

	item, err := repo.CreateItem(NewItem{
		Name:     name,
		SKU:      sku,
		Category: category,
		Price:    decimal.NewFromFloat(price),
		Quantity: quantity,
	})
	require.NoError(t, err)
	return item
}

func itemQuantity(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()

	var item Item
	require.NoError(t, db.First(&item, id).Error)
	return item.Quantity
}

func transactionCount(t *testing.T, db *gorm.DB, itemID uint) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&StockTransaction{}).
		Where("item_id = ?", itemID).
		Count(&count).Error)
	return count
}
