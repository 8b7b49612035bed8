package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the upper bound of the "Low" stock bucket.
const LowStockThreshold = 10

// Item represents a stocked product in the inventory.
// It includes a unique SKU, a category reference, a price and the current
// quantity on hand. The quantity snapshot is mutated only by the ledger;
// every change is paired with a StockTransaction row.
type Item struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	SKU         string `gorm:"uniqueIndex;not null"`
	Description string
	CategoryID  uint            `gorm:"not null"`
	Category    Category        `gorm:"foreignKey:CategoryID"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (i *Item) TableName() string {
	return "items"
}
