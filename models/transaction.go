package models

import "time"

// TransactionType classifies a stock movement.
type TransactionType string

const (
	TransactionIn  TransactionType = "in"
	TransactionOut TransactionType = "out"
)

// Valid reports whether t is a known movement type.
func (t TransactionType) Valid() bool {
	return t == TransactionIn || t == TransactionOut
}

// StockTransaction is the immutable record of one stock movement. Rows are
// only ever inserted, never updated; the sole exception is item deletion,
// which removes the item's history in the same database transaction.
type StockTransaction struct {
	ID               uint            `gorm:"primaryKey"`
	ItemID           uint            `gorm:"not null;index"`
	Item             Item            `gorm:"foreignKey:ItemID"`
	Type             TransactionType `gorm:"type:varchar(10);not null"`
	Quantity         int             `gorm:"not null"`
	PreviousQuantity int             `gorm:"not null"`
	NewQuantity      int             `gorm:"not null"`
	Notes            string
	UserID           *uint
	User             *User `gorm:"foreignKey:UserID"`
	CreatedAt        time.Time
}

func (t *StockTransaction) TableName() string {
	return "stock_transactions"
}
