package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewTransaction describes one stock movement to record.
type NewTransaction struct {
	ItemID   uint
	Type     TransactionType
	Quantity int
	UserID   *uint
	Notes    string
}

// LedgerRepository is the only writer of item quantities. Every change is
// paired with an immutable StockTransaction row in the same database
// transaction, so quantity and history are mutually visible or mutually
// absent.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Record applies a stock movement and returns the created transaction with
// its item and user resolved. Outgoing movements use a conditional decrement
// (UPDATE ... WHERE quantity >= amount) so two concurrent withdrawals can
// never drive the quantity negative; zero rows affected means insufficient
// stock.
func (r *LedgerRepository) Record(input NewTransaction) (*StockTransaction, error) {
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: transaction type must be %q or %q",
			ErrInvalidInput, TransactionIn, TransactionOut)
	}
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	var record StockTransaction
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var item Item
		if err := tx.First(&item, input.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		var res *gorm.DB
		switch input.Type {
		case TransactionOut:
			res = tx.Model(&Item{}).
				Where("id = ? AND quantity >= ?", input.ItemID, input.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", input.Quantity))
		case TransactionIn:
			res = tx.Model(&Item{}).
				Where("id = ?", input.ItemID).
				Update("quantity", gorm.Expr("quantity + ?", input.Quantity))
		}
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if input.Type == TransactionOut {
				return ErrInsufficientStock
			}
			return ErrItemNotFound
		}

		// Re-read so previous/new reflect the update that actually applied,
		// not a snapshot that may predate a concurrent writer.
		if err := tx.First(&item, input.ItemID).Error; err != nil {
			return err
		}
		newQuantity := item.Quantity
		previousQuantity := newQuantity - input.Quantity
		if input.Type == TransactionOut {
			previousQuantity = newQuantity + input.Quantity
		}

		record = StockTransaction{
			ItemID:           item.ID,
			Type:             input.Type,
			Quantity:         input.Quantity,
			PreviousQuantity: previousQuantity,
			NewQuantity:      newQuantity,
			Notes:            input.Notes,
			UserID:           input.UserID,
		}
		if err := tx.Omit(clause.Associations).Create(&record).Error; err != nil {
			return err
		}
		return tx.
			Preload("Item").
			Preload("Item.Category").
			Preload("User").
			First(&record, record.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns transactions newest first, optionally limited to one item.
// Ties on the timestamp are broken by descending id so the order is stable
// within a single clock tick.
func (r *LedgerRepository) List(itemID *uint) ([]StockTransaction, error) {
	query := r.db.
		Preload("Item").
		Preload("User").
		Order("created_at DESC, id DESC")
	if itemID != nil {
		query = query.Where("item_id = ?", *itemID)
	}

	var transactions []StockTransaction
	if err := query.Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}
