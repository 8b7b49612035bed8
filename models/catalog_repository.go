package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Stock level buckets accepted by ItemFilters.
const (
	StockLevelLow = "Low"
	StockLevelOut = "Out"
	StockLevelIn  = "In"
)

// CategoryAll is the sentinel category filter value meaning "no filter".
const CategoryAll = "All"

// NewItem carries the fields needed to create an inventory item. Quantity is
// the opening stock; it is written to the ledger together with the item so
// the transaction history explains every unit ever held.
type NewItem struct {
	Name        string
	SKU         string
	Description string
	Category    string
	Price       decimal.Decimal
	Quantity    int
}

// ItemUpdate is a partial update; nil fields are left untouched. Quantity is
// deliberately absent: stock corrections go through LedgerRepository.Record
// so every change stays auditable.
type ItemUpdate struct {
	Name        *string
	SKU         *string
	Description *string
	Category    *string
	Price       *decimal.Decimal
}

// ItemFilters compose with logical AND. An empty or "All" category means no
// category filter; a StockLevel other than Low/Out/In applies no stock
// filter.
type ItemFilters struct {
	Search     string
	Category   string
	StockLevel string
}

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// CreateItem inserts the item, creating its category on demand. A nonzero
// opening quantity is recorded as an "in" transaction within the same
// database transaction as the insert.
func (r *CatalogRepository) CreateItem(input NewItem) (*Item, error) {
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if input.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	var item Item
	err := r.db.Transaction(func(tx *gorm.DB) error {
		category, err := resolveOrCreateCategory(tx, input.Category)
		if err != nil {
			return err
		}

		item = Item{
			Name:        input.Name,
			SKU:         input.SKU,
			Description: input.Description,
			CategoryID:  category.ID,
			Price:       input.Price,
			Quantity:    input.Quantity,
		}
		if err := tx.Omit(clause.Associations).Create(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateSKU
			}
			return err
		}
		item.Category = category

		if input.Quantity > 0 {
			opening := StockTransaction{
				ItemID:           item.ID,
				Type:             TransactionIn,
				Quantity:         input.Quantity,
				PreviousQuantity: 0,
				NewQuantity:      input.Quantity,
				Notes:            "initial stock",
			}
			if err := tx.Omit(clause.Associations).Create(&opening).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem applies only the fields present in the update. The category
// field resolves or creates a category by name, mirroring item creation.
func (r *CatalogRepository) UpdateItem(id uint, update ItemUpdate) (*Item, error) {
	if update.Price != nil && update.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	var item Item
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		if update.Name != nil {
			item.Name = *update.Name
		}
		if update.SKU != nil {
			item.SKU = *update.SKU
		}
		if update.Description != nil {
			item.Description = *update.Description
		}
		if update.Category != nil {
			category, err := resolveOrCreateCategory(tx, *update.Category)
			if err != nil {
				return err
			}
			item.CategoryID = category.ID
		}
		if update.Price != nil {
			item.Price = *update.Price
		}

		if err := tx.Omit(clause.Associations).Save(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateSKU
			}
			return err
		}
		return tx.Preload("Category").First(&item, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes the item together with its transaction history and
// returns the deleted snapshot.
func (r *CatalogRepository) DeleteItem(id uint) (*Item, error) {
	var item Item
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Category").First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&StockTransaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Item{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepository) GetItem(id uint) (*Item, error) {
	var item Item
	if err := r.db.Preload("Category").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// ListItems returns items matching all given filters, in no particular
// order.
func (r *CatalogRepository) ListItems(filters ItemFilters) ([]Item, error) {
	query := r.db.Model(&Item{}).
		Select("items.*").
		Preload("Category")

	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where(
			"LOWER(items.name) LIKE ? OR LOWER(items.sku) LIKE ? OR LOWER(items.description) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if filters.Category != "" && filters.Category != CategoryAll {
		query = query.
			Joins("LEFT JOIN categories ON categories.id = items.category_id").
			Where("categories.name = ?", filters.Category)
	}

	switch filters.StockLevel {
	case StockLevelLow:
		query = query.Where("items.quantity > 0 AND items.quantity <= ?", LowStockThreshold)
	case StockLevelOut:
		query = query.Where("items.quantity = 0")
	case StockLevelIn:
		query = query.Where("items.quantity > 0")
	}

	var items []Item
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
