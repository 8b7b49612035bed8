package models

import (
	"errors"

	"gorm.io/gorm"
)

// DefaultCategories is the seed set created on first startup.
var DefaultCategories = []string{
	"Electronics",
	"Office Supplies",
	"Furniture",
	"Raw Materials",
	"Tools",
	"Food & Beverage",
}

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{db: db}
}

// GetAllCategories returns every category ordered by name.
func (r *CategoriesRepository) GetAllCategories() ([]Category, error) {
	var categories []Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// SeedDefaults creates any default categories that do not exist yet. Safe to
// run on every startup.
func (r *CategoriesRepository) SeedDefaults() error {
	for _, name := range DefaultCategories {
		category := Category{Name: name}
		err := r.db.Where("name = ?", name).FirstOrCreate(&category).Error
		if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return nil
}

// resolveOrCreateCategory returns the category with the given name, creating
// it when absent. Concurrent creators are arbitrated by the unique index on
// name: the insert runs in a savepoint so a loser can re-read the winner's
// row without poisoning the surrounding transaction.
func resolveOrCreateCategory(tx *gorm.DB, name string) (Category, error) {
	var category Category
	err := tx.Where("name = ?", name).First(&category).Error
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Category{}, err
	}

	category = Category{Name: name}
	err = tx.Transaction(func(inner *gorm.DB) error {
		return inner.Create(&category).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = tx.Where("name = ?", name).First(&category).Error
	}
	if err != nil {
		return Category{}, err
	}
	return category, nil
}
