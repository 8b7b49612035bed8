package models

// Category groups inventory items under a unique name.
// Categories are created lazily the first time an item references a new
// name, or seeded at startup with the default set.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (c *Category) TableName() string {
	return "categories"
}
