package models

import "time"

// User exists for transaction attribution only. Authentication and session
// handling live outside this service; the ledger works without a user.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

func (u *User) TableName() string {
	return "users"
}
