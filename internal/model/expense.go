package model

import "time"

// Expense keeps Date as the raw YYYY-MM-DD string it was submitted with.
// Ordering and month filtering are string operations on this column.
type Expense struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Category  string    `gorm:"size:64;not null" json:"category"`
	Date      string    `gorm:"size:10;not null" json:"date"`
	Note      string    `gorm:"size:255" json:"note"`
	CreatedAt time.Time `json:"created_at"`
}
