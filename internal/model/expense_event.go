package model

import "time"

const (
	ExpenseEventCreated = "created"
	ExpenseEventDeleted = "deleted"
)

// ExpenseEvent is the audit record persisted asynchronously for every
// expense mutation. It has no read path on the HTTP surface.
type ExpenseEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ExpenseID uint      `gorm:"not null" json:"expense_id"`
	Action    string    `gorm:"size:16;not null" json:"action"`
	Amount    float64   `json:"amount"`
	Category  string    `gorm:"size:64" json:"category"`
	Date      string    `gorm:"size:10" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
