package repository

import (
	"fmt"

	"gorm.io/gorm"

	"spendtrack/internal/model"
)

type ExpenseEventRepository struct {
	db *gorm.DB
}

func NewExpenseEventRepository(db *gorm.DB) *ExpenseEventRepository {
	return &ExpenseEventRepository{db: db}
}

func (r *ExpenseEventRepository) Create(event *model.ExpenseEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("create expense event failed: %w", err)
	}
	return nil
}
