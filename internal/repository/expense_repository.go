package repository

import (
	"fmt"

	"gorm.io/gorm"

	"spendtrack/internal/model"
)

type ExpenseRepository struct {
	db *gorm.DB
}

// CategoryTotal is one row of the per-category aggregation.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(expense *model.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("create expense failed: %w", err)
	}
	return nil
}

// ListByUserID orders by the raw date string descending. Lexicographic order
// on YYYY-MM-DD matches chronological order for well-formed dates; malformed
// dates sort as plain strings.
func (r *ExpenseRepository) ListByUserID(userID uint) ([]model.Expense, error) {
	expenses := make([]model.Expense, 0)
	if err := r.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses failed: %w", err)
	}
	return expenses, nil
}

// DeleteByIDAndUserID is a no-op for ids that do not exist or belong to
// another user; it performs no existence check.
func (r *ExpenseRepository) DeleteByIDAndUserID(id, userID uint) error {
	if err := r.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Expense{}).Error; err != nil {
		return fmt.Errorf("delete expense failed: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) SumByUserID(userID uint) (float64, error) {
	var total float64
	if err := r.db.Model(&model.Expense{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("sum expenses failed: %w", err)
	}
	return total, nil
}

// SumByUserIDAndDatePrefix matches the month by literal string prefix against
// the stored date column, not by calendar-range comparison.
func (r *ExpenseRepository) SumByUserIDAndDatePrefix(userID uint, prefix string) (float64, error) {
	var total float64
	if err := r.db.Model(&model.Expense{}).
		Where("user_id = ? AND date LIKE ?", userID, prefix+"%").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("sum expenses by month failed: %w", err)
	}
	return total, nil
}

func (r *ExpenseRepository) CategoryTotalsByUserID(userID uint) ([]CategoryTotal, error) {
	totals := make([]CategoryTotal, 0)
	if err := r.db.Model(&model.Expense{}).
		Where("user_id = ?", userID).
		Select("category, SUM(amount) AS total").
		Group("category").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("sum expenses by category failed: %w", err)
	}
	return totals, nil
}
