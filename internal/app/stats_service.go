package app

import (
	"context"
	"time"

	"spendtrack/internal/repository"
)

// SummaryCache holds a user's computed summary between writes. Nil-safe:
// with no cache configured every call hits the store.
type SummaryCache interface {
	Get(ctx context.Context, userID uint) (*Summary, bool, error)
	Set(ctx context.Context, userID uint, summary *Summary) error
}

type StatsService struct {
	expenseRepo *repository.ExpenseRepository
	cache       SummaryCache
	now         func() time.Time
}

type Summary struct {
	Total        float64                    `json:"total"`
	MonthlyTotal float64                    `json:"monthly_total"`
	Categories   []repository.CategoryTotal `json:"categories"`
}

func NewStatsService(expenseRepo *repository.ExpenseRepository, cache SummaryCache) *StatsService {
	return &StatsService{
		expenseRepo: expenseRepo,
		cache:       cache,
		now:         time.Now,
	}
}

// Summary issues three independent reads with no transaction around them; a
// write landing between reads can produce a snapshot that is not
// instant-consistent. The monthly figure is a literal YYYY-MM prefix match on
// the stored date string, not a calendar-range comparison.
func (s *StatsService) Summary(userID uint) (*Summary, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}

	ctx := context.Background()
	if s.cache != nil {
		if cached, hit, err := s.cache.Get(ctx, userID); err == nil && hit {
			return cached, nil
		}
	}

	total, err := s.expenseRepo.SumByUserID(userID)
	if err != nil {
		return nil, err
	}

	monthPrefix := s.now().Format("2006-01")
	monthlyTotal, err := s.expenseRepo.SumByUserIDAndDatePrefix(userID, monthPrefix)
	if err != nil {
		return nil, err
	}

	categories, err := s.expenseRepo.CategoryTotalsByUserID(userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Total:        total,
		MonthlyTotal: monthlyTotal,
		Categories:   categories,
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, userID, summary)
	}
	return summary, nil
}
