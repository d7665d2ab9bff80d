package app

import (
	"context"
	"log"

	"spendtrack/internal/model"
	"spendtrack/internal/repository"
)

// EventPublisher forwards expense mutations to the audit pipeline.
// Publishing is best-effort and never affects the caller's result.
type EventPublisher interface {
	Publish(ctx context.Context, event model.ExpenseEvent) error
}

// SummaryInvalidator drops any cached statistics for a user after a write.
type SummaryInvalidator interface {
	Invalidate(ctx context.Context, userID uint) error
}

type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
	publisher   EventPublisher
	invalidator SummaryInvalidator
}

// CreateExpenseInput carries the authenticated principal explicitly; there
// is no ambient request identity below the transport layer.
type CreateExpenseInput struct {
	UserID   uint
	Amount   float64
	Category string
	Date     string
	Note     string
}

func NewExpenseService(
	expenseRepo *repository.ExpenseRepository,
	publisher EventPublisher,
	invalidator SummaryInvalidator,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		publisher:   publisher,
		invalidator: invalidator,
	}
}

// Create rejects a zero amount the same way it rejects an empty category or
// date. A genuinely free expense cannot be recorded; that quirk is kept on
// purpose and pinned by a test.
func (s *ExpenseService) Create(input CreateExpenseInput) (uint, error) {
	if input.UserID == 0 {
		return 0, ErrInvalidInput
	}
	if input.Amount == 0 || input.Category == "" || input.Date == "" {
		return 0, ErrInvalidInput
	}

	expense := &model.Expense{
		UserID:   input.UserID,
		Amount:   input.Amount,
		Category: input.Category,
		Date:     input.Date,
		Note:     input.Note,
	}
	if err := s.expenseRepo.Create(expense); err != nil {
		return 0, err
	}

	s.afterWrite(model.ExpenseEvent{
		UserID:    input.UserID,
		ExpenseID: expense.ID,
		Action:    model.ExpenseEventCreated,
		Amount:    expense.Amount,
		Category:  expense.Category,
		Date:      expense.Date,
	})
	return expense.ID, nil
}

func (s *ExpenseService) List(userID uint) ([]model.Expense, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.expenseRepo.ListByUserID(userID)
}

// Delete succeeds whether or not the id exists or belongs to the caller; a
// foreign or absent id deletes nothing and reports success all the same.
func (s *ExpenseService) Delete(userID, expenseID uint) error {
	if userID == 0 {
		return ErrInvalidInput
	}
	if err := s.expenseRepo.DeleteByIDAndUserID(expenseID, userID); err != nil {
		return err
	}

	s.afterWrite(model.ExpenseEvent{
		UserID:    userID,
		ExpenseID: expenseID,
		Action:    model.ExpenseEventDeleted,
	})
	return nil
}

func (s *ExpenseService) afterWrite(event model.ExpenseEvent) {
	ctx := context.Background()
	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, event.UserID); err != nil {
			log.Printf("invalidate summary cache failed: %v", err)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.Printf("publish expense event failed: %v", err)
		}
	}
}
