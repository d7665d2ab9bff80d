package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendtrack/internal/model"
	"spendtrack/internal/repository"
)

type recordingPublisher struct {
	events []model.ExpenseEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event model.ExpenseEvent) error {
	p.events = append(p.events, event)
	return nil
}

type recordingInvalidator struct {
	userIDs []uint
}

func (i *recordingInvalidator) Invalidate(_ context.Context, userID uint) error {
	i.userIDs = append(i.userIDs, userID)
	return nil
}

func newExpenseService(t *testing.T) *ExpenseService {
	t.Helper()
	return NewExpenseService(repository.NewExpenseRepository(newTestDB(t)), nil, nil)
}

func TestCreateExpense(t *testing.T) {
	svc := newExpenseService(t)

	id, err := svc.Create(CreateExpenseInput{
		UserID: 1, Amount: 12.5, Category: "food", Date: "2024-03-01",
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	expenses, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, id, expenses[0].ID)
	assert.Equal(t, 12.5, expenses[0].Amount)
	assert.Equal(t, "food", expenses[0].Category)
	assert.Equal(t, "2024-03-01", expenses[0].Date)
	assert.Empty(t, expenses[0].Note)
}

func TestCreateExpenseValidation(t *testing.T) {
	svc := newExpenseService(t)

	cases := []struct {
		name  string
		input CreateExpenseInput
	}{
		{"missing category", CreateExpenseInput{UserID: 1, Amount: 5, Date: "2024-03-01"}},
		{"missing date", CreateExpenseInput{UserID: 1, Amount: 5, Category: "food"}},
		// A zero amount is rejected like a missing field. Deliberate: a
		// free expense cannot be recorded.
		{"zero amount", CreateExpenseInput{UserID: 1, Amount: 0, Category: "food", Date: "2024-03-01"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListOrdersByRawDateStringDescending(t *testing.T) {
	svc := newExpenseService(t)

	_, err := svc.Create(CreateExpenseInput{UserID: 1, Amount: 1, Category: "a", Date: "2024-02-15"})
	require.NoError(t, err)
	// Malformed single-digit month. As a string "2024-1-1" sorts after
	// "2024-02-15" even though it is an earlier calendar date.
	_, err = svc.Create(CreateExpenseInput{UserID: 1, Amount: 2, Category: "b", Date: "2024-1-1"})
	require.NoError(t, err)

	expenses, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "2024-1-1", expenses[0].Date)
	assert.Equal(t, "2024-02-15", expenses[1].Date)
}

func TestListScopedToOwner(t *testing.T) {
	svc := newExpenseService(t)

	_, err := svc.Create(CreateExpenseInput{UserID: 1, Amount: 10, Category: "food", Date: "2024-03-01"})
	require.NoError(t, err)
	_, err = svc.Create(CreateExpenseInput{UserID: 2, Amount: 20, Category: "travel", Date: "2024-03-02"})
	require.NoError(t, err)

	expenses, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, 10.0, expenses[0].Amount)
}

func TestListEmpty(t *testing.T) {
	svc := newExpenseService(t)

	expenses, err := svc.List(1)
	require.NoError(t, err)
	assert.NotNil(t, expenses)
	assert.Empty(t, expenses)
}

func TestDelete(t *testing.T) {
	svc := newExpenseService(t)

	id, err := svc.Create(CreateExpenseInput{UserID: 1, Amount: 10, Category: "food", Date: "2024-03-01"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(1, id))

	expenses, err := svc.List(1)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestDeleteForeignOrMissingIDIsSilentNoOp(t *testing.T) {
	svc := newExpenseService(t)

	id, err := svc.Create(CreateExpenseInput{UserID: 1, Amount: 10, Category: "food", Date: "2024-03-01"})
	require.NoError(t, err)

	// Another user's id and a nonexistent id both report success.
	assert.NoError(t, svc.Delete(2, id))
	assert.NoError(t, svc.Delete(1, 9999))

	expenses, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, expenses, 1, "owner's expense must survive a foreign delete")
}

func TestWritesPublishEventsAndInvalidateCache(t *testing.T) {
	db := newTestDB(t)
	publisher := &recordingPublisher{}
	invalidator := &recordingInvalidator{}
	svc := NewExpenseService(repository.NewExpenseRepository(db), publisher, invalidator)

	id, err := svc.Create(CreateExpenseInput{UserID: 7, Amount: 3, Category: "food", Date: "2024-03-01"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(7, id))

	require.Len(t, publisher.events, 2)
	assert.Equal(t, model.ExpenseEventCreated, publisher.events[0].Action)
	assert.Equal(t, id, publisher.events[0].ExpenseID)
	assert.Equal(t, model.ExpenseEventDeleted, publisher.events[1].Action)
	assert.Equal(t, []uint{7, 7}, invalidator.userIDs)
}
