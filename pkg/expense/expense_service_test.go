package expense

import (
	"context"
	"testing"
	"time"

	"github.com/budgetwise/budgetwise/internal/event_bus"
	"github.com/budgetwise/budgetwise/pkg/ledger"
	"github.com/budgetwise/budgetwise/pkg/user"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func setup() (*ServiceImpl, context.Context) {
	service := NewService(NewMemoryRepo(), event_bus.NewEventBus())
	ctx := user.WithUser(context.Background(), user.User{Id: 1, Uid: "test-user", DisplayName: "Test User"})
	return service, ctx
}

func newExpense(description, category, amount string, d int) Expense {
	return Expense{
		Date:        time.Date(2023, time.June, d, 0, 0, 0, 0, time.UTC),
		Category:    category,
		Amount:      decimal.MustParse(amount),
		Description: description,
	}
}

func TestService_CreateMintsIdAndLists(t *testing.T) {
	service, ctx := setup()

	created, err := service.Create(ctx, newExpense("Dinner at Italian restaurant", "Food & Dining", "45.80", 18))
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	expenses, err := service.List(ctx, ledger.Query{})
	assert.NoError(t, err)
	assert.Len(t, expenses, 1)
	assert.Equal(t, created, expenses[0])
}

func TestService_CreateRejectsInvalidExpense(t *testing.T) {
	service, ctx := setup()

	tests := []struct {
		name    string
		expense Expense
	}{
		{"missing description", newExpense("", "Food & Dining", "10", 1)},
		{"zero amount", newExpense("Coffee", "Food & Dining", "0", 1)},
		{"negative amount", newExpense("Coffee", "Food & Dining", "-3", 1)},
		{"unknown category", newExpense("Coffee", "Coffee & Snacks", "3", 1)},
		{"income is not a spending category", newExpense("Salary", "Income", "3200", 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, tt.expense)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// nothing was stored by the rejected creates
	expenses, err := service.List(ctx, ledger.Query{})
	assert.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestService_ListFiltersAndOrdersByDateDescending(t *testing.T) {
	service, ctx := setup()
	_, _ = service.Create(ctx, newExpense("Grocery shopping", "Food & Dining", "32.40", 8))
	_, _ = service.Create(ctx, newExpense("Dinner at Italian restaurant", "Food & Dining", "45.80", 18))
	_, _ = service.Create(ctx, newExpense("Uber ride", "Transportation", "25.50", 17))

	expenses, err := service.List(ctx, ledger.Query{Category: "Food & Dining"})
	assert.NoError(t, err)
	assert.Len(t, expenses, 2)
	assert.Equal(t, "Dinner at Italian restaurant", expenses[0].Description)
	assert.Equal(t, "Grocery shopping", expenses[1].Description)

	expenses, err = service.List(ctx, ledger.Query{Text: "uber"})
	assert.NoError(t, err)
	assert.Len(t, expenses, 1)
	assert.Equal(t, "Uber ride", expenses[0].Description)
}

func TestService_UpdateReplacesById(t *testing.T) {
	service, ctx := setup()
	created, _ := service.Create(ctx, newExpense("Movie tickets", "Entertainment", "18.00", 15))

	created.Amount = decimal.MustParse("21.50")
	updated, err := service.Update(ctx, created)
	assert.NoError(t, err)
	assert.Equal(t, decimal.MustParse("21.50"), updated.Amount)

	expenses, _ := service.List(ctx, ledger.Query{})
	assert.Len(t, expenses, 1)
	assert.Equal(t, decimal.MustParse("21.50"), expenses[0].Amount)
}

func TestService_UpdateUnknownIdIsNotFound(t *testing.T) {
	service, ctx := setup()

	missing := newExpense("Pharmacy", "Health", "65.00", 5)
	missing.ID = "no-such-id"
	_, err := service.Update(ctx, missing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	service, ctx := setup()
	created, _ := service.Create(ctx, newExpense("Pharmacy", "Health", "65.00", 5))

	assert.NoError(t, service.Delete(ctx, created.ID))
	assert.ErrorIs(t, service.Delete(ctx, created.ID), ErrNotFound)

	expenses, _ := service.List(ctx, ledger.Query{})
	assert.Empty(t, expenses)
}

func TestService_PublishesRecordChanges(t *testing.T) {
	bus := event_bus.NewEventBus()
	service := NewService(NewMemoryRepo(), bus)
	ctx := user.WithUser(context.Background(), user.User{Id: 1, Uid: "test-user"})

	var changes []event_bus.RecordChange
	event_bus.SubscribeTyped[event_bus.RecordChange](bus, event_bus.ExpenseCreated,
		func(e event_bus.EventT[event_bus.RecordChange]) error {
			changes = append(changes, e.Data)
			return nil
		})

	created, err := service.Create(ctx, newExpense("Electricity bill", "Utilities", "85.20", 12))
	assert.NoError(t, err)
	assert.Len(t, changes, 1)
	assert.Equal(t, created.ID, changes[0].RecordID)
	assert.Equal(t, "expense", changes[0].Kind)
	assert.Equal(t, "Electricity bill", changes[0].Title)
}
