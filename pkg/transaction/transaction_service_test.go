package transaction

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

func newTransaction(description, category, amount string, kind Type, d int) Transaction {
	return Transaction{
		Date:        time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC),
		Description: description,
		Category:    category,
		Amount:      decimal.MustParse(amount),
		Type:        kind,
	}
}

func seedLedger(t *testing.T, service *ServiceImpl, ctx context.Context) {
	t.Helper()
	for _, transaction := range []Transaction{
		newTransaction("Salary Deposit", "Income", "3200", TypeIncome, 15),
		newTransaction("Grocery Store", "Food & Dining", "87.50", TypeExpense, 14),
		newTransaction("Electric Bill", "Utilities", "65.20", TypeExpense, 13),
		newTransaction("Restaurant", "Food & Dining", "42.80", TypeExpense, 12),
		newTransaction("Freelance Payment", "Income", "850", TypeIncome, 11),
		newTransaction("Movie Tickets", "Entertainment", "28", TypeExpense, 10),
	} {
		_, err := service.Create(ctx, transaction)
		assert.NoError(t, err)
	}
}

func TestService_ListDefaultsToDateDescending(t *testing.T) {
	service, ctx := setup()
	seedLedger(t, service, ctx)

	transactions, err := service.List(ctx, ledger.Query{}, ledger.Sort{})
	assert.NoError(t, err)
	assert.Len(t, transactions, 6)
	assert.Equal(t, "Salary Deposit", transactions[0].Description)
	assert.Equal(t, "Movie Tickets", transactions[5].Description)
}

func TestService_ListFiltersCombine(t *testing.T) {
	service, ctx := setup()
	seedLedger(t, service, ctx)

	transactions, err := service.List(ctx,
		ledger.Query{Category: "Food & Dining", Flow: "expense"},
		ledger.Sort{Key: ledger.SortByAmount, Direction: ledger.Descending})
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, "Grocery Store", transactions[0].Description)
	assert.Equal(t, "Restaurant", transactions[1].Description)

	transactions, err = service.List(ctx, ledger.Query{Text: "salary"}, ledger.Sort{})
	assert.NoError(t, err)
	assert.Len(t, transactions, 1)
	assert.Equal(t, "Salary Deposit", transactions[0].Description)
}

func TestService_ListAllSentinelMatchesEverything(t *testing.T) {
	service, ctx := setup()
	seedLedger(t, service, ctx)

	transactions, err := service.List(ctx, ledger.Query{Category: "All", Flow: "all"}, ledger.Sort{})
	assert.NoError(t, err)
	assert.Len(t, transactions, 6)
}

func TestService_Summary(t *testing.T) {
	service, ctx := setup()
	seedLedger(t, service, ctx)

	summary, err := service.Summary(ctx, ledger.Query{})
	assert.NoError(t, err)
	assert.Equal(t, decimal.MustParse("4050"), summary.TotalIncome)
	assert.Equal(t, decimal.MustParse("223.50"), summary.TotalExpense)
	assert.Equal(t, decimal.MustParse("3826.50"), summary.Balance)

	categories := make([]string, 0, len(summary.ByCategory))
	for _, entry := range summary.ByCategory {
		categories = append(categories, entry.Category)
	}
	assert.Equal(t, []string{"Income", "Food & Dining", "Utilities", "Entertainment"}, categories)
}

func TestService_SummaryOfFilteredSubset(t *testing.T) {
	service, ctx := setup()
	seedLedger(t, service, ctx)

	summary, err := service.Summary(ctx, ledger.Query{Category: "Food & Dining"})
	assert.NoError(t, err)
	assert.True(t, summary.TotalIncome.IsZero())
	assert.Equal(t, decimal.MustParse("130.30"), summary.TotalExpense)
	assert.Len(t, summary.ByCategory, 1)
}

func TestService_CreateRejectsInvalidTransaction(t *testing.T) {
	service, ctx := setup()

	tests := []struct {
		name        string
		transaction Transaction
	}{
		{"missing description", newTransaction("", "Income", "100", TypeIncome, 1)},
		{"zero amount", newTransaction("Salary", "Income", "0", TypeIncome, 1)},
		{"negative amount", newTransaction("Salary", "Income", "-100", TypeIncome, 1)},
		{"income with spending category", newTransaction("Salary", "Food & Dining", "100", TypeIncome, 1)},
		{"expense with income category", newTransaction("Groceries", "Income", "100", TypeExpense, 1)},
		{"unknown type", newTransaction("Transfer", "Other", "100", "transfer", 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, tt.transaction)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	transactions, err := service.List(ctx, ledger.Query{}, ledger.Sort{})
	assert.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestService_UpdateReplacesById(t *testing.T) {
	service, ctx := setup()
	created, _ := service.Create(ctx, newTransaction("Gas Station", "Transportation", "45", TypeExpense, 9))

	created.Amount = decimal.MustParse("52.30")
	updated, err := service.Update(ctx, created)
	assert.NoError(t, err)
	assert.Equal(t, decimal.MustParse("52.30"), updated.Amount)

	transactions, _ := service.List(ctx, ledger.Query{}, ledger.Sort{})
	assert.Len(t, transactions, 1)
	assert.Equal(t, decimal.MustParse("52.30"), transactions[0].Amount)
}

func TestService_UpdateUnknownIdIsNotFound(t *testing.T) {
	service, ctx := setup()

	missing := newTransaction("Online Shopping", "Shopping", "129.99", TypeExpense, 8)
	missing.ID = "no-such-id"
	_, err := service.Update(ctx, missing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	service, ctx := setup()
	created, _ := service.Create(ctx, newTransaction("Gym Membership", "Health", "55", TypeExpense, 5))

	assert.NoError(t, service.Delete(ctx, created.ID))
	assert.ErrorIs(t, service.Delete(ctx, created.ID), ErrNotFound)
}

func TestService_PublishesRecordChanges(t *testing.T) {
	bus := event_bus.NewEventBus()
	service := NewService(NewMemoryRepo(), bus)
	ctx := user.WithUser(context.Background(), user.User{Id: 1, Uid: "test-user"})

	var changes []event_bus.RecordChange
	event_bus.SubscribeTyped[event_bus.RecordChange](bus, event_bus.TransactionCreated,
		func(e event_bus.EventT[event_bus.RecordChange]) error {
			changes = append(changes, e.Data)
			return nil
		})

	created, err := service.Create(ctx, newTransaction("Coffee Shop", "Food & Dining", "12.75", TypeExpense, 7))
	assert.NoError(t, err)
	assert.Len(t, changes, 1)
	assert.Equal(t, created.ID, changes[0].RecordID)
	assert.Equal(t, "transaction", changes[0].Kind)
	assert.Equal(t, "Coffee Shop", changes[0].Title)
}
