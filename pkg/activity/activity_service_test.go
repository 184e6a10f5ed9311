package activity

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/budgetwise/budgetwise/internal/event_bus"
	"github.com/budgetwise/budgetwise/pkg/expense"
	"github.com/budgetwise/budgetwise/pkg/user"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func setup() (*ServiceImpl, *expense.ServiceImpl, context.Context) {
	bus := event_bus.NewEventBus()
	activity := NewService(bus)
	expenses := expense.NewService(expense.NewMemoryRepo(), bus)
	ctx := user.WithUser(context.Background(), user.User{Id: 1, Uid: "test-user"})
	return activity, expenses, ctx
}

func newExpense(description string, d int) expense.Expense {
	return expense.Expense{
		Date:        time.Date(2023, time.June, d, 0, 0, 0, 0, time.UTC),
		Category:    "Food & Dining",
		Amount:      decimal.MustParse("12.50"),
		Description: description,
	}
}

func TestService_FeedRecordsChangesNewestFirst(t *testing.T) {
	activity, expenses, ctx := setup()

	created, err := expenses.Create(ctx, newExpense("Grocery shopping", 8))
	assert.NoError(t, err)
	_, err = expenses.Create(ctx, newExpense("Dinner out", 18))
	assert.NoError(t, err)
	assert.NoError(t, expenses.Delete(ctx, created.ID))

	entries, err := activity.Recent(ctx)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, "deleted", entries[0].Action)
	assert.Equal(t, "created", entries[1].Action)
	assert.Equal(t, "Dinner out", entries[1].Title)
	assert.Equal(t, "created", entries[2].Action)
	assert.Equal(t, "Grocery shopping", entries[2].Title)
	assert.Equal(t, "expense", entries[2].Kind)
}

func TestService_FeedIsBounded(t *testing.T) {
	activity, expenses, ctx := setup()

	for i := 0; i < feedLimit+10; i++ {
		_, err := expenses.Create(ctx, newExpense(fmt.Sprintf("Coffee #%d", i), 1))
		assert.NoError(t, err)
	}

	entries, err := activity.Recent(ctx)
	assert.NoError(t, err)
	assert.Len(t, entries, feedLimit)
	assert.Equal(t, fmt.Sprintf("Coffee #%d", feedLimit+9), entries[0].Title)
}

func TestService_FeedIsScopedPerUser(t *testing.T) {
	activity, expenses, _ := setup()
	alice := user.WithUser(context.Background(), user.User{Id: 1, Uid: "alice"})
	bob := user.WithUser(context.Background(), user.User{Id: 2, Uid: "bob"})

	_, err := expenses.Create(alice, newExpense("Grocery shopping", 8))
	assert.NoError(t, err)

	bobEntries, err := activity.Recent(bob)
	assert.NoError(t, err)
	assert.Empty(t, bobEntries)
}
