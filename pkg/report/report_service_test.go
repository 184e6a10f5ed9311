package report

import (
	"context"
	"testing"
	"time"

	"github.com/budgetwise/budgetwise/internal/event_bus"
	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/expense"
	"github.com/budgetwise/budgetwise/pkg/transaction"
	"github.com/budgetwise/budgetwise/pkg/user"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

type fixture struct {
	service      *ServiceImpl
	transactions *transaction.ServiceImpl
	expenses     *expense.ServiceImpl
	clock        *utils.MockClock
	ctx          context.Context
}

func setup() fixture {
	bus := event_bus.NewEventBus()
	transactions := transaction.NewService(transaction.NewMemoryRepo(), bus)
	expenses := expense.NewService(expense.NewMemoryRepo(), bus)
	clock := &utils.MockClock{FixedNow: time.Date(2023, time.June, 21, 0, 0, 0, 0, time.UTC)}
	return fixture{
		service:      NewService(transactions, expenses, clock),
		transactions: transactions,
		expenses:     expenses,
		clock:        clock,
		ctx:          user.WithUser(context.Background(), user.User{Id: 1, Uid: "test-user"}),
	}
}

func tx(description, category, amount string, kind transaction.Type, date time.Time) transaction.Transaction {
	return transaction.Transaction{
		Date:        date,
		Description: description,
		Category:    category,
		Amount:      decimal.MustParse(amount),
		Type:        kind,
	}
}

func TestService_EmptyStoreServesSampleSeries(t *testing.T) {
	f := setup()

	monthly, err := f.service.Monthly(f.ctx)
	assert.NoError(t, err)
	assert.Len(t, monthly, 6)
	assert.Equal(t, MonthlyEntry{Month: "Jan", Income: 4200, Expenses: 2100}, monthly[0])

	categories, err := f.service.Categories(f.ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 7)
	assert.Equal(t, CategoryEntry{Category: "Food & Dining", Total: 950}, categories[0])

	daily, err := f.service.Daily(f.ctx)
	assert.NoError(t, err)
	assert.Len(t, daily, 7)
	assert.Equal(t, DailyEntry{Day: "Mon", Amount: 85}, daily[0])

	comparison, err := f.service.YearlyComparison(f.ctx)
	assert.NoError(t, err)
	assert.Len(t, comparison, 6)
	assert.Equal(t, ComparisonEntry{Month: "Jan", Current: 2100, Previous: 2000}, comparison[0])
}

func TestService_MonthlyGroupsByCalendarMonth(t *testing.T) {
	f := setup()
	for _, txn := range []transaction.Transaction{
		tx("Salary Deposit", "Income", "3200", transaction.TypeIncome, time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC)),
		tx("Grocery Store", "Food & Dining", "120.50", transaction.TypeExpense, time.Date(2023, time.May, 20, 0, 0, 0, 0, time.UTC)),
		tx("Salary Deposit", "Income", "3200", transaction.TypeIncome, time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)),
		tx("Electric Bill", "Utilities", "95.40", transaction.TypeExpense, time.Date(2023, time.June, 18, 0, 0, 0, 0, time.UTC)),
		tx("Restaurant", "Food & Dining", "67.80", transaction.TypeExpense, time.Date(2023, time.June, 19, 0, 0, 0, 0, time.UTC)),
	} {
		_, err := f.transactions.Create(f.ctx, txn)
		assert.NoError(t, err)
	}

	monthly, err := f.service.Monthly(f.ctx)
	assert.NoError(t, err)
	assert.Equal(t, []MonthlyEntry{
		{Month: "May", Income: 3200, Expenses: 120.50},
		{Month: "Jun", Income: 3200, Expenses: 163.20},
	}, monthly)
}

func TestService_CategoriesAggregatesExpenseFlowsOnly(t *testing.T) {
	f := setup()
	for _, txn := range []transaction.Transaction{
		tx("Salary Deposit", "Income", "3200", transaction.TypeIncome, time.Date(2023, time.June, 20, 0, 0, 0, 0, time.UTC)),
		tx("Grocery Store", "Food & Dining", "120.50", transaction.TypeExpense, time.Date(2023, time.June, 19, 0, 0, 0, 0, time.UTC)),
		tx("Electric Bill", "Utilities", "95.40", transaction.TypeExpense, time.Date(2023, time.June, 18, 0, 0, 0, 0, time.UTC)),
		tx("Restaurant", "Food & Dining", "67.80", transaction.TypeExpense, time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)),
	} {
		_, err := f.transactions.Create(f.ctx, txn)
		assert.NoError(t, err)
	}

	categories, err := f.service.Categories(f.ctx)
	assert.NoError(t, err)
	assert.Equal(t, []CategoryEntry{
		{Category: "Food & Dining", Total: 188.30},
		{Category: "Utilities", Total: 95.40},
	}, categories)
}

func TestService_DailyBucketsCurrentWeek(t *testing.T) {
	f := setup()
	newExpense := func(description, amount string, date time.Time) expense.Expense {
		return expense.Expense{
			Date:        date,
			Category:    "Food & Dining",
			Amount:      decimal.MustParse(amount),
			Description: description,
		}
	}
	// week of Monday June 19th
	for _, e := range []expense.Expense{
		newExpense("Grocery shopping", "32.40", time.Date(2023, time.June, 19, 0, 0, 0, 0, time.UTC)),
		newExpense("Dinner out", "45.80", time.Date(2023, time.June, 21, 0, 0, 0, 0, time.UTC)),
		newExpense("Coffee", "5.20", time.Date(2023, time.June, 21, 0, 0, 0, 0, time.UTC)),
		newExpense("Last week takeaway", "18.00", time.Date(2023, time.June, 16, 0, 0, 0, 0, time.UTC)),
	} {
		_, err := f.expenses.Create(f.ctx, e)
		assert.NoError(t, err)
	}

	daily, err := f.service.Daily(f.ctx)
	assert.NoError(t, err)
	assert.Len(t, daily, 7)
	assert.Equal(t, DailyEntry{Day: "Mon", Amount: 32.40}, daily[0])
	assert.Equal(t, DailyEntry{Day: "Wed", Amount: 51.00}, daily[2])
	assert.Equal(t, DailyEntry{Day: "Fri", Amount: 0}, daily[4])
	assert.Equal(t, DailyEntry{Day: "Sun", Amount: 0}, daily[6])
}

func TestService_YearlyComparisonPairsMonthsAcrossYears(t *testing.T) {
	f := setup()
	for _, txn := range []transaction.Transaction{
		tx("Grocery Store", "Food & Dining", "2100", transaction.TypeExpense, time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC)),
		tx("Grocery Store", "Food & Dining", "2000", transaction.TypeExpense, time.Date(2022, time.January, 10, 0, 0, 0, 0, time.UTC)),
		tx("Electric Bill", "Utilities", "1900", transaction.TypeExpense, time.Date(2023, time.February, 10, 0, 0, 0, 0, time.UTC)),
		tx("Old Rent", "Rent & Housing", "2400", transaction.TypeExpense, time.Date(2022, time.March, 10, 0, 0, 0, 0, time.UTC)),
	} {
		_, err := f.transactions.Create(f.ctx, txn)
		assert.NoError(t, err)
	}

	comparison, err := f.service.YearlyComparison(f.ctx)
	assert.NoError(t, err)
	assert.Equal(t, []ComparisonEntry{
		{Month: "Jan", Current: 2100, Previous: 2000},
		{Month: "Feb", Current: 1900, Previous: 0},
		{Month: "Mar", Current: 0, Previous: 2400},
	}, comparison)
}
