// Package demo holds the sample data set served out of the box, so the
// application is usable before any real records exist. The fixtures are
// deterministic; seeding twice produces duplicate records, so the seeder
// only runs against an empty store.
package demo

import (
	"time"

	"github.com/budgetwise/budgetwise/pkg/budget"
	"github.com/budgetwise/budgetwise/pkg/expense"
	"github.com/budgetwise/budgetwise/pkg/savings"
	"github.com/budgetwise/budgetwise/pkg/transaction"
	"github.com/govalues/decimal"
)

const (
	UserUid         = "demo"
	UserDisplayName = "Demo User"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func Expenses() []expense.Expense {
	return []expense.Expense{
		{Date: day(2023, time.June, 18), Category: "Food & Dining", Amount: decimal.MustParse("45.80"), Description: "Dinner at Italian restaurant"},
		{Date: day(2023, time.June, 17), Category: "Transportation", Amount: decimal.MustParse("25.50"), Description: "Uber ride"},
		{Date: day(2023, time.June, 15), Category: "Entertainment", Amount: decimal.MustParse("18.00"), Description: "Movie tickets"},
		{Date: day(2023, time.June, 12), Category: "Utilities", Amount: decimal.MustParse("85.20"), Description: "Electricity bill"},
		{Date: day(2023, time.June, 10), Category: "Shopping", Amount: decimal.MustParse("120.45"), Description: "New clothes"},
		{Date: day(2023, time.June, 8), Category: "Food & Dining", Amount: decimal.MustParse("32.40"), Description: "Grocery shopping"},
		{Date: day(2023, time.June, 5), Category: "Health", Amount: decimal.MustParse("65.00"), Description: "Pharmacy"},
	}
}

func Budgets() []budget.Budget {
	return []budget.Budget{
		{Category: "Food & Dining", Amount: decimal.MustParse("600"), Spent: decimal.MustParse("485"), Period: budget.PeriodMonthly},
		{Category: "Transportation", Amount: decimal.MustParse("300"), Spent: decimal.MustParse("210"), Period: budget.PeriodMonthly},
		{Category: "Entertainment", Amount: decimal.MustParse("400"), Spent: decimal.MustParse("385"), Period: budget.PeriodMonthly},
		{Category: "Utilities", Amount: decimal.MustParse("500"), Spent: decimal.MustParse("420"), Period: budget.PeriodMonthly},
		{Category: "Shopping", Amount: decimal.MustParse("300"), Spent: decimal.MustParse("325"), Period: budget.PeriodMonthly},
	}
}

func Goals() []savings.Goal {
	return []savings.Goal{
		{Name: "Emergency Fund", TargetAmount: decimal.MustParse("10000"), CurrentAmount: decimal.MustParse("6500"), TargetDate: day(2023, time.December, 31)},
		{Name: "Vacation", TargetAmount: decimal.MustParse("3000"), CurrentAmount: decimal.MustParse("1200"), TargetDate: day(2023, time.September, 15)},
		{Name: "New Car", TargetAmount: decimal.MustParse("20000"), CurrentAmount: decimal.MustParse("8500"), TargetDate: day(2024, time.June, 30)},
		{Name: "Home Down Payment", TargetAmount: decimal.MustParse("50000"), CurrentAmount: decimal.MustParse("15000"), TargetDate: day(2025, time.January, 15)},
	}
}

func Transactions() []transaction.Transaction {
	return []transaction.Transaction{
		{Date: day(2023, time.June, 20), Description: "Salary Deposit", Category: "Income", Amount: decimal.MustParse("3200"), Type: transaction.TypeIncome},
		{Date: day(2023, time.June, 19), Description: "Grocery Store", Category: "Food & Dining", Amount: decimal.MustParse("120.50"), Type: transaction.TypeExpense},
		{Date: day(2023, time.June, 18), Description: "Electric Bill", Category: "Utilities", Amount: decimal.MustParse("95.40"), Type: transaction.TypeExpense},
		{Date: day(2023, time.June, 17), Description: "Gas Station", Category: "Transportation", Amount: decimal.MustParse("45.20"), Type: transaction.TypeExpense},
		{Date: day(2023, time.June, 16), Description: "Freelance Payment", Category: "Income", Amount: decimal.MustParse("850"), Type: transaction.TypeIncome},
		{Date: day(2023, time.June, 15), Description: "Restaurant", Category: "Food & Dining", Amount: decimal.MustParse("67.80"), Type: transaction.TypeExpense},
		{Date: day(2023, time.June, 14), Description: "Internet Bill", Category: "Utilities", Amount: decimal.MustParse("75"), Type: transaction.TypeExpense},
		{Date: day(2023, time.June, 13), Description: "Movie Tickets", Category: "Entertainment", Amount: decimal.MustParse("32"), Type: transaction.TypeExpense},
		{Date: day(2023, time.June, 12), Description: "Investment Dividends", Category: "Income", Amount: decimal.MustParse("125.50"), Type: transaction.TypeIncome},
		{Date: day(2023, time.June, 10), Description: "Shopping Mall", Category: "Shopping", Amount: decimal.MustParse("215.75"), Type: transaction.TypeExpense},
	}
}
