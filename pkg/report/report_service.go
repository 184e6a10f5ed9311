package report

import (
	"context"
	"time"

	"github.com/budgetwise/budgetwise/internal/demo"
	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/expense"
	"github.com/budgetwise/budgetwise/pkg/ledger"
	"github.com/budgetwise/budgetwise/pkg/transaction"
	"github.com/govalues/decimal"
)

type Service interface {
	Monthly(ctx context.Context) ([]MonthlyEntry, error)
	Categories(ctx context.Context) ([]CategoryEntry, error)
	Daily(ctx context.Context) ([]DailyEntry, error)
	YearlyComparison(ctx context.Context) ([]ComparisonEntry, error)
}

type ServiceImpl struct {
	transactions transaction.Service
	expenses     expense.Service
	clock        utils.Clock
}

func NewService(transactions transaction.Service, expenses expense.Service, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{transactions: transactions, expenses: expenses, clock: clock}
}

// Monthly returns income and expenses per calendar month, oldest first. With
// no transactions the sample series is served instead.
func (s *ServiceImpl) Monthly(ctx context.Context) ([]MonthlyEntry, error) {
	all, err := s.transactions.List(ctx, ledger.Query{}, ledger.Sort{Direction: ledger.Ascending})
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return monthlyFallback(), nil
	}

	var entries []MonthlyEntry
	var bucket []transaction.Transaction
	flush := func() {
		if len(bucket) == 0 {
			return
		}
		summary := ledger.Aggregate(bucket)
		income, _ := summary.TotalIncome.Round(2).Float64()
		expenses, _ := summary.TotalExpense.Round(2).Float64()
		entries = append(entries, MonthlyEntry{
			Month:    bucket[0].Date.Format("Jan"),
			Income:   income,
			Expenses: expenses,
		})
		bucket = bucket[:0]
	}

	for _, t := range all {
		if len(bucket) > 0 && !sameMonth(bucket[0].Date, t.Date) {
			flush()
		}
		bucket = append(bucket, t)
	}
	flush()
	return entries, nil
}

// Categories returns total spending per category across all expense-flow
// transactions, in first-seen order.
func (s *ServiceImpl) Categories(ctx context.Context) ([]CategoryEntry, error) {
	spent, err := s.transactions.List(ctx,
		ledger.Query{Flow: string(ledger.FlowExpense)}, ledger.Sort{Direction: ledger.Ascending})
	if err != nil {
		return nil, err
	}
	if len(spent) == 0 {
		return categoriesFallback(), nil
	}

	summary := ledger.Aggregate(spent)
	entries := make([]CategoryEntry, 0, len(summary.ByCategory))
	for _, ct := range summary.ByCategory {
		total, _ := ct.Total.Round(2).Float64()
		entries = append(entries, CategoryEntry{Category: ct.Category, Total: total})
	}
	return entries, nil
}

// Daily returns the current week's expense totals, Monday through Sunday.
func (s *ServiceImpl) Daily(ctx context.Context) ([]DailyEntry, error) {
	all, err := s.expenses.List(ctx, ledger.Query{})
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return dailyFallback(), nil
	}

	monday := startOfWeek(s.clock.Today())
	totals := make([]decimal.Decimal, 7)
	for _, e := range all {
		offset := int(e.Date.Sub(monday).Hours() / 24)
		if offset >= 0 && offset < 7 {
			totals[offset], _ = totals[offset].Add(e.Amount)
		}
	}

	entries := make([]DailyEntry, 7)
	for i, total := range totals {
		amount, _ := total.Round(2).Float64()
		entries[i] = DailyEntry{Day: monday.AddDate(0, 0, i).Format("Mon"), Amount: amount}
	}
	return entries, nil
}

// YearlyComparison returns expenses per month for the most recent year with
// data next to the year before it.
func (s *ServiceImpl) YearlyComparison(ctx context.Context) ([]ComparisonEntry, error) {
	spent, err := s.transactions.List(ctx,
		ledger.Query{Flow: string(ledger.FlowExpense)}, ledger.Sort{Direction: ledger.Ascending})
	if err != nil {
		return nil, err
	}
	if len(spent) == 0 {
		return comparisonFallback(), nil
	}

	latest := spent[len(spent)-1].Date.Year()
	var current, previous [13]decimal.Decimal
	for _, t := range spent {
		month := int(t.Date.Month())
		switch t.Date.Year() {
		case latest:
			current[month], _ = current[month].Add(t.Amount)
		case latest - 1:
			previous[month], _ = previous[month].Add(t.Amount)
		}
	}

	var entries []ComparisonEntry
	for month := 1; month <= 12; month++ {
		if current[month].IsZero() && previous[month].IsZero() {
			continue
		}
		c, _ := current[month].Round(2).Float64()
		p, _ := previous[month].Round(2).Float64()
		entries = append(entries, ComparisonEntry{
			Month:    time.Month(month).String()[:3],
			Current:  c,
			Previous: p,
		})
	}
	return entries, nil
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// startOfWeek walks a date back to its Monday.
func startOfWeek(day time.Time) time.Time {
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, 1-weekday)
}

func monthlyFallback() []MonthlyEntry {
	points := demo.MonthlySpending()
	entries := make([]MonthlyEntry, 0, len(points))
	for _, p := range points {
		entries = append(entries, MonthlyEntry{Month: p.Month, Income: p.Income, Expenses: p.Expenses})
	}
	return entries
}

func categoriesFallback() []CategoryEntry {
	points := demo.CategorySpending()
	entries := make([]CategoryEntry, 0, len(points))
	for _, p := range points {
		entries = append(entries, CategoryEntry{Category: p.Name, Total: p.Value})
	}
	return entries
}

func dailyFallback() []DailyEntry {
	points := demo.DailySpending()
	entries := make([]DailyEntry, 0, len(points))
	for _, p := range points {
		entries = append(entries, DailyEntry{Day: p.Day, Amount: p.Amount})
	}
	return entries
}

func comparisonFallback() []ComparisonEntry {
	points := demo.YearlyComparison()
	entries := make([]ComparisonEntry, 0, len(points))
	for _, p := range points {
		entries = append(entries, ComparisonEntry{Month: p.Month, Current: p.Current, Previous: p.Previous})
	}
	return entries
}
