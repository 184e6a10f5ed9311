package budget

import (
	"errors"
	"fmt"
	"time"

	"github.com/budgetwise/budgetwise/pkg/category"
	"github.com/budgetwise/budgetwise/pkg/ledger"
	"github.com/govalues/decimal"
)

var (
	ErrValidation = errors.New("invalid budget")
	ErrNotFound   = errors.New("budget not found")
)

type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Budget is a spending limit for one category. Spent is authoritative input
// edited by the user, not derived from the expense ledger.
type Budget struct {
	ID       string
	Category string
	// Amount is the limit for the period.
	Amount decimal.Decimal
	Spent  decimal.Decimal
	Period Period
}

func (b Budget) SearchText() string { return b.Category }
func (b Budget) CategoryKey() string { return b.Category }
func (b Budget) Flow() ledger.FlowType { return ledger.FlowNone }
func (b Budget) OccurredAt() time.Time { return time.Time{} }

// Value is what the budget contributes to aggregations: the spent amount, so
// budget collections aggregate as what was actually spent per category.
func (b Budget) Value() decimal.Decimal { return b.Spent }

// Progress derives the display percent and status classification. It is
// computed on demand and never stored.
func (b Budget) Progress() ledger.Progress {
	return ledger.BudgetProgress(b.Spent, b.Amount)
}

func (b Budget) Validate() error {
	if !category.IsSpending(b.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, b.Category)
	}
	if !b.Amount.IsPos() {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if b.Spent.IsNeg() {
		return fmt.Errorf("%w: spent cannot be negative", ErrValidation)
	}
	if b.Period != PeriodMonthly && b.Period != PeriodYearly {
		return fmt.Errorf("%w: period must be monthly or yearly", ErrValidation)
	}
	return nil
}
