package expense

import (
	"errors"
	"fmt"
	"time"

	"github.com/budgetwise/budgetwise/pkg/category"
	"github.com/budgetwise/budgetwise/pkg/ledger"
	"github.com/govalues/decimal"
)

var (
	ErrValidation = errors.New("invalid expense")
	ErrNotFound   = errors.New("expense not found")
)

// Expense is a single spending record.
type Expense struct {
	ID          string
	Date        time.Time
	Category    string
	Amount      decimal.Decimal
	Description string
}

func (e Expense) SearchText() string { return e.Description }
func (e Expense) CategoryKey() string { return e.Category }
func (e Expense) Flow() ledger.FlowType { return ledger.FlowNone }
func (e Expense) OccurredAt() time.Time { return e.Date }
func (e Expense) Value() decimal.Decimal { return e.Amount }

// Validate rejects the expense before any collection is touched: required
// fields must be present, the amount positive, and the category known.
func (e Expense) Validate() error {
	if e.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if !e.Amount.IsPos() {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !category.IsSpending(e.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, e.Category)
	}
	return nil
}
