package transaction

import (
	"errors"
	"fmt"
	"time"

	"github.com/budgetwise/budgetwise/pkg/category"
	"github.com/budgetwise/budgetwise/pkg/ledger"
	"github.com/govalues/decimal"
)

var (
	ErrValidation = errors.New("invalid transaction")
	ErrNotFound   = errors.New("transaction not found")
)

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Transaction is a single movement of money, either incoming or outgoing.
// Amount is always positive; Type carries the direction.
type Transaction struct {
	ID          string
	Date        time.Time
	Description string
	Category    string
	Amount      decimal.Decimal
	Type        Type
}

func (t Transaction) SearchText() string { return t.Description }
func (t Transaction) CategoryKey() string { return t.Category }
func (t Transaction) OccurredAt() time.Time { return t.Date }
func (t Transaction) Value() decimal.Decimal { return t.Amount }

func (t Transaction) Flow() ledger.FlowType {
	if t.Type == TypeIncome {
		return ledger.FlowIncome
	}
	return ledger.FlowExpense
}

func (t Transaction) Validate() error {
	if t.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if !t.Amount.IsPos() {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	switch t.Type {
	case TypeIncome:
		if t.Category != category.Income {
			return fmt.Errorf("%w: income transactions use the %s category", ErrValidation, category.Income)
		}
	case TypeExpense:
		if !category.IsSpending(t.Category) {
			return fmt.Errorf("%w: unknown category %q", ErrValidation, t.Category)
		}
	default:
		return fmt.Errorf("%w: type must be income or expense", ErrValidation)
	}
	return nil
}
