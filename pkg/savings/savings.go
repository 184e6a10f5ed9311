package savings

import (
	"errors"
	"fmt"
	"time"

	"github.com/budgetwise/budgetwise/pkg/ledger"
	"github.com/govalues/decimal"
)

var (
	ErrValidation = errors.New("invalid savings goal")
	ErrNotFound   = errors.New("savings goal not found")
)

// Goal is a savings target with a deadline. CurrentAmount is edited by the
// user as money is put aside.
type Goal struct {
	ID            string
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
}

func (g Goal) SearchText() string { return g.Name }
func (g Goal) CategoryKey() string { return g.Name }
func (g Goal) Flow() ledger.FlowType { return ledger.FlowNone }
func (g Goal) OccurredAt() time.Time { return g.TargetDate }

// Value is the amount saved so far, so goal collections aggregate to total
// savings.
func (g Goal) Value() decimal.Decimal { return g.CurrentAmount }

// Progress derives completion state against the given day.
func (g Goal) Progress(today time.Time) ledger.GoalStatus {
	return ledger.GoalProgress(g.CurrentAmount, g.TargetAmount, g.TargetDate, today)
}

func (g Goal) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !g.TargetAmount.IsPos() {
		return fmt.Errorf("%w: target amount must be positive", ErrValidation)
	}
	if g.CurrentAmount.IsNeg() {
		return fmt.Errorf("%w: current amount cannot be negative", ErrValidation)
	}
	if g.TargetDate.IsZero() {
		return fmt.Errorf("%w: target date is required", ErrValidation)
	}
	return nil
}
