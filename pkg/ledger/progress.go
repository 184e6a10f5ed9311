package ledger

import (
	"math"
	"time"

	"github.com/govalues/decimal"
)

// Status classifies budget or goal progress.
type Status string

const (
	StatusSafe    Status = "safe"
	StatusWarning Status = "warning"
	StatusOver    Status = "over"
)

// warningRatio is the spent/limit ratio at which a budget is flagged,
// inclusive: exactly 80% is already a warning.
var warningRatio = decimal.MustNew(8, 1)

// Progress is the derived state of a budget.
type Progress struct {
	// Percent is min(round(spent/limit*100), 100), for display.
	Percent int
	// Exact is the unclamped percentage. Status is always derived from the
	// raw amounts, never from the clamped display value.
	Exact float64
	// Status is over only when spent strictly exceeds the limit; spending the
	// limit to the cent is still safe at 100%.
	Status Status
	// Overage is spent - limit when Status is over, unclamped, else zero.
	Overage decimal.Decimal
	// Guarded reports that the limit was zero and the division was skipped,
	// resolving the progress to 0%.
	Guarded bool
}

// BudgetProgress derives display percent and status from what was spent
// against a limit.
func BudgetProgress(spent, limit decimal.Decimal) Progress {
	if !limit.IsPos() {
		return Progress{Status: StatusSafe, Guarded: true}
	}

	display, exact := percentOf(spent, limit)
	p := Progress{Percent: display, Exact: exact, Status: StatusSafe}

	warnAt, _ := limit.Mul(warningRatio)
	switch {
	case spent.Cmp(limit) > 0:
		p.Status = StatusOver
		p.Overage, _ = spent.Sub(limit)
	case spent.Cmp(warnAt) >= 0 && spent.Cmp(limit) < 0:
		// warning band stops below the limit: spending it to the cent is safe
		p.Status = StatusWarning
	}
	return p
}

// GoalStatus is the derived state of a savings goal.
type GoalStatus struct {
	Percent int
	Exact   float64
	// DaysRemaining counts days until the target date, rounded up. Negative
	// once the date has passed.
	DaysRemaining int
	// AmountRemaining is max(target - current, 0); overshooting a goal never
	// reports a negative remainder.
	AmountRemaining decimal.Decimal
	// PastDue is set when the target date has passed and the goal is unmet.
	PastDue bool
	Guarded bool
}

// GoalProgress derives completion percent, time remaining, and the amount
// still to save for a goal with a deadline. The caller supplies today so the
// derivation stays a pure function of its inputs.
func GoalProgress(current, target decimal.Decimal, targetDate, today time.Time) GoalStatus {
	days := int(math.Ceil(targetDate.Sub(today).Hours() / 24))

	remaining := decimal.Zero
	if target.Cmp(current) > 0 {
		remaining, _ = target.Sub(current)
	}

	gs := GoalStatus{
		DaysRemaining:   days,
		AmountRemaining: remaining,
		PastDue:         days <= 0 && current.Cmp(target) < 0,
	}
	if !target.IsPos() {
		gs.Guarded = true
		return gs
	}
	gs.Percent, gs.Exact = percentOf(current, target)
	return gs
}

func percentOf(part, whole decimal.Decimal) (display int, exact float64) {
	ratio, err := part.Quo(whole)
	if err != nil {
		return 0, 0
	}
	f, _ := ratio.Float64()
	exact = f * 100
	display = int(math.Round(exact))
	if display > 100 {
		display = 100
	}
	return display, exact
}
