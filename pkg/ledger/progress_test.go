package ledger

import (
	"testing"
	"time"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.MustParse(s)
}

func TestBudgetProgress_Classification(t *testing.T) {
	tests := []struct {
		name        string
		spent       string
		limit       string
		wantPercent int
		wantStatus  Status
	}{
		{"well under budget", "210", "300", 70, StatusSafe},
		{"exactly at warning threshold", "480", "600", 80, StatusWarning},
		{"just under warning threshold", "479.99", "600", 80, StatusSafe},
		{"just under the limit", "599.99", "600", 100, StatusWarning},
		{"spent equals limit", "600", "600", 100, StatusSafe},
		{"one over the limit", "601", "600", 100, StatusOver},
		{"far over the limit", "325", "300", 100, StatusOver},
		{"nothing spent", "0", "600", 0, StatusSafe},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BudgetProgress(d(tt.spent), d(tt.limit))
			assert.Equal(t, tt.wantPercent, got.Percent)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestBudgetProgress_OverageIsUnclamped(t *testing.T) {
	got := BudgetProgress(d("601"), d("600"))

	assert.Equal(t, StatusOver, got.Status)
	assert.Equal(t, d("1"), got.Overage)

	got = BudgetProgress(d("325"), d("300"))
	assert.Equal(t, d("25"), got.Overage)
}

func TestBudgetProgress_ExactPercentIsNotClamped(t *testing.T) {
	got := BudgetProgress(d("900"), d("600"))

	assert.Equal(t, 100, got.Percent)
	assert.InDelta(t, 150.0, got.Exact, 0.0001)
}

func TestBudgetProgress_ZeroLimitIsGuarded(t *testing.T) {
	got := BudgetProgress(d("50"), decimal.Zero)

	assert.True(t, got.Guarded)
	assert.Equal(t, 0, got.Percent)
	assert.NotEqual(t, StatusOver, got.Status)
	assert.True(t, got.Overage.IsZero())
}

func TestBudgetProgress_PercentIsMonotonic(t *testing.T) {
	limit := d("600")
	previous := -1
	for spent := int64(0); spent <= 900; spent += 30 {
		got := BudgetProgress(decimal.MustNew(spent, 0), limit)
		assert.GreaterOrEqual(t, got.Percent, min(previous, 100))
		previous = got.Percent
	}
}

func TestGoalProgress_OnTrackGoal(t *testing.T) {
	today := time.Date(2023, time.June, 20, 0, 0, 0, 0, time.UTC)
	targetDate := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	got := GoalProgress(d("6500"), d("10000"), targetDate, today)

	assert.Equal(t, 65, got.Percent)
	assert.Equal(t, 194, got.DaysRemaining)
	assert.Equal(t, d("3500"), got.AmountRemaining)
	assert.False(t, got.PastDue)
}

func TestGoalProgress_PastDue(t *testing.T) {
	today := time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)
	targetDate := time.Date(2023, time.September, 15, 0, 0, 0, 0, time.UTC)

	got := GoalProgress(d("1200"), d("3000"), targetDate, today)

	assert.Negative(t, got.DaysRemaining)
	assert.True(t, got.PastDue)
	assert.Equal(t, d("1800"), got.AmountRemaining)
}

func TestGoalProgress_OvershootIsValid(t *testing.T) {
	today := time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)
	targetDate := time.Date(2023, time.September, 15, 0, 0, 0, 0, time.UTC)

	got := GoalProgress(d("3500"), d("3000"), targetDate, today)

	assert.Equal(t, 100, got.Percent)
	assert.InDelta(t, 116.6667, got.Exact, 0.001)
	assert.True(t, got.AmountRemaining.IsZero(), "overshoot never reports a negative remainder")
	assert.False(t, got.PastDue, "a reached goal is never past due")
}

func TestGoalProgress_ZeroTargetIsGuarded(t *testing.T) {
	today := time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)

	got := GoalProgress(d("50"), decimal.Zero, today.AddDate(0, 1, 0), today)

	assert.True(t, got.Guarded)
	assert.Equal(t, 0, got.Percent)
}
