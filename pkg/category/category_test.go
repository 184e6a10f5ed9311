package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSpending(t *testing.T) {
	assert.True(t, IsSpending("Food & Dining"))
	assert.True(t, IsSpending("Other"))
	assert.False(t, IsSpending("Income"))
	assert.False(t, IsSpending("Groceries"))
	assert.False(t, IsSpending(""))
}

func TestIsValid_IncludesIncome(t *testing.T) {
	assert.True(t, IsValid("Income"))
	assert.True(t, IsValid("Utilities"))
	assert.False(t, IsValid("income"), "category labels are case-sensitive")
}

func TestSpendingReturnsACopy(t *testing.T) {
	first := Spending()
	first[0] = "tampered"

	assert.Equal(t, "Food & Dining", Spending()[0])
}
