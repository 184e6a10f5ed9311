package ledger

import (
	"testing"
	"time"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

type sampleRecord struct {
	text     string
	category string
	flow     FlowType
	date     time.Time
	amount   decimal.Decimal
}

func (r sampleRecord) SearchText() string { return r.text }
func (r sampleRecord) CategoryKey() string { return r.category }
func (r sampleRecord) Flow() FlowType { return r.flow }
func (r sampleRecord) OccurredAt() time.Time { return r.date }
func (r sampleRecord) Value() decimal.Decimal { return r.amount }

func day(d int) time.Time {
	return time.Date(2023, time.June, d, 0, 0, 0, 0, time.UTC)
}

func rec(text, category string, flow FlowType, d int, amount string) sampleRecord {
	return sampleRecord{
		text:     text,
		category: category,
		flow:     flow,
		date:     day(d),
		amount:   decimal.MustParse(amount),
	}
}

func sampleTransactions() []sampleRecord {
	return []sampleRecord{
		rec("Salary Deposit", "Income", FlowIncome, 20, "3200"),
		rec("Grocery Store", "Food & Dining", FlowExpense, 19, "120.50"),
		rec("Electric Bill", "Utilities", FlowExpense, 18, "95.40"),
		rec("Restaurant", "Food & Dining", FlowExpense, 15, "67.80"),
		rec("Freelance Payment", "Income", FlowIncome, 16, "850"),
		rec("Movie Tickets", "Entertainment", FlowExpense, 13, "32"),
	}
}

func TestFilterAndSort_TextMatchIsCaseInsensitiveSubstring(t *testing.T) {
	got := FilterAndSort(sampleTransactions(), Query{Text: "bill"}, Sort{})

	assert.Len(t, got, 1)
	assert.Equal(t, "Electric Bill", got[0].SearchText())
}

func TestFilterAndSort_EmptyQueryMatchesEverything(t *testing.T) {
	records := sampleTransactions()

	got := FilterAndSort(records, Query{}, Sort{})

	assert.Len(t, got, len(records))
}

func TestFilterAndSort_AllSentinelMatchesAnyCategoryAndFlow(t *testing.T) {
	records := sampleTransactions()

	got := FilterAndSort(records, Query{Category: "All", Flow: "all"}, Sort{})

	assert.Len(t, got, len(records))
}

func TestFilterAndSort_PredicatesAreANDed(t *testing.T) {
	records := sampleTransactions()

	got := FilterAndSort(records, Query{
		Category: "Food & Dining",
		Flow:     "expense",
	}, Sort{Key: SortByAmount, Direction: Descending})

	assert.Len(t, got, 2)
	assert.Equal(t, "Grocery Store", got[0].SearchText())
	assert.Equal(t, "Restaurant", got[1].SearchText())
	for _, r := range got {
		assert.Equal(t, "Food & Dining", r.CategoryKey())
		assert.Equal(t, FlowExpense, r.Flow())
	}
}

func TestFilterAndSort_DefaultOrderIsDateDescending(t *testing.T) {
	got := FilterAndSort(sampleTransactions(), Query{}, Sort{})

	for i := 1; i < len(got); i++ {
		assert.False(t, got[i-1].OccurredAt().Before(got[i].OccurredAt()),
			"records must be ordered most recent first")
	}
}

func TestFilterAndSort_AmountAscending(t *testing.T) {
	got := FilterAndSort(sampleTransactions(), Query{}, Sort{Key: SortByAmount, Direction: Ascending})

	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Value().Cmp(got[i].Value()) <= 0)
	}
	assert.Equal(t, "Movie Tickets", got[0].SearchText())
	assert.Equal(t, "Salary Deposit", got[len(got)-1].SearchText())
}

func TestFilterAndSort_IsStableOnEqualKeys(t *testing.T) {
	records := []sampleRecord{
		rec("first", "Other", FlowExpense, 10, "50"),
		rec("second", "Other", FlowExpense, 10, "50"),
		rec("third", "Other", FlowExpense, 10, "50"),
	}

	got := FilterAndSort(records, Query{}, Sort{Key: SortByAmount, Direction: Descending})

	assert.Equal(t, "first", got[0].SearchText())
	assert.Equal(t, "second", got[1].SearchText())
	assert.Equal(t, "third", got[2].SearchText())
}

func TestFilterAndSort_IsIdempotent(t *testing.T) {
	query := Query{Flow: "expense"}
	order := Sort{Key: SortByDate, Direction: Ascending}

	once := FilterAndSort(sampleTransactions(), query, order)
	twice := FilterAndSort(once, query, order)

	assert.Equal(t, once, twice)
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	records := sampleTransactions()
	original := make([]sampleRecord, len(records))
	copy(original, records)

	FilterAndSort(records, Query{Text: "bill"}, Sort{Key: SortByAmount, Direction: Ascending})

	assert.Equal(t, original, records)
}
