package ledger

import "github.com/govalues/decimal"

// CategoryTotal is one entry of the per-category breakdown.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summary holds the sums derived from one pass over a record sequence.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	// Balance is exactly TotalIncome - TotalExpense.
	Balance decimal.Decimal
	// ByCategory lists every distinct category in first-seen order, each with
	// the sum of the values of its records.
	ByCategory []CategoryTotal
}

// Aggregate computes income, expense, balance, and per-category totals for
// the given records. Records with FlowIncome count as income; everything else
// counts as an outflow. An empty input yields zero sums and an empty
// breakdown.
func Aggregate[T Record](records []T) Summary {
	var income, expense decimal.Decimal
	byCategory := make([]CategoryTotal, 0)
	index := make(map[string]int)

	for _, r := range records {
		if r.Flow() == FlowIncome {
			income, _ = income.Add(r.Value())
		} else {
			expense, _ = expense.Add(r.Value())
		}

		category := r.CategoryKey()
		i, seen := index[category]
		if !seen {
			i = len(byCategory)
			index[category] = i
			byCategory = append(byCategory, CategoryTotal{Category: category})
		}
		byCategory[i].Total, _ = byCategory[i].Total.Add(r.Value())
	}

	balance, _ := income.Sub(expense)
	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      balance,
		ByCategory:   byCategory,
	}
}
