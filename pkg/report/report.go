// Package report derives chart-ready series from the stored records. It keeps
// no state of its own; everything is recomputed from transactions and expenses
// on each request.
package report

type MonthlyEntry struct {
	Month    string
	Income   float64
	Expenses float64
}

type CategoryEntry struct {
	Category string
	Total    float64
}

type DailyEntry struct {
	Day    string
	Amount float64
}

type ComparisonEntry struct {
	Month    string
	Current  float64
	Previous float64
}
