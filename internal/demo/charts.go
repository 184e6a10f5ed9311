package demo

// Chart series served by the report endpoints when the user has no records
// yet. Once real transactions exist the series are derived instead.

type MonthlyPoint struct {
	Month    string
	Income   float64
	Expenses float64
}

type CategoryPoint struct {
	Name  string
	Value float64
}

type DailyPoint struct {
	Day    string
	Amount float64
}

type ComparisonPoint struct {
	Month    string
	Current  float64
	Previous float64
}

func MonthlySpending() []MonthlyPoint {
	return []MonthlyPoint{
		{"Jan", 4200, 2100},
		{"Feb", 4000, 1900},
		{"Mar", 4800, 2300},
		{"Apr", 4500, 2800},
		{"May", 4700, 2400},
		{"Jun", 4300, 2200},
	}
}

func CategorySpending() []CategoryPoint {
	return []CategoryPoint{
		{"Food & Dining", 950},
		{"Rent & Housing", 1200},
		{"Utilities", 450},
		{"Entertainment", 380},
		{"Transportation", 320},
		{"Shopping", 550},
		{"Health", 280},
	}
}

func DailySpending() []DailyPoint {
	return []DailyPoint{
		{"Mon", 85},
		{"Tue", 120},
		{"Wed", 95},
		{"Thu", 130},
		{"Fri", 210},
		{"Sat", 180},
		{"Sun", 110},
	}
}

func YearlyComparison() []ComparisonPoint {
	return []ComparisonPoint{
		{"Jan", 2100, 2000},
		{"Feb", 1900, 2100},
		{"Mar", 2300, 2200},
		{"Apr", 2800, 2400},
		{"May", 2400, 2300},
		{"Jun", 2200, 2500},
	}
}
