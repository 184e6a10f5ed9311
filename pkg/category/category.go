// Package category holds the one authoritative spending category list shared
// by every record kind. Collaborators must agree on these labels, so they are
// defined once here instead of per page.
package category

// Income is the category carried by inflow transactions. It is not offered
// for expenses or budgets.
const Income = "Income"

var spending = []string{
	"Food & Dining",
	"Transportation",
	"Entertainment",
	"Utilities",
	"Rent & Housing",
	"Shopping",
	"Travel",
	"Health",
	"Education",
	"Other",
}

// Spending returns the category labels valid for expenses and budgets.
func Spending() []string {
	out := make([]string, len(spending))
	copy(out, spending)
	return out
}

// All returns every known category label, Income included.
func All() []string {
	return append(Spending(), Income)
}

// IsSpending reports whether name is a valid spending category.
func IsSpending(name string) bool {
	for _, c := range spending {
		if c == name {
			return true
		}
	}
	return false
}

// IsValid reports whether name is any known category, Income included.
func IsValid(name string) bool {
	return name == Income || IsSpending(name)
}
