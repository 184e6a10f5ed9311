package activity

import (
	"time"

	"github.com/govalues/decimal"
)

// Entry is one line of the activity feed.
type Entry struct {
	ID        string
	Action    string
	Kind      string
	Title     string
	Category  string
	Amount    decimal.Decimal
	Timestamp time.Time
}
