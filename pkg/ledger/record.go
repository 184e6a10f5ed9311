// Package ledger derives views, sums, and progress classifications from
// in-memory financial records. Every function is pure: inputs are never
// mutated and no state is retained between calls. Record lifecycle and
// user-interaction sequencing belong to the callers.
package ledger

import (
	"time"

	"github.com/govalues/decimal"
)

// FlowType marks the direction of a record's amount. The sign is carried by
// the flow, never by the amount itself.
type FlowType string

const (
	FlowIncome  FlowType = "income"
	FlowExpense FlowType = "expense"
	// FlowNone is reported by record kinds that carry no direction, such as
	// expenses and budgets. They aggregate as outflows.
	FlowNone FlowType = ""
)

// Record is the common shape of an expense, budget, savings goal, or
// transaction: identity plus category plus amount. Implementing it is all a
// record kind needs to be filtered, sorted, and aggregated by this package.
type Record interface {
	// SearchText returns the text the free-text filter matches against,
	// typically the description or name.
	SearchText() string
	// CategoryKey returns the record's category label.
	CategoryKey() string
	// Flow reports the direction of the record's amount.
	Flow() FlowType
	// OccurredAt returns the date used for date ordering.
	OccurredAt() time.Time
	// Value returns the amount the record contributes to aggregations.
	Value() decimal.Decimal
}
