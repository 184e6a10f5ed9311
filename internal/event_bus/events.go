package event_bus

import (
	"time"

	"github.com/govalues/decimal"
)

// Event types published by the record services. The activity feed subscribes
// to all of them.
const (
	ExpenseCreated     EventType = "expense.created"
	ExpenseUpdated     EventType = "expense.updated"
	ExpenseDeleted     EventType = "expense.deleted"
	BudgetCreated      EventType = "budget.created"
	BudgetUpdated      EventType = "budget.updated"
	BudgetDeleted      EventType = "budget.deleted"
	GoalCreated        EventType = "goal.created"
	GoalUpdated        EventType = "goal.updated"
	GoalDeleted        EventType = "goal.deleted"
	TransactionCreated EventType = "transaction.created"
	TransactionUpdated EventType = "transaction.updated"
	TransactionDeleted EventType = "transaction.deleted"
)

// RecordChange describes a change to a financial record in a kind-agnostic
// way, so one subscriber can render a feed across all record kinds.
type RecordChange struct {
	RecordID string
	Kind     string
	Title    string
	Category string
	Amount   decimal.Decimal
	When     time.Time
}
