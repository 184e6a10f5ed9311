package activity

import (
	"context"
	"fmt"
	"sync"

	"github.com/budgetwise/budgetwise/internal/event_bus"
	"github.com/budgetwise/budgetwise/pkg/user"
	"github.com/google/uuid"
)

// feedLimit caps the number of entries kept per user.
const feedLimit = 50

type Service interface {
	Recent(ctx context.Context) ([]Entry, error)
}

// ServiceImpl listens for record changes and keeps a bounded most-recent-first
// feed per user.
type ServiceImpl struct {
	mu    sync.RWMutex
	feeds map[int][]Entry
}

func NewService(bus *event_bus.EventBus) *ServiceImpl {
	s := &ServiceImpl{feeds: map[int][]Entry{}}

	actions := map[event_bus.EventType]string{
		event_bus.ExpenseCreated:     "created",
		event_bus.ExpenseUpdated:     "updated",
		event_bus.ExpenseDeleted:     "deleted",
		event_bus.BudgetCreated:      "created",
		event_bus.BudgetUpdated:      "updated",
		event_bus.BudgetDeleted:      "deleted",
		event_bus.GoalCreated:        "created",
		event_bus.GoalUpdated:        "updated",
		event_bus.GoalDeleted:        "deleted",
		event_bus.TransactionCreated: "created",
		event_bus.TransactionUpdated: "updated",
		event_bus.TransactionDeleted: "deleted",
	}
	for eventType, action := range actions {
		event_bus.SubscribeTyped[event_bus.RecordChange](bus, eventType,
			func(e event_bus.EventT[event_bus.RecordChange]) error {
				return s.record(e, action)
			})
	}
	return s
}

// Recent returns the user's feed, newest entry first.
func (s *ServiceImpl) Recent(ctx context.Context) ([]Entry, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	feed := s.feeds[userId]
	entries := make([]Entry, len(feed))
	for i, entry := range feed {
		entries[len(feed)-1-i] = entry
	}
	return entries, nil
}

func (s *ServiceImpl) record(e event_bus.EventT[event_bus.RecordChange], action string) error {
	userId, err := user.CurrentId(e.Context())
	if err != nil {
		// events published outside a user scope are not feed material
		return nil
	}

	entry := Entry{
		ID:        uuid.NewString(),
		Action:    action,
		Kind:      e.Data.Kind,
		Title:     e.Data.Title,
		Category:  e.Data.Category,
		Amount:    e.Data.Amount,
		Timestamp: e.Timestamp,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	feed := append(s.feeds[userId], entry)
	if len(feed) > feedLimit {
		feed = feed[len(feed)-feedLimit:]
	}
	s.feeds[userId] = feed
	return nil
}
