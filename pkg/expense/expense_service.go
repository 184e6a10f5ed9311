package expense

import (
	"context"
	"fmt"

	"github.com/budgetwise/budgetwise/internal/event_bus"
	"github.com/budgetwise/budgetwise/pkg/ledger"
	"github.com/budgetwise/budgetwise/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	List(ctx context.Context, query ledger.Query) ([]Expense, error)
	Create(ctx context.Context, expense Expense) (Expense, error)
	Update(ctx context.Context, expense Expense) (Expense, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo Repo
	bus  *event_bus.EventBus
}

func NewService(repo Repo, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

// List returns the user's expenses matching the query, most recent first.
func (s *ServiceImpl) List(ctx context.Context, query ledger.Query) ([]Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	expenses, err := s.repo.GetAll(ctx, userId)
	if err != nil {
		return nil, err
	}
	return ledger.FilterAndSort(expenses, query, ledger.Sort{}), nil
}

func (s *ServiceImpl) Create(ctx context.Context, expense Expense) (Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Expense{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := expense.Validate(); err != nil {
		return Expense{}, err
	}
	expense.ID = uuid.NewString()

	if err := s.repo.Store(ctx, userId, expense); err != nil {
		return Expense{}, err
	}
	s.publish(ctx, event_bus.ExpenseCreated, expense)
	return expense, nil
}

func (s *ServiceImpl) Update(ctx context.Context, expense Expense) (Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Expense{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := expense.Validate(); err != nil {
		return Expense{}, err
	}

	updated, err := s.repo.Update(ctx, userId, expense)
	if err != nil {
		return Expense{}, err
	}
	if !updated {
		log.Warnf("expense not updated, probably because it does not exist (%s) or the user (%d) is not the owner", expense.ID, userId)
		return Expense{}, ErrNotFound
	}
	s.publish(ctx, event_bus.ExpenseUpdated, expense)
	return expense, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, userId, id)
	if err != nil {
		return err
	}
	if !deleted {
		log.Warnf("expense not deleted, probably because it does not exist (%s) or the user (%d) is not the owner", id, userId)
		return ErrNotFound
	}
	s.publish(ctx, event_bus.ExpenseDeleted, Expense{ID: id})
	return nil
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, expense Expense) {
	if s.bus == nil {
		return
	}
	change := event_bus.RecordChange{
		RecordID: expense.ID,
		Kind:     "expense",
		Title:    expense.Description,
		Category: expense.Category,
		Amount:   expense.Amount,
		When:     expense.Date,
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, change)); err != nil {
		log.Warnf("failed to publish %s: %v", eventType, err)
	}
}
