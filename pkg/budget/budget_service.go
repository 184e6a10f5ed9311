package budget

import (
	"context"
	"fmt"
	"sort"

	"github.com/budgetwise/budgetwise/internal/event_bus"
	"github.com/budgetwise/budgetwise/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	GetAll(ctx context.Context) ([]Budget, error)
	Create(ctx context.Context, budget Budget) (Budget, error)
	Update(ctx context.Context, budget Budget) (Budget, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo Repo
	bus  *event_bus.EventBus
}

func NewService(repo Repo, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

// GetAll returns the user's budgets ordered by category name.
func (s *ServiceImpl) GetAll(ctx context.Context) ([]Budget, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	budgets, err := s.repo.GetAll(ctx, userId)
	if err != nil {
		return nil, err
	}
	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].Category < budgets[j].Category
	})
	return budgets, nil
}

func (s *ServiceImpl) Create(ctx context.Context, budget Budget) (Budget, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Budget{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := budget.Validate(); err != nil {
		return Budget{}, err
	}

	budget.ID = uuid.NewString()
	if err := s.repo.Store(ctx, userId, budget); err != nil {
		return Budget{}, err
	}
	s.publish(ctx, event_bus.BudgetCreated, budget)
	return budget, nil
}

func (s *ServiceImpl) Update(ctx context.Context, budget Budget) (Budget, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Budget{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := budget.Validate(); err != nil {
		return Budget{}, err
	}

	updated, err := s.repo.Update(ctx, userId, budget)
	if err != nil {
		return Budget{}, err
	}
	if !updated {
		log.Warnf("budget not updated, probably because it does not exist (%s) or the user (%d) is not the owner", budget.ID, userId)
		return Budget{}, ErrNotFound
	}
	s.publish(ctx, event_bus.BudgetUpdated, budget)
	return budget, nil
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
		log.Warnf("budget not deleted, probably because it does not exist (%s) or the user (%d) is not the owner", id, userId)
		return ErrNotFound
	}
	s.publish(ctx, event_bus.BudgetDeleted, Budget{ID: id})
	return nil
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, budget Budget) {
	if s.bus == nil {
		return
	}
	change := event_bus.RecordChange{
		RecordID: budget.ID,
		Kind:     "budget",
		Title:    budget.Category,
		Category: budget.Category,
		Amount:   budget.Amount,
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, change)); err != nil {
		log.Warnf("failed to publish %s: %v", eventType, err)
	}
}
