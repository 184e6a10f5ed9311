package savings

import (
	"context"
	"fmt"
	"sort"

	"github.com/budgetwise/budgetwise/internal/event_bus"
	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/ledger"
	"github.com/budgetwise/budgetwise/pkg/user"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	GetAll(ctx context.Context) ([]Goal, error)
	Overview(ctx context.Context) ([]GoalWithStatus, error)
	TotalSaved(ctx context.Context) (decimal.Decimal, error)
	Create(ctx context.Context, goal Goal) (GoalWithStatus, error)
	Update(ctx context.Context, goal Goal) (GoalWithStatus, error)
	Delete(ctx context.Context, id string) error
}

// GoalWithStatus pairs a goal with its progress derived at read time.
type GoalWithStatus struct {
	Goal
	Status ledger.GoalStatus
}

type ServiceImpl struct {
	repo  Repo
	bus   *event_bus.EventBus
	clock utils.Clock
}

func NewService(repo Repo, bus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus, clock: clock}
}

// GetAll returns the user's goals ordered by target date, soonest deadline
// first.
func (s *ServiceImpl) GetAll(ctx context.Context) ([]Goal, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	goals, err := s.repo.GetAll(ctx, userId)
	if err != nil {
		return nil, err
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].TargetDate.Before(goals[j].TargetDate)
	})
	return goals, nil
}

// Overview returns the user's goals with their progress against today.
func (s *ServiceImpl) Overview(ctx context.Context) ([]GoalWithStatus, error) {
	goals, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	today := s.clock.Today()
	views := make([]GoalWithStatus, 0, len(goals))
	for _, goal := range goals {
		views = append(views, GoalWithStatus{Goal: goal, Status: goal.Progress(today)})
	}
	return views, nil
}

// TotalSaved sums the current amount across all of the user's goals.
func (s *ServiceImpl) TotalSaved(ctx context.Context) (decimal.Decimal, error) {
	goals, err := s.GetAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, goal := range goals {
		total, _ = total.Add(goal.CurrentAmount)
	}
	return total, nil
}

func (s *ServiceImpl) Create(ctx context.Context, goal Goal) (GoalWithStatus, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return GoalWithStatus{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := goal.Validate(); err != nil {
		return GoalWithStatus{}, err
	}

	goal.ID = uuid.NewString()
	if err := s.repo.Store(ctx, userId, goal); err != nil {
		return GoalWithStatus{}, err
	}
	s.publish(ctx, event_bus.GoalCreated, goal)
	return GoalWithStatus{Goal: goal, Status: goal.Progress(s.clock.Today())}, nil
}

func (s *ServiceImpl) Update(ctx context.Context, goal Goal) (GoalWithStatus, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return GoalWithStatus{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := goal.Validate(); err != nil {
		return GoalWithStatus{}, err
	}

	updated, err := s.repo.Update(ctx, userId, goal)
	if err != nil {
		return GoalWithStatus{}, err
	}
	if !updated {
		log.Warnf("savings goal not updated, probably because it does not exist (%s) or the user (%d) is not the owner", goal.ID, userId)
		return GoalWithStatus{}, ErrNotFound
	}
	s.publish(ctx, event_bus.GoalUpdated, goal)
	return GoalWithStatus{Goal: goal, Status: goal.Progress(s.clock.Today())}, nil
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
		log.Warnf("savings goal not deleted, probably because it does not exist (%s) or the user (%d) is not the owner", id, userId)
		return ErrNotFound
	}
	s.publish(ctx, event_bus.GoalDeleted, Goal{ID: id})
	return nil
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, goal Goal) {
	if s.bus == nil {
		return
	}
	change := event_bus.RecordChange{
		RecordID: goal.ID,
		Kind:     "goal",
		Title:    goal.Name,
		Amount:   goal.TargetAmount,
		When:     goal.TargetDate,
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, change)); err != nil {
		log.Warnf("failed to publish %s: %v", eventType, err)
	}
}
