package transaction

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
	List(ctx context.Context, query ledger.Query, order ledger.Sort) ([]Transaction, error)
	Summary(ctx context.Context, query ledger.Query) (ledger.Summary, error)
	Create(ctx context.Context, transaction Transaction) (Transaction, error)
	Update(ctx context.Context, transaction Transaction) (Transaction, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo Repo
	bus  *event_bus.EventBus
}

func NewService(repo Repo, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func (s *ServiceImpl) List(ctx context.Context, query ledger.Query, order ledger.Sort) ([]Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	transactions, err := s.repo.GetAll(ctx, userId)
	if err != nil {
		return nil, err
	}
	return ledger.FilterAndSort(transactions, query, order), nil
}

// Summary aggregates the transactions matching the query into income, expense,
// balance, and per-category totals.
func (s *ServiceImpl) Summary(ctx context.Context, query ledger.Query) (ledger.Summary, error) {
	transactions, err := s.List(ctx, query, ledger.Sort{})
	if err != nil {
		return ledger.Summary{}, err
	}
	return ledger.Aggregate(transactions), nil
}

func (s *ServiceImpl) Create(ctx context.Context, transaction Transaction) (Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Transaction{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := transaction.Validate(); err != nil {
		return Transaction{}, err
	}

	transaction.ID = uuid.NewString()
	if err := s.repo.Store(ctx, userId, transaction); err != nil {
		return Transaction{}, err
	}
	s.publish(ctx, event_bus.TransactionCreated, transaction)
	return transaction, nil
}

func (s *ServiceImpl) Update(ctx context.Context, transaction Transaction) (Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Transaction{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := transaction.Validate(); err != nil {
		return Transaction{}, err
	}

	updated, err := s.repo.Update(ctx, userId, transaction)
	if err != nil {
		return Transaction{}, err
	}
	if !updated {
		log.Warnf("transaction not updated, probably because it does not exist (%s) or the user (%d) is not the owner", transaction.ID, userId)
		return Transaction{}, ErrNotFound
	}
	s.publish(ctx, event_bus.TransactionUpdated, transaction)
	return transaction, nil
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
		log.Warnf("transaction not deleted, probably because it does not exist (%s) or the user (%d) is not the owner", id, userId)
		return ErrNotFound
	}
	s.publish(ctx, event_bus.TransactionDeleted, Transaction{ID: id})
	return nil
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, transaction Transaction) {
	if s.bus == nil {
		return
	}
	change := event_bus.RecordChange{
		RecordID: transaction.ID,
		Kind:     "transaction",
		Title:    transaction.Description,
		Category: transaction.Category,
		Amount:   transaction.Amount,
		When:     transaction.Date,
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, change)); err != nil {
		log.Warnf("failed to publish %s: %v", eventType, err)
	}
}
