package demo

import (
	"context"
	"errors"
	"fmt"

	"github.com/budgetwise/budgetwise/pkg/budget"
	"github.com/budgetwise/budgetwise/pkg/expense"
	"github.com/budgetwise/budgetwise/pkg/ledger"
	"github.com/budgetwise/budgetwise/pkg/savings"
	"github.com/budgetwise/budgetwise/pkg/transaction"
	"github.com/budgetwise/budgetwise/pkg/user"
	log "github.com/sirupsen/logrus"
)

type Seeder struct {
	Users        user.Service
	Expenses     expense.Service
	Budgets      budget.Service
	Goals        savings.Service
	Transactions transaction.Service
}

// Seed provisions the demo user and loads the fixtures, unless the user
// already has records.
func (s *Seeder) Seed(ctx context.Context) error {
	demoUser, err := s.Users.GetUserByUid(ctx, UserUid)
	if errors.Is(err, user.ErrNoUser) {
		demoUser, err = s.Users.CreateUser(ctx, user.User{
			Uid:         UserUid,
			Username:    UserUid,
			DisplayName: UserDisplayName,
			Currency:    "USD",
		})
	}
	if err != nil {
		return fmt.Errorf("could not provision demo user: %w", err)
	}
	ctx = user.WithUser(ctx, demoUser)

	existing, err := s.Transactions.List(ctx, ledger.Query{}, ledger.Sort{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Debug("Demo data already present, skipping seed")
		return nil
	}

	for _, e := range Expenses() {
		if _, err := s.Expenses.Create(ctx, e); err != nil {
			return fmt.Errorf("could not seed expense: %w", err)
		}
	}
	for _, b := range Budgets() {
		if _, err := s.Budgets.Create(ctx, b); err != nil {
			return fmt.Errorf("could not seed budget: %w", err)
		}
	}
	for _, g := range Goals() {
		if _, err := s.Goals.Create(ctx, g); err != nil {
			return fmt.Errorf("could not seed savings goal: %w", err)
		}
	}
	for _, tx := range Transactions() {
		if _, err := s.Transactions.Create(ctx, tx); err != nil {
			return fmt.Errorf("could not seed transaction: %w", err)
		}
	}

	log.Infof("Seeded demo data for user %s", demoUser.Uid)
	return nil
}
