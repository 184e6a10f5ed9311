package budget

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/govalues/decimal"
	log "github.com/sirupsen/logrus"
)

type Repo interface {
	Store(ctx context.Context, userId int, budget Budget) error
	GetAll(ctx context.Context, userId int) ([]Budget, error)
	Update(ctx context.Context, userId int, budget Budget) (bool, error)
	Delete(ctx context.Context, userId int, id string) (bool, error)
}

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Store(ctx context.Context, userId int, budget Budget) error {
	query := `INSERT INTO budget (id, user_id, category, amount, spent, period)
			VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		budget.ID, userId, budget.Category, budget.Amount.String(), budget.Spent.String(), budget.Period)
	if err != nil {
		err := fmt.Errorf("could not store budget: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *PostgresRepo) GetAll(ctx context.Context, userId int) ([]Budget, error) {
	query := `SELECT id, category, amount, spent, period FROM budget WHERE user_id = $1`

	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query budgets: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var budgets []Budget
	for rows.Next() {
		var budget Budget
		var amount, spent string
		if err := rows.Scan(&budget.ID, &budget.Category, &amount, &spent, &budget.Period); err != nil {
			err := fmt.Errorf("could not scan budget: %w", err)
			log.Error(err)
			return nil, err
		}
		if budget.Amount, err = decimal.Parse(amount); err != nil {
			return nil, fmt.Errorf("could not parse budget amount: %w", err)
		}
		if budget.Spent, err = decimal.Parse(spent); err != nil {
			return nil, fmt.Errorf("could not parse budget spent: %w", err)
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

func (r *PostgresRepo) Update(ctx context.Context, userId int, budget Budget) (bool, error) {
	query := `UPDATE budget SET category = $1, amount = $2, spent = $3, period = $4
			WHERE id = $5 AND user_id = $6`

	result, err := r.db.ExecContext(ctx, query,
		budget.Category, budget.Amount.String(), budget.Spent.String(), budget.Period,
		budget.ID, userId)
	if err != nil {
		err := fmt.Errorf("could not update budget: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get rows affected: %w", err)
	}
	return rowsAffected == 1, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, userId int, id string) (bool, error) {
	query := `DELETE FROM budget WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userId)
	if err != nil {
		err := fmt.Errorf("could not delete budget: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get rows affected: %w", err)
	}
	return rowsAffected == 1, nil
}
