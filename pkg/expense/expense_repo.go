package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/govalues/decimal"
	log "github.com/sirupsen/logrus"
)

type Repo interface {
	Store(ctx context.Context, userId int, expense Expense) error
	GetAll(ctx context.Context, userId int) ([]Expense, error)
	Update(ctx context.Context, userId int, expense Expense) (bool, error)
	Delete(ctx context.Context, userId int, id string) (bool, error)
}

// PostgresRepo persists expenses when the database is enabled.
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Store(ctx context.Context, userId int, expense Expense) error {
	query := `INSERT INTO expense (id, user_id, date, category, amount, description)
			VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		expense.ID,
		userId,
		expense.Date.Format("2006-01-02"),
		expense.Category,
		expense.Amount.String(),
		expense.Description,
	)
	if err != nil {
		err := fmt.Errorf("could not store expense: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *PostgresRepo) GetAll(ctx context.Context, userId int) ([]Expense, error) {
	query := `SELECT id, date, category, amount, description
			FROM expense WHERE user_id = $1`

	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var expense Expense
		var amountString string
		if err := rows.Scan(
			&expense.ID,
			&expense.Date,
			&expense.Category,
			&amountString,
			&expense.Description,
		); err != nil {
			err := fmt.Errorf("could not scan expense: %w", err)
			log.Error(err)
			return nil, err
		}
		amount, err := decimal.Parse(amountString)
		if err != nil {
			err := fmt.Errorf("could not parse expense amount: %w", err)
			log.Error(err)
			return nil, err
		}
		expense.Amount = amount
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return expenses, nil
}

func (r *PostgresRepo) Update(ctx context.Context, userId int, expense Expense) (bool, error) {
	query := `UPDATE expense SET date = $1, category = $2, amount = $3, description = $4
			WHERE id = $5 AND user_id = $6`

	result, err := r.db.ExecContext(ctx, query,
		expense.Date.Format("2006-01-02"),
		expense.Category,
		expense.Amount.String(),
		expense.Description,
		expense.ID,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update expense: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, userId int, id string) (bool, error) {
	query := "DELETE FROM expense WHERE id = $1 AND user_id = $2"

	result, err := r.db.ExecContext(ctx, query, id, userId)
	if err != nil {
		err := fmt.Errorf("could not delete expense: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}
