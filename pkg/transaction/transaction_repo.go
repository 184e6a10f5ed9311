package transaction

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/govalues/decimal"
	log "github.com/sirupsen/logrus"
)

type Repo interface {
	Store(ctx context.Context, userId int, transaction Transaction) error
	GetAll(ctx context.Context, userId int) ([]Transaction, error)
	Update(ctx context.Context, userId int, transaction Transaction) (bool, error)
	Delete(ctx context.Context, userId int, id string) (bool, error)
}

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Store(ctx context.Context, userId int, transaction Transaction) error {
	query := `INSERT INTO transaction (id, user_id, date, description, category, amount, type)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		transaction.ID, userId, transaction.Date, transaction.Description,
		transaction.Category, transaction.Amount.String(), transaction.Type)
	if err != nil {
		err := fmt.Errorf("could not store transaction: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *PostgresRepo) GetAll(ctx context.Context, userId int) ([]Transaction, error) {
	query := `SELECT id, date, description, category, amount, type
			FROM transaction WHERE user_id = $1`

	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query transactions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var transactions []Transaction
	for rows.Next() {
		var transaction Transaction
		var amount string
		if err := rows.Scan(&transaction.ID, &transaction.Date, &transaction.Description,
			&transaction.Category, &amount, &transaction.Type); err != nil {
			err := fmt.Errorf("could not scan transaction: %w", err)
			log.Error(err)
			return nil, err
		}
		if transaction.Amount, err = decimal.Parse(amount); err != nil {
			return nil, fmt.Errorf("could not parse transaction amount: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *PostgresRepo) Update(ctx context.Context, userId int, transaction Transaction) (bool, error) {
	query := `UPDATE transaction SET date = $1, description = $2, category = $3, amount = $4, type = $5
			WHERE id = $6 AND user_id = $7`

	result, err := r.db.ExecContext(ctx, query,
		transaction.Date, transaction.Description, transaction.Category,
		transaction.Amount.String(), transaction.Type,
		transaction.ID, userId)
	if err != nil {
		err := fmt.Errorf("could not update transaction: %w", err)
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
	query := `DELETE FROM transaction WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userId)
	if err != nil {
		err := fmt.Errorf("could not delete transaction: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get rows affected: %w", err)
	}
	return rowsAffected == 1, nil
}
