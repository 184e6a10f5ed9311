package savings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/govalues/decimal"
	log "github.com/sirupsen/logrus"
)

type Repo interface {
	Store(ctx context.Context, userId int, goal Goal) error
	GetAll(ctx context.Context, userId int) ([]Goal, error)
	Update(ctx context.Context, userId int, goal Goal) (bool, error)
	Delete(ctx context.Context, userId int, id string) (bool, error)
}

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Store(ctx context.Context, userId int, goal Goal) error {
	query := `INSERT INTO savings_goal (id, user_id, name, target_amount, current_amount, target_date)
			VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		goal.ID, userId, goal.Name, goal.TargetAmount.String(), goal.CurrentAmount.String(), goal.TargetDate)
	if err != nil {
		err := fmt.Errorf("could not store savings goal: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *PostgresRepo) GetAll(ctx context.Context, userId int) ([]Goal, error) {
	query := `SELECT id, name, target_amount, current_amount, target_date
			FROM savings_goal WHERE user_id = $1`

	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query savings goals: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		var goal Goal
		var target, current string
		if err := rows.Scan(&goal.ID, &goal.Name, &target, &current, &goal.TargetDate); err != nil {
			err := fmt.Errorf("could not scan savings goal: %w", err)
			log.Error(err)
			return nil, err
		}
		if goal.TargetAmount, err = decimal.Parse(target); err != nil {
			return nil, fmt.Errorf("could not parse target amount: %w", err)
		}
		if goal.CurrentAmount, err = decimal.Parse(current); err != nil {
			return nil, fmt.Errorf("could not parse current amount: %w", err)
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (r *PostgresRepo) Update(ctx context.Context, userId int, goal Goal) (bool, error) {
	query := `UPDATE savings_goal SET name = $1, target_amount = $2, current_amount = $3, target_date = $4
			WHERE id = $5 AND user_id = $6`

	result, err := r.db.ExecContext(ctx, query,
		goal.Name, goal.TargetAmount.String(), goal.CurrentAmount.String(), goal.TargetDate,
		goal.ID, userId)
	if err != nil {
		err := fmt.Errorf("could not update savings goal: %w", err)
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
	query := `DELETE FROM savings_goal WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userId)
	if err != nil {
		err := fmt.Errorf("could not delete savings goal: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get rows affected: %w", err)
	}
	return rowsAffected == 1, nil
}
