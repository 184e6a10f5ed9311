package assistant

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	Append(ctx context.Context, userId int, message Message) error
	GetAll(ctx context.Context, userId int) ([]Message, error)
}

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Append(ctx context.Context, userId int, message Message) error {
	query := `INSERT INTO assistant_message (id, user_id, role, content, created_at)
			VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		message.ID, userId, message.Role, message.Content, message.Timestamp)
	if err != nil {
		err := fmt.Errorf("could not store assistant message: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *PostgresRepo) GetAll(ctx context.Context, userId int) ([]Message, error) {
	query := `SELECT id, role, content, created_at FROM assistant_message
			WHERE user_id = $1 ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query assistant messages: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var message Message
		if err := rows.Scan(&message.ID, &message.Role, &message.Content, &message.Timestamp); err != nil {
			err := fmt.Errorf("could not scan assistant message: %w", err)
			log.Error(err)
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}
