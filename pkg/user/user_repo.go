package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	CreateUser(ctx context.Context, user User) (int, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	UpdateUser(ctx context.Context, user User) (User, error)
}

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) CreateUser(ctx context.Context, user User) (int, error) {
	query := `INSERT INTO app_user (uid, username, display_name, email, currency)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`

	var id int
	err := r.db.QueryRowContext(ctx, query,
		user.Uid, user.Username, user.DisplayName, user.Email, user.Currency,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not create user: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepo) GetUser(ctx context.Context, id int) (User, error) {
	query := `SELECT id, uid, username, display_name, email, currency FROM app_user WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepo) GetUserByUid(ctx context.Context, uid string) (User, error) {
	query := `SELECT id, uid, username, display_name, email, currency FROM app_user WHERE uid = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, uid))
}

func (r *PostgresRepo) UpdateUser(ctx context.Context, user User) (User, error) {
	query := `UPDATE app_user SET username = $1, display_name = $2, email = $3, currency = $4
			WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		user.Username, user.DisplayName, user.Email, user.Currency, user.Id)
	if err != nil {
		err := fmt.Errorf("could not update user: %w", err)
		log.Error(err)
		return User{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return User{}, err
	}
	if rowsAffected != 1 {
		return User{}, ErrNoUser
	}
	return user, nil
}

func (r *PostgresRepo) scanUser(row *sql.Row) (User, error) {
	var user User
	err := row.Scan(&user.Id, &user.Uid, &user.Username, &user.DisplayName, &user.Email, &user.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNoUser
	}
	if err != nil {
		err := fmt.Errorf("could not scan user: %w", err)
		log.Error(err)
		return User{}, err
	}
	return user, nil
}
