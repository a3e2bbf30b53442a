package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/privatepenny/privatepennybudget/models"
)

// CreateUser inserts a new user. A duplicate email maps to ErrEmailInUse.
func CreateUser(ctx context.Context, pool *pgxpool.Pool, user *models.User) error {
	query := `
		INSERT INTO users (email, password_hash, nickname, theme)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := pool.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
		user.Nickname,
		user.Theme).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrEmailInUse
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func GetUserByEmail(ctx context.Context, pool *pgxpool.Pool, email string) (*models.User, error) {
	query := `SELECT id, email, password_hash, nickname, theme FROM users WHERE email = $1`

	user := &models.User{}
	err := pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Nickname,
		&user.Theme,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func GetUserByID(ctx context.Context, pool *pgxpool.Pool, id int) (*models.User, error) {
	query := `SELECT id, email, password_hash, nickname, theme FROM users WHERE id = $1`

	user := &models.User{}
	err := pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Nickname,
		&user.Theme,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

// UpdateUser writes all mutable user fields. Callers apply partial updates
// by mutating a freshly loaded user first.
func UpdateUser(ctx context.Context, pool *pgxpool.Pool, user *models.User) error {
	query := `
		UPDATE users
		SET email = $1, password_hash = $2, nickname = $3, theme = $4
		WHERE id = $5`

	tag, err := pool.Exec(ctx, query,
		user.Email,
		user.PasswordHash,
		user.Nickname,
		user.Theme,
		user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrEmailInUse
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DeleteUser removes the user. Owned budgets, transactions, goals, reminders
// and notifications go with it through the ON DELETE CASCADE constraints.
func DeleteUser(ctx context.Context, pool *pgxpool.Pool, id int) error {
	tag, err := pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ConsumeResetToken records a reset-token jti so it can be used only once.
// A second use maps to ErrInvalidToken.
func ConsumeResetToken(ctx context.Context, pool *pgxpool.Pool, jti string, userID int) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO used_reset_tokens (jti, user_id) VALUES ($1, $2)`, jti, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrInvalidToken
		}
		return fmt.Errorf("consume reset token: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
