package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/privatepenny/privatepennybudget/models"
)

const transactionColumns = `id, user_id, date, title, category, note, value, created_at`

// TransactionUpdate carries the fields of a partial update. Nil pointers
// leave the stored value untouched.
type TransactionUpdate struct {
	Date     *time.Time
	Title    *string
	Category *string
	Note     *string
	Value    *float64
}

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, date, title, category, note, value)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := pool.QueryRow(ctx, query,
		transaction.UserID,
		transaction.Date,
		transaction.Title,
		transaction.Category,
		transaction.Note,
		transaction.Value).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// GetTransactions returns all transactions of the owner, newest created first.
func GetTransactions(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func GetTransactionByID(ctx context.Context, pool *pgxpool.Pool, userID, id int) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND user_id = $2`

	t := &models.Transaction{}
	err := scanTransaction(pool.QueryRow(ctx, query, id, userID), t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// UpdateTransaction applies a partial update to the owner's transaction and
// returns the stored record.
func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, userID, id int, update TransactionUpdate) (*models.Transaction, error) {
	query := `
		UPDATE transactions
		SET date = COALESCE($1, date),
			title = COALESCE($2, title),
			category = COALESCE($3, category),
			note = COALESCE($4, note),
			value = COALESCE($5, value)
		WHERE id = $6 AND user_id = $7
		RETURNING ` + transactionColumns

	t := &models.Transaction{}
	err := scanTransaction(pool.QueryRow(ctx, query,
		update.Date,
		update.Title,
		update.Category,
		update.Note,
		update.Value,
		id,
		userID), t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	return t, nil
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, userID, id int) error {
	tag, err := pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func scanTransaction(row pgx.Row, t *models.Transaction) error {
	return row.Scan(
		&t.ID,
		&t.UserID,
		&t.Date,
		&t.Title,
		&t.Category,
		&t.Note,
		&t.Value,
		&t.CreatedAt,
	)
}
