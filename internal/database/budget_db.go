package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/privatepenny/privatepennybudget/models"
)

const budgetColumns = `id, user_id, month, year, categories, budgeted_income, is_default, created_at, updated_at`

// BudgetUpdate carries the fields of a partial update. Nil pointers leave
// the stored value untouched.
type BudgetUpdate struct {
	Month          *string
	Year           *int
	Categories     *[]models.Category
	BudgetedIncome *float64
}

func CreateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) error {
	query := `
		INSERT INTO budgets (user_id, month, year, categories, budgeted_income, is_default)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := pool.QueryRow(ctx, query,
		budget.UserID,
		budget.Month,
		budget.Year,
		budget.Categories,
		budget.BudgetedIncome,
		budget.IsDefault).Scan(&budget.ID, &budget.CreatedAt, &budget.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create budget: %w", err)
	}
	return nil
}

// GetBudgets returns all budgets of the owner, newest created first.
func GetBudgets(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		var b models.Budget
		if err := scanBudget(rows, &b); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func GetBudgetByID(ctx context.Context, pool *pgxpool.Pool, userID, id int) (*models.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE id = $1 AND user_id = $2`

	b := &models.Budget{}
	err := scanBudget(pool.QueryRow(ctx, query, id, userID), b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("get budget: %w", err)
	}
	return b, nil
}

// UpdateBudget applies a partial update to the owner's budget and returns
// the stored record. isDefault is only changed through SetDefaultBudget.
func UpdateBudget(ctx context.Context, pool *pgxpool.Pool, userID, id int, update BudgetUpdate) (*models.Budget, error) {
	query := `
		UPDATE budgets
		SET month = COALESCE($1, month),
			year = COALESCE($2, year),
			categories = COALESCE($3, categories),
			budgeted_income = COALESCE($4, budgeted_income),
			updated_at = now()
		WHERE id = $5 AND user_id = $6
		RETURNING ` + budgetColumns

	b := &models.Budget{}
	err := scanBudget(pool.QueryRow(ctx, query,
		update.Month,
		update.Year,
		update.Categories,
		update.BudgetedIncome,
		id,
		userID), b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("update budget: %w", err)
	}
	return b, nil
}

func DeleteBudget(ctx context.Context, pool *pgxpool.Pool, userID, id int) error {
	tag, err := pool.Exec(ctx, `DELETE FROM budgets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// SetDefaultBudget demotes every budget of the owner and promotes the target,
// inside one transaction so concurrent calls cannot leave two defaults.
func SetDefaultBudget(ctx context.Context, pool *pgxpool.Pool, userID, id int) (*models.Budget, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin set-default: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE budgets SET is_default = FALSE, updated_at = now() WHERE user_id = $1 AND is_default`,
		userID); err != nil {
		return nil, fmt.Errorf("demote defaults: %w", err)
	}

	query := `
		UPDATE budgets
		SET is_default = TRUE, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + budgetColumns

	b := &models.Budget{}
	err = scanBudget(tx.QueryRow(ctx, query, id, userID), b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("promote default: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit set-default: %w", err)
	}
	return b, nil
}

func scanBudget(row pgx.Row, b *models.Budget) error {
	return row.Scan(
		&b.ID,
		&b.UserID,
		&b.Month,
		&b.Year,
		&b.Categories,
		&b.BudgetedIncome,
		&b.IsDefault,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
}
