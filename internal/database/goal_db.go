package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/privatepenny/privatepennybudget/models"
)

const goalColumns = `id, user_id, name, amount_goal, amount_actual, created_at`

// GoalUpdate carries the fields of a partial update. Nil pointers leave the
// stored value untouched.
type GoalUpdate struct {
	Name         *string
	AmountGoal   *float64
	AmountActual *float64
}

func CreateGoal(ctx context.Context, pool *pgxpool.Pool, goal *models.Goal) error {
	query := `
		INSERT INTO goals (user_id, name, amount_goal, amount_actual)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := pool.QueryRow(ctx, query,
		goal.UserID,
		goal.Name,
		goal.AmountGoal,
		goal.AmountActual).Scan(&goal.ID, &goal.CreatedAt)
	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

// GetGoals returns all goals of the owner, newest created first.
func GetGoals(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		var g models.Goal
		if err := scanGoal(rows, &g); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func GetGoalByID(ctx context.Context, pool *pgxpool.Pool, userID, id int) (*models.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1 AND user_id = $2`

	g := &models.Goal{}
	err := scanGoal(pool.QueryRow(ctx, query, id, userID), g)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return g, nil
}

// UpdateGoal applies a partial update to the owner's goal and returns the
// stored record.
func UpdateGoal(ctx context.Context, pool *pgxpool.Pool, userID, id int, update GoalUpdate) (*models.Goal, error) {
	query := `
		UPDATE goals
		SET name = COALESCE($1, name),
			amount_goal = COALESCE($2, amount_goal),
			amount_actual = COALESCE($3, amount_actual)
		WHERE id = $4 AND user_id = $5
		RETURNING ` + goalColumns

	g := &models.Goal{}
	err := scanGoal(pool.QueryRow(ctx, query,
		update.Name,
		update.AmountGoal,
		update.AmountActual,
		id,
		userID), g)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("update goal: %w", err)
	}
	return g, nil
}

func DeleteGoal(ctx context.Context, pool *pgxpool.Pool, userID, id int) error {
	tag, err := pool.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func scanGoal(row pgx.Row, g *models.Goal) error {
	return row.Scan(
		&g.ID,
		&g.UserID,
		&g.Name,
		&g.AmountGoal,
		&g.AmountActual,
		&g.CreatedAt,
	)
}
