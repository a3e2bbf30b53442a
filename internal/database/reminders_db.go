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

const reminderColumns = `id, user_id, name, date, amount, checkbox, created_at`

// ReminderUpdate carries the fields of a partial update. Nil pointers leave
// the stored value untouched; Checkbox is a pointer so an explicit false
// still registers as a toggle.
type ReminderUpdate struct {
	Name     *string
	Date     *time.Time
	Amount   *float64
	Checkbox *bool
}

func CreateReminder(ctx context.Context, pool *pgxpool.Pool, reminder *models.Reminder) error {
	query := `
		INSERT INTO reminders (user_id, name, date, amount, checkbox)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := pool.QueryRow(ctx, query,
		reminder.UserID,
		reminder.Name,
		reminder.Date,
		reminder.Amount,
		reminder.Checkbox).Scan(&reminder.ID, &reminder.CreatedAt)
	if err != nil {
		return fmt.Errorf("create reminder: %w", err)
	}
	return nil
}

// GetReminders returns all reminders of the owner, newest created first.
func GetReminders(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	reminders := []models.Reminder{}
	for rows.Next() {
		var rem models.Reminder
		if err := scanReminder(rows, &rem); err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func GetReminderByID(ctx context.Context, pool *pgxpool.Pool, userID, id int) (*models.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = $1 AND user_id = $2`

	rem := &models.Reminder{}
	err := scanReminder(pool.QueryRow(ctx, query, id, userID), rem)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("get reminder: %w", err)
	}
	return rem, nil
}

// UpdateReminder applies a partial update to the owner's reminder and
// returns the stored record.
func UpdateReminder(ctx context.Context, pool *pgxpool.Pool, userID, id int, update ReminderUpdate) (*models.Reminder, error) {
	query := `
		UPDATE reminders
		SET name = COALESCE($1, name),
			date = COALESCE($2, date),
			amount = COALESCE($3, amount),
			checkbox = COALESCE($4, checkbox)
		WHERE id = $5 AND user_id = $6
		RETURNING ` + reminderColumns

	rem := &models.Reminder{}
	err := scanReminder(pool.QueryRow(ctx, query,
		update.Name,
		update.Date,
		update.Amount,
		update.Checkbox,
		id,
		userID), rem)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("update reminder: %w", err)
	}
	return rem, nil
}

func DeleteReminder(ctx context.Context, pool *pgxpool.Pool, userID, id int) error {
	tag, err := pool.Exec(ctx, `DELETE FROM reminders WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// GetRemindersDueOn returns every unpaid reminder across all users that
// falls due on the given day. Used by the notification job.
func GetRemindersDueOn(ctx context.Context, pool *pgxpool.Pool, day time.Time) ([]models.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE date = $1 AND checkbox = FALSE`

	rows, err := pool.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	defer rows.Close()

	reminders := []models.Reminder{}
	for rows.Next() {
		var rem models.Reminder
		if err := scanReminder(rows, &rem); err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func scanReminder(row pgx.Row, rem *models.Reminder) error {
	return row.Scan(
		&rem.ID,
		&rem.UserID,
		&rem.Name,
		&rem.Date,
		&rem.Amount,
		&rem.Checkbox,
		&rem.CreatedAt,
	)
}
