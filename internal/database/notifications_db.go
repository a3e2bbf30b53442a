package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/privatepenny/privatepennybudget/models"
)

// CreateReminderNotification inserts the notification for a reminder falling
// due. The unique index on (reminder_id, date_when) makes repeated job runs
// for the same day a no-op.
func CreateReminderNotification(ctx context.Context, pool *pgxpool.Pool, reminder *models.Reminder) error {
	message := fmt.Sprintf("Payment reminder: %s ($%.2f) is due today.", reminder.Name, reminder.Amount)

	query := `
		INSERT INTO notifications (user_id, reminder_id, message, date_when)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (reminder_id, date_when) WHERE reminder_id IS NOT NULL DO NOTHING`

	if _, err := pool.Exec(ctx, query, reminder.UserID, reminder.ID, message, reminder.Date); err != nil {
		return fmt.Errorf("create reminder notification: %w", err)
	}
	return nil
}

// GetNotifications returns all notifications of the owner, newest first.
func GetNotifications(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, message, is_read, date_when, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.IsRead, &n.DateWhen, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func MarkNotificationRead(ctx context.Context, pool *pgxpool.Pool, userID, id int) error {
	tag, err := pool.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func DeleteNotification(ctx context.Context, pool *pgxpool.Pool, userID, id int) error {
	tag, err := pool.Exec(ctx,
		`DELETE FROM notifications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
