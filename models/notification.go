package models

import "time"

type Notification struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	IsRead    bool      `json:"is_read" db:"is_read"`
	DateWhen  time.Time `json:"date_when" db:"date_when"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
