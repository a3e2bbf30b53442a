package models

import "time"

type Reminder struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Date      time.Time `json:"date" db:"date"`
	Amount    float64   `json:"amount" db:"amount"`
	Checkbox  bool      `json:"checkbox" db:"checkbox"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
