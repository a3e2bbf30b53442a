package models

import "time"

// Transaction categories carry no foreign key; they are matched to budget
// categories by name. Two names are treated specially by the reports:
// "Income" and "Remove from Savings".
const (
	CategoryIncome        = "Income"
	CategoryRemoveSavings = "Remove from Savings"
)

type Transaction struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Date      time.Time `json:"date" db:"date"`
	Title     string    `json:"title" db:"title"`
	Category  string    `json:"category" db:"category"`
	Note      string    `json:"note" db:"note"`
	Value     float64   `json:"value" db:"value"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// NormalizeDate truncates the transaction date to a calendar day in UTC.
// Time of day is never stored.
func (t *Transaction) NormalizeDate() {
	d := t.Date.UTC()
	t.Date = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
