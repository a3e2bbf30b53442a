package models

import "time"

// Category is one spending line inside a budget. The list is stored as a
// jsonb column, so there is no table of its own.
type Category struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Color  string  `json:"color"`
	Note   string  `json:"note"`
}

type Budget struct {
	ID             int        `json:"id" db:"id"`
	UserID         int        `json:"user_id" db:"user_id"`
	Month          string     `json:"month" db:"month"`
	Year           int        `json:"year" db:"year"`
	Categories     []Category `json:"categories" db:"categories"`
	BudgetedIncome float64    `json:"budgetedIncome" db:"budgeted_income"`
	IsDefault      bool       `json:"isDefault" db:"is_default"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

// SavingsCategory is the synthetic category every fresh budget starts with.
const SavingsCategory = "Add to Savings"

// DefaultSavingsCategory returns the placeholder category used when a budget
// is created without any categories of its own.
func DefaultSavingsCategory() Category {
	return Category{Name: SavingsCategory, Amount: 0, Color: "#000000", Note: ""}
}
