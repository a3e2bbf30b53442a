package models

import "time"

type Goal struct {
	ID           int       `json:"id" db:"id"`
	UserID       int       `json:"user_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	AmountGoal   float64   `json:"amountGoal" db:"amount_goal"`
	AmountActual float64   `json:"amountActual" db:"amount_actual"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Progress returns the percentage saved toward the goal, clamped to 100 for
// display. A zero target counts as fully funded.
func (g *Goal) Progress() float64 {
	if g.AmountGoal == 0 {
		return 100
	}
	p := g.AmountActual / g.AmountGoal * 100
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
