package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/privatepenny/privatepennybudget/models"
)

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name string
		goal models.Goal
		want float64
	}{
		{"halfway", models.Goal{AmountGoal: 1000, AmountActual: 500}, 50},
		{"complete", models.Goal{AmountGoal: 1000, AmountActual: 1000}, 100},
		{"overfunded clamps", models.Goal{AmountGoal: 1000, AmountActual: 1500}, 100},
		{"negative clamps", models.Goal{AmountGoal: 1000, AmountActual: -100}, 0},
		{"zero target counts as funded", models.Goal{AmountGoal: 0, AmountActual: 0}, 100},
		{"untouched", models.Goal{AmountGoal: 1000, AmountActual: 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.goal.Progress())
		})
	}
}

func TestDefaultSavingsCategory(t *testing.T) {
	category := models.DefaultSavingsCategory()
	assert.Equal(t, models.SavingsCategory, category.Name)
	assert.Equal(t, 0.0, category.Amount)
	assert.Equal(t, "#000000", category.Color)
	assert.Equal(t, "", category.Note)
}

func TestTransactionNormalizeDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	transaction := models.Transaction{Date: time.Date(2025, time.March, 9, 1, 30, 0, 0, loc)}

	transaction.NormalizeDate()

	assert.Equal(t, time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC), transaction.Date,
		"01:30 at UTC+3 is still March 8th in UTC")
}
