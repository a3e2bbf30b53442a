package reports_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privatepenny/privatepennybudget/internal/reports"
	"github.com/privatepenny/privatepennybudget/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSpendByCategory(t *testing.T) {
	budget := &models.Budget{
		Month: "March",
		Year:  2025,
		Categories: []models.Category{
			{Name: "Rent", Amount: 1200},
			{Name: "Groceries", Amount: 400},
		},
	}
	transactions := []models.Transaction{
		{Title: "rent", Category: "Rent", Value: 600, Date: date(2025, time.March, 1)},
		{Title: "weekly shop", Category: "Groceries", Value: 150.50, Date: date(2025, time.March, 8)},
		{Title: "weekly shop", Category: "Groceries", Value: 99.50, Date: date(2025, time.March, 15)},
		// Different month and different year stay out of the sums.
		{Title: "rent", Category: "Rent", Value: 600, Date: date(2025, time.April, 1)},
		{Title: "rent", Category: "Rent", Value: 600, Date: date(2024, time.March, 1)},
		// Unbudgeted category is not reported.
		{Title: "cinema", Category: "Fun", Value: 30, Date: date(2025, time.March, 20)},
	}

	rows := reports.SpendByCategory(budget, transactions)
	require.Len(t, rows, 2)

	assert.Equal(t, reports.CategorySpend{Name: "Rent", Budgeted: 1200, Spent: 600, Percent: 50}, rows[0])
	assert.Equal(t, reports.CategorySpend{Name: "Groceries", Budgeted: 400, Spent: 250, Percent: 62.5}, rows[1])
}

func TestSpendByCategoryZeroBudget(t *testing.T) {
	budget := &models.Budget{
		Month:      "March",
		Year:       2025,
		Categories: []models.Category{{Name: "Add to Savings", Amount: 0}},
	}
	transactions := []models.Transaction{
		{Category: "Add to Savings", Value: 100, Date: date(2025, time.March, 3)},
	}

	rows := reports.SpendByCategory(budget, transactions)
	require.Len(t, rows, 1)
	assert.Equal(t, 100.0, rows[0].Spent)
	assert.Equal(t, 0.0, rows[0].Percent, "zero budgeted amount reports 0%, not a division error")
}

func TestIncomeExpenseRatio(t *testing.T) {
	transactions := []models.Transaction{
		{Category: "Income", Value: 3000, Date: date(2025, time.March, 1)},
		{Category: "Rent", Value: 1200, Date: date(2025, time.March, 2)},
		{Category: "Groceries", Value: 300, Date: date(2025, time.March, 9)},
		// Savings withdrawals count as neither income nor spending.
		{Category: "Remove from Savings", Value: 500, Date: date(2025, time.March, 10)},
		// Out-of-month rows are ignored entirely.
		{Category: "Income", Value: 9999, Date: date(2025, time.February, 28)},
	}

	ratio := reports.IncomeExpenseRatio(transactions, 3, 2025)
	assert.True(t, ratio.HasIncome)
	assert.Equal(t, 3000.0, ratio.Income)
	assert.Equal(t, 1500.0, ratio.Expenses)
	assert.Equal(t, 50.0, ratio.Percent)
}

func TestIncomeExpenseRatioNoIncome(t *testing.T) {
	transactions := []models.Transaction{
		{Category: "Rent", Value: 1200, Date: date(2025, time.March, 2)},
	}

	ratio := reports.IncomeExpenseRatio(transactions, 3, 2025)
	assert.False(t, ratio.HasIncome)
	assert.Equal(t, 0.0, ratio.Income)
	assert.Equal(t, 1200.0, ratio.Expenses)
	assert.Equal(t, 0.0, ratio.Percent)
}

func TestSortBudgets(t *testing.T) {
	budgets := []models.Budget{
		{Month: "January", Year: 2025},
		{Month: "December", Year: 2024},
		{Month: "March", Year: 2025},
		{Month: "not-a-month", Year: 2025},
	}

	reports.SortBudgets(budgets)

	got := make([]string, len(budgets))
	for i, b := range budgets {
		got[i] = b.Month
	}
	assert.Equal(t, []string{"March", "January", "not-a-month", "December"}, got)
}
