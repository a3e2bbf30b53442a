// Package reports computes the derived financial views the dashboard
// renders: per-category spending against a budget, the monthly
// income/expense ratio, and the display order of budgets. Sums use decimal
// arithmetic so repeated additions of float-encoded amounts do not drift.
package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/privatepenny/privatepennybudget/models"
	"github.com/privatepenny/privatepennybudget/utils"
)

// CategorySpend is one row of the budget-versus-actual view.
type CategorySpend struct {
	Name     string  `json:"name"`
	Budgeted float64 `json:"budgeted"`
	Spent    float64 `json:"spent"`
	Percent  float64 `json:"percent"`
}

// Ratio summarizes a month's spending relative to its income.
type Ratio struct {
	Income    float64 `json:"income"`
	Expenses  float64 `json:"expenses"`
	Percent   float64 `json:"percent"`
	HasIncome bool    `json:"hasIncome"`
}

// SpendByCategory sums the transactions that fall in the budget's month and
// match each category by name, and reports the spent share of the budgeted
// amount. A category budgeted at zero reports 0%.
func SpendByCategory(budget *models.Budget, transactions []models.Transaction) []CategorySpend {
	month := utils.MonthIndex(budget.Month)
	year := budget.Year

	rows := make([]CategorySpend, 0, len(budget.Categories))
	for _, category := range budget.Categories {
		spent := decimal.Zero
		for _, t := range transactions {
			if t.Category == category.Name && inMonth(t, month, year) {
				spent = spent.Add(decimal.NewFromFloat(t.Value))
			}
		}

		row := CategorySpend{
			Name:     category.Name,
			Budgeted: category.Amount,
			Spent:    spent.InexactFloat64(),
		}
		if category.Amount != 0 {
			row.Percent = spent.
				Div(decimal.NewFromFloat(category.Amount)).
				Mul(decimal.NewFromInt(100)).
				Round(2).
				InexactFloat64()
		}
		rows = append(rows, row)
	}
	return rows
}

// IncomeExpenseRatio sums a month's income ("Income" transactions) and
// expenses (everything except "Income" and "Remove from Savings") and
// reports expenses as a percentage of income. HasIncome is false when the
// income sum is zero; callers surface that as "No Income".
func IncomeExpenseRatio(transactions []models.Transaction, month, year int) Ratio {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, t := range transactions {
		if !inMonth(t, month, year) {
			continue
		}
		switch t.Category {
		case models.CategoryIncome:
			income = income.Add(decimal.NewFromFloat(t.Value))
		case models.CategoryRemoveSavings:
			// Withdrawing savings is neither income nor spending.
		default:
			expenses = expenses.Add(decimal.NewFromFloat(t.Value))
		}
	}

	ratio := Ratio{
		Income:   income.InexactFloat64(),
		Expenses: expenses.InexactFloat64(),
	}
	if !income.IsZero() {
		ratio.HasIncome = true
		ratio.Percent = expenses.
			Div(income).
			Mul(decimal.NewFromInt(100)).
			Round(2).
			InexactFloat64()
	}
	return ratio
}

// SortBudgets orders budgets for display: newest year first, then newest
// month within the year. Budgets with an unrecognized month name sort last
// within their year.
func SortBudgets(budgets []models.Budget) {
	sort.SliceStable(budgets, func(i, j int) bool {
		if budgets[i].Year != budgets[j].Year {
			return budgets[i].Year > budgets[j].Year
		}
		return utils.MonthIndex(budgets[i].Month) > utils.MonthIndex(budgets[j].Month)
	})
}

func inMonth(t models.Transaction, month, year int) bool {
	d := t.Date.UTC()
	return int(d.Month()) == month && d.Year() == year
}
