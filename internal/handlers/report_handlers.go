package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/privatepenny/privatepennybudget/internal/database"
	"github.com/privatepenny/privatepennybudget/internal/reports"
	"github.com/privatepenny/privatepennybudget/utils"
)

// BudgetReportHandler returns the budget-versus-actual rows for one budget,
// computed over the owner's transactions in the budget's month.
func BudgetReportHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		budget, err := database.GetBudgetByID(c.Request.Context(), pool, UserID(c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		transactions, err := database.GetTransactions(c.Request.Context(), pool, UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"budgetId":   budget.ID,
			"month":      budget.Month,
			"year":       budget.Year,
			"categories": reports.SpendByCategory(budget, transactions),
		})
	}
}

// RatioReportHandler returns the month's income/expense ratio. The month is
// given by name, matching how budgets store it.
func RatioReportHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		month := utils.MonthIndex(c.Query("month"))
		year, err := strconv.Atoi(c.Query("year"))
		if month == 0 || err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid month and year are required."})
			return
		}

		transactions, err := database.GetTransactions(c.Request.Context(), pool, UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}

		ratio := reports.IncomeExpenseRatio(transactions, month, year)
		if !ratio.HasIncome {
			c.JSON(http.StatusOK, gin.H{"message": "No Income", "income": ratio.Income, "expenses": ratio.Expenses})
			return
		}
		c.JSON(http.StatusOK, ratio)
	}
}
