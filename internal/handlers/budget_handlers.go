package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/privatepenny/privatepennybudget/internal/database"
	"github.com/privatepenny/privatepennybudget/models"
)

type createBudgetRequest struct {
	Month          string            `json:"month"`
	Year           int               `json:"year"`
	Categories     []models.Category `json:"categories"`
	BudgetedIncome float64           `json:"budgetedIncome"`
	IsDefault      bool              `json:"isDefault"`

	// Optional cloning of another budget's category list.
	CloneFrom   *int `json:"cloneFrom"`
	CopyAmounts bool `json:"copyAmounts"`
	CopyNotes   bool `json:"copyNotes"`
}

// CreateBudgetHandler creates a budget. Categories may be given inline or
// cloned from an existing budget; an empty list falls back to the single
// "Add to Savings" placeholder.
func CreateBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createBudgetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
			return
		}

		emptyFields := []string{}
		if req.Month == "" {
			emptyFields = append(emptyFields, "month")
		}
		if req.Year == 0 {
			emptyFields = append(emptyFields, "year")
		}
		if len(emptyFields) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a month and year.", "emptyFields": emptyFields})
			return
		}

		categories := req.Categories
		if len(categories) == 0 && req.CloneFrom != nil {
			source, err := database.GetBudgetByID(c.Request.Context(), pool, UserID(c), *req.CloneFrom)
			if err != nil {
				respondError(c, err)
				return
			}
			categories = cloneCategories(source.Categories, req.CopyAmounts, req.CopyNotes)
		}
		if len(categories) == 0 {
			categories = []models.Category{models.DefaultSavingsCategory()}
		}

		budget := &models.Budget{
			UserID:         UserID(c),
			Month:          req.Month,
			Year:           req.Year,
			Categories:     categories,
			BudgetedIncome: req.BudgetedIncome,
		}
		if err := database.CreateBudget(c.Request.Context(), pool, budget); err != nil {
			respondError(c, err)
			return
		}

		// Promotion happens after the insert so the single-default invariant
		// holds even when another budget is already marked default.
		if req.IsDefault {
			promoted, err := database.SetDefaultBudget(c.Request.Context(), pool, budget.UserID, budget.ID)
			if err != nil {
				respondError(c, err)
				return
			}
			budget = promoted
		}
		c.JSON(http.StatusOK, budget)
	}
}

func GetBudgetsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		budgets, err := database.GetBudgets(c.Request.Context(), pool, UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, budgets)
	}
}

func GetBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
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
		c.JSON(http.StatusOK, budget)
	}
}

type updateBudgetRequest struct {
	Month          *string            `json:"month"`
	Year           *int               `json:"year"`
	Categories     *[]models.Category `json:"categories"`
	BudgetedIncome *float64           `json:"budgetedIncome"`
}

func UpdateBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req updateBudgetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
			return
		}
		if req.Categories != nil {
			normalized := *req.Categories
			req.Categories = &normalized
		}

		budget, err := database.UpdateBudget(c.Request.Context(), pool, UserID(c), id, database.BudgetUpdate{
			Month:          req.Month,
			Year:           req.Year,
			Categories:     req.Categories,
			BudgetedIncome: req.BudgetedIncome,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, budget)
	}
}

func DeleteBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := database.DeleteBudget(c.Request.Context(), pool, UserID(c), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

// SetDefaultBudgetHandler promotes one budget to the owner's default,
// demoting every sibling in the same transaction.
func SetDefaultBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		budget, err := database.SetDefaultBudget(c.Request.Context(), pool, UserID(c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, budget)
	}
}

func cloneCategories(source []models.Category, copyAmounts, copyNotes bool) []models.Category {
	cloned := make([]models.Category, len(source))
	for i, category := range source {
		cloned[i] = models.Category{Name: category.Name, Color: category.Color}
		if copyAmounts {
			cloned[i].Amount = category.Amount
		}
		if copyNotes {
			cloned[i].Note = category.Note
		}
	}
	return cloned
}

// pathID parses the :id path parameter, answering 404 for garbage so an
// unparseable id looks the same as a missing record.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
		return 0, false
	}
	return id, true
}
