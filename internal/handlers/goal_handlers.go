package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/privatepenny/privatepennybudget/internal/database"
	"github.com/privatepenny/privatepennybudget/models"
)

type createGoalRequest struct {
	Name         *string  `json:"name"`
	AmountGoal   *float64 `json:"amountGoal"`
	AmountActual *float64 `json:"amountActual"`
}

// CreateGoalHandler creates a savings goal. Presence is checked per field,
// not truthiness, so a goal may legitimately start at zero.
func CreateGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createGoalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
			return
		}

		emptyFields := []string{}
		if req.Name == nil || *req.Name == "" {
			emptyFields = append(emptyFields, "name")
		}
		if req.AmountGoal == nil {
			emptyFields = append(emptyFields, "amountGoal")
		}
		if req.AmountActual == nil {
			emptyFields = append(emptyFields, "amountActual")
		}
		if len(emptyFields) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all fields.", "emptyFields": emptyFields})
			return
		}

		goal := &models.Goal{
			UserID:       UserID(c),
			Name:         *req.Name,
			AmountGoal:   *req.AmountGoal,
			AmountActual: *req.AmountActual,
		}
		if err := database.CreateGoal(c.Request.Context(), pool, goal); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, goal)
	}
}

func GetGoalsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		goals, err := database.GetGoals(c.Request.Context(), pool, UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, goals)
	}
}

func GetGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		goal, err := database.GetGoalByID(c.Request.Context(), pool, UserID(c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, goal)
	}
}

type updateGoalRequest struct {
	Name         *string  `json:"name"`
	AmountGoal   *float64 `json:"amountGoal"`
	AmountActual *float64 `json:"amountActual"`
}

func UpdateGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req updateGoalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
			return
		}

		goal, err := database.UpdateGoal(c.Request.Context(), pool, UserID(c), id, database.GoalUpdate{
			Name:         req.Name,
			AmountGoal:   req.AmountGoal,
			AmountActual: req.AmountActual,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, goal)
	}
}

func DeleteGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := database.DeleteGoal(c.Request.Context(), pool, UserID(c), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}
