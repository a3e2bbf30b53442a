package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/privatepenny/privatepennybudget/internal/database"
	"github.com/privatepenny/privatepennybudget/models"
	"github.com/privatepenny/privatepennybudget/utils"
)

type createTransactionRequest struct {
	Date     string   `json:"date"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Note     string   `json:"note"`
	Value    *float64 `json:"value"`
}

// CreateTransactionHandler records a transaction. The response lists every
// missing required field so the form can highlight them all at once.
func CreateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
			return
		}

		emptyFields := []string{}
		if req.Title == "" {
			emptyFields = append(emptyFields, "title")
		}
		if req.Date == "" {
			emptyFields = append(emptyFields, "date")
		}
		if req.Category == "" {
			emptyFields = append(emptyFields, "category")
		}
		if req.Value == nil {
			emptyFields = append(emptyFields, "value")
		}
		if len(emptyFields) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all the required fields.", "emptyFields": emptyFields})
			return
		}

		date, err := utils.ParseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date.", "emptyFields": []string{"date"}})
			return
		}

		transaction := &models.Transaction{
			UserID:   UserID(c),
			Date:     date,
			Title:    req.Title,
			Category: req.Category,
			Note:     req.Note,
			Value:    *req.Value,
		}
		if err := database.CreateTransaction(c.Request.Context(), pool, transaction); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, transaction)
	}
}

func GetTransactionsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactions, err := database.GetTransactions(c.Request.Context(), pool, UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, transactions)
	}
}

func GetTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		transaction, err := database.GetTransactionByID(c.Request.Context(), pool, UserID(c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, transaction)
	}
}

type updateTransactionRequest struct {
	ID       *int     `json:"id"`
	Date     *string  `json:"date"`
	Title    *string  `json:"title"`
	Category *string  `json:"category"`
	Note     *string  `json:"note"`
	Value    *float64 `json:"value"`
}

// UpdateTransactionHandler handles PATCH /transactions. The route carries no
// path parameter; the target id travels in the body.
func UpdateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
			return
		}
		if req.ID == nil || *req.ID <= 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No such transaction."})
			return
		}

		update := database.TransactionUpdate{
			Title:    req.Title,
			Category: req.Category,
			Note:     req.Note,
			Value:    req.Value,
		}
		if req.Date != nil {
			date, err := utils.ParseDate(*req.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date."})
				return
			}
			update.Date = &date
		}

		transaction, err := database.UpdateTransaction(c.Request.Context(), pool, UserID(c), *req.ID, update)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, transaction)
	}
}

func DeleteTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := database.DeleteTransaction(c.Request.Context(), pool, UserID(c), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}
