package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/privatepenny/privatepennybudget/internal/database"
	"github.com/privatepenny/privatepennybudget/models"
	"github.com/privatepenny/privatepennybudget/utils"
)

type createReminderRequest struct {
	Name   string   `json:"name"`
	Date   string   `json:"date"`
	Amount *float64 `json:"amount"`
}

// CreateReminderHandler creates a payment reminder. It always starts unpaid;
// the paid flag is only ever toggled through updates.
func CreateReminderHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createReminderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
			return
		}

		emptyFields := []string{}
		if req.Name == "" {
			emptyFields = append(emptyFields, "name")
		}
		if req.Date == "" {
			emptyFields = append(emptyFields, "date")
		}
		if req.Amount == nil {
			emptyFields = append(emptyFields, "amount")
		}
		if len(emptyFields) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all fields.", "emptyFields": emptyFields})
			return
		}

		date, err := utils.ParseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date.", "emptyFields": []string{"date"}})
			return
		}

		reminder := &models.Reminder{
			UserID:   UserID(c),
			Name:     req.Name,
			Date:     date,
			Amount:   *req.Amount,
			Checkbox: false,
		}
		if err := database.CreateReminder(c.Request.Context(), pool, reminder); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, reminder)
	}
}

func GetRemindersHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		reminders, err := database.GetReminders(c.Request.Context(), pool, UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, reminders)
	}
}

func GetReminderHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		reminder, err := database.GetReminderByID(c.Request.Context(), pool, UserID(c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, reminder)
	}
}

type updateReminderRequest struct {
	Name     *string  `json:"name"`
	Date     *string  `json:"date"`
	Amount   *float64 `json:"amount"`
	Checkbox *bool    `json:"checkbox"`
}

// UpdateReminderHandler applies a partial update; checkbox may be toggled on
// its own without resending the other fields.
func UpdateReminderHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req updateReminderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
			return
		}

		update := database.ReminderUpdate{
			Name:     req.Name,
			Amount:   req.Amount,
			Checkbox: req.Checkbox,
		}
		if req.Date != nil {
			date, err := utils.ParseDate(*req.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date."})
				return
			}
			update.Date = &date
		}

		reminder, err := database.UpdateReminder(c.Request.Context(), pool, UserID(c), id, update)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, reminder)
	}
}

func DeleteReminderHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := database.DeleteReminder(c.Request.Context(), pool, UserID(c), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}
