package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/privatepenny/privatepennybudget/internal/config"
	"github.com/privatepenny/privatepennybudget/internal/handlers"
	"github.com/privatepenny/privatepennybudget/internal/mailer"
)

// Setup wires every resource route. Auth endpoints are open; everything else
// sits behind the bearer-token middleware so owner scoping cannot be skipped
// per handler.
func Setup(pool *pgxpool.Pool, cfg *config.Config, sender mailer.Sender) *gin.Engine {
	r := gin.Default()
	r.Use(handlers.CORSMiddleware(cfg.FrontendURL))

	user := r.Group("/user")
	{
		user.POST("/register", handlers.RegisterHandler(pool, cfg.Secret))
		user.POST("/login", handlers.LoginHandler(pool, cfg.Secret))
		user.POST("/forgot-password", handlers.ForgotPasswordHandler(pool, cfg, sender))
		user.POST("/reset-password", handlers.ResetPasswordHandler(pool, cfg.Secret))

		settings := user.Group("", handlers.RequireAuth(cfg.Secret))
		settings.PUT("/settings", handlers.UpdateSettingsHandler(pool, cfg.Secret))
		settings.DELETE("/delete", handlers.DeleteAccountHandler(pool))
	}

	authorized := r.Group("", handlers.RequireAuth(cfg.Secret))

	budgets := authorized.Group("/budgets")
	{
		budgets.GET("", handlers.GetBudgetsHandler(pool))
		budgets.POST("", handlers.CreateBudgetHandler(pool))
		budgets.GET("/:id", handlers.GetBudgetHandler(pool))
		budgets.PUT("/:id", handlers.UpdateBudgetHandler(pool))
		budgets.DELETE("/:id", handlers.DeleteBudgetHandler(pool))
		budgets.PUT("/:id/default", handlers.SetDefaultBudgetHandler(pool))
	}

	transactions := authorized.Group("/transactions")
	{
		transactions.GET("", handlers.GetTransactionsHandler(pool))
		transactions.POST("", handlers.CreateTransactionHandler(pool))
		transactions.PATCH("", handlers.UpdateTransactionHandler(pool))
		transactions.GET("/:id", handlers.GetTransactionHandler(pool))
		transactions.DELETE("/:id", handlers.DeleteTransactionHandler(pool))
	}

	goals := authorized.Group("/goals")
	{
		goals.GET("", handlers.GetGoalsHandler(pool))
		goals.POST("", handlers.CreateGoalHandler(pool))
		goals.GET("/:id", handlers.GetGoalHandler(pool))
		goals.PUT("/:id", handlers.UpdateGoalHandler(pool))
		goals.DELETE("/:id", handlers.DeleteGoalHandler(pool))
	}

	reminders := authorized.Group("/reminders")
	{
		reminders.GET("", handlers.GetRemindersHandler(pool))
		reminders.POST("", handlers.CreateReminderHandler(pool))
		reminders.GET("/:id", handlers.GetReminderHandler(pool))
		reminders.PUT("/:id", handlers.UpdateReminderHandler(pool))
		reminders.DELETE("/:id", handlers.DeleteReminderHandler(pool))
	}

	notifications := authorized.Group("/notifications")
	{
		notifications.GET("", handlers.GetNotificationsHandler(pool))
		notifications.PUT("/:id/read", handlers.MarkNotificationReadHandler(pool))
		notifications.DELETE("/:id", handlers.DeleteNotificationHandler(pool))
	}

	reportGroup := authorized.Group("/reports")
	{
		reportGroup.GET("/budget/:id", handlers.BudgetReportHandler(pool))
		reportGroup.GET("/ratio", handlers.RatioReportHandler(pool))
	}

	return r
}
