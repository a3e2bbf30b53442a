package utils

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/privatepenny/privatepennybudget/internal/auth"
	"github.com/privatepenny/privatepennybudget/internal/database"
	"github.com/privatepenny/privatepennybudget/models"
)

// SeedDemoData fills the database with generated users and a plausible set
// of budgets, transactions, goals and reminders for each. Every demo user
// logs in with the password "Demo123!pp".
func SeedDemoData(ctx context.Context, pool *pgxpool.Pool, numUsers int) error {
	hash, err := auth.HashPassword("Demo123!pp")
	if err != nil {
		return err
	}

	for i := 0; i < numUsers; i++ {
		user := &models.User{
			Email:        gofakeit.Email(),
			PasswordHash: hash,
			Nickname:     gofakeit.FirstName(),
			Theme:        randomTheme(),
		}
		if err := database.CreateUser(ctx, pool, user); err != nil {
			return fmt.Errorf("seed user: %w", err)
		}

		if err := seedBudgets(ctx, pool, user.ID); err != nil {
			return err
		}
		if err := seedTransactions(ctx, pool, user.ID); err != nil {
			return err
		}
		if err := seedGoals(ctx, pool, user.ID); err != nil {
			return err
		}
		if err := seedReminders(ctx, pool, user.ID); err != nil {
			return err
		}
	}
	return nil
}

func seedBudgets(ctx context.Context, pool *pgxpool.Pool, userID int) error {
	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		month := now.AddDate(0, -i, 0)
		budget := &models.Budget{
			UserID: userID,
			Month:  month.Month().String(),
			Year:   month.Year(),
			Categories: []models.Category{
				{Name: "Rent", Amount: gofakeit.Price(800, 2000), Color: gofakeit.HexColor()},
				{Name: "Groceries", Amount: gofakeit.Price(200, 600), Color: gofakeit.HexColor()},
				{Name: "Fun", Amount: gofakeit.Price(50, 300), Color: gofakeit.HexColor(), Note: gofakeit.BuzzWord()},
				models.DefaultSavingsCategory(),
			},
			BudgetedIncome: gofakeit.Price(2500, 6000),
			IsDefault:      i == 0,
		}
		if err := database.CreateBudget(ctx, pool, budget); err != nil {
			return fmt.Errorf("seed budget: %w", err)
		}
	}
	return nil
}

func seedTransactions(ctx context.Context, pool *pgxpool.Pool, userID int) error {
	categories := []string{"Rent", "Groceries", "Fun", models.CategoryIncome, models.SavingsCategory}
	for i := 0; i < 25; i++ {
		t := &models.Transaction{
			UserID:   userID,
			Date:     time.Now().UTC().AddDate(0, 0, -rand.Intn(90)),
			Title:    gofakeit.ProductName(),
			Category: categories[rand.Intn(len(categories))],
			Note:     gofakeit.Sentence(4),
			Value:    gofakeit.Price(5, 500),
		}
		t.NormalizeDate()
		if err := database.CreateTransaction(ctx, pool, t); err != nil {
			return fmt.Errorf("seed transaction: %w", err)
		}
	}
	return nil
}

func seedGoals(ctx context.Context, pool *pgxpool.Pool, userID int) error {
	for i := 0; i < 2; i++ {
		goal := gofakeit.Price(1000, 10000)
		g := &models.Goal{
			UserID:       userID,
			Name:         gofakeit.BuzzWord(),
			AmountGoal:   goal,
			AmountActual: gofakeit.Price(0, goal),
		}
		if err := database.CreateGoal(ctx, pool, g); err != nil {
			return fmt.Errorf("seed goal: %w", err)
		}
	}
	return nil
}

func seedReminders(ctx context.Context, pool *pgxpool.Pool, userID int) error {
	for i := 0; i < 3; i++ {
		r := &models.Reminder{
			UserID: userID,
			Name:   gofakeit.Company(),
			Date:   time.Now().UTC().AddDate(0, 0, rand.Intn(30)).Truncate(24 * time.Hour),
			Amount: gofakeit.Price(10, 400),
		}
		if err := database.CreateReminder(ctx, pool, r); err != nil {
			return fmt.Errorf("seed reminder: %w", err)
		}
	}
	return nil
}

func randomTheme() string {
	if rand.Intn(2) == 0 {
		return "light"
	}
	return "dark"
}
