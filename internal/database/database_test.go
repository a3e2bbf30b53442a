package database_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privatepenny/privatepennybudget/internal/database"
	"github.com/privatepenny/privatepennybudget/models"
)

// testPool connects to the database named by DATABASE_URL and skips the test
// when none is configured, so the suite stays runnable without Postgres.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(ctx, pool))
	return pool
}

// testUser creates a throwaway user and removes it (with everything it owns)
// when the test finishes.
func testUser(t *testing.T, pool *pgxpool.Pool) *models.User {
	t.Helper()
	user := &models.User{
		Email:        fmt.Sprintf("%d-%s", time.Now().UnixNano(), gofakeit.Email()),
		PasswordHash: "x",
		Nickname:     gofakeit.Username(),
		Theme:        "dark",
	}
	require.NoError(t, database.CreateUser(context.Background(), pool, user))
	t.Cleanup(func() {
		_ = database.DeleteUser(context.Background(), pool, user.ID)
	})
	return user
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)

	dup := &models.User{Email: user.Email, PasswordHash: "x", Nickname: "other", Theme: "light"}
	err := database.CreateUser(context.Background(), pool, dup)
	assert.ErrorIs(t, err, models.ErrEmailInUse)
}

func TestGetUserByEmail(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)

	found, err := database.GetUserByEmail(context.Background(), pool, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = database.GetUserByEmail(context.Background(), pool, "nobody@example.invalid")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestConsumeResetTokenOnce(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)

	jti := uuid.NewString()
	require.NoError(t, database.ConsumeResetToken(context.Background(), pool, jti, user.ID))
	assert.ErrorIs(t, database.ConsumeResetToken(context.Background(), pool, jti, user.ID), models.ErrInvalidToken)
}

func TestBudgetCRUD(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)
	ctx := context.Background()

	budget := &models.Budget{
		UserID:         user.ID,
		Month:          "March",
		Year:           2025,
		Categories:     []models.Category{{Name: "Rent", Amount: 1200, Color: "#ff0000"}},
		BudgetedIncome: 3000,
	}
	require.NoError(t, database.CreateBudget(ctx, pool, budget))
	require.NotZero(t, budget.ID)

	stored, err := database.GetBudgetByID(ctx, pool, user.ID, budget.ID)
	require.NoError(t, err)
	assert.Equal(t, budget.Categories, stored.Categories)

	newIncome := 3500.0
	updated, err := database.UpdateBudget(ctx, pool, user.ID, budget.ID, database.BudgetUpdate{BudgetedIncome: &newIncome})
	require.NoError(t, err)
	assert.Equal(t, 3500.0, updated.BudgetedIncome)
	assert.Equal(t, "March", updated.Month, "unset fields stay untouched")

	require.NoError(t, database.DeleteBudget(ctx, pool, user.ID, budget.ID))
	_, err = database.GetBudgetByID(ctx, pool, user.ID, budget.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestBudgetOwnerScoping(t *testing.T) {
	pool := testPool(t)
	owner := testUser(t, pool)
	stranger := testUser(t, pool)
	ctx := context.Background()

	budget := &models.Budget{UserID: owner.ID, Month: "March", Year: 2025,
		Categories: []models.Category{models.DefaultSavingsCategory()}}
	require.NoError(t, database.CreateBudget(ctx, pool, budget))

	_, err := database.GetBudgetByID(ctx, pool, stranger.ID, budget.ID)
	assert.ErrorIs(t, err, models.ErrNotFound, "another user's budget looks like a missing record")
	assert.ErrorIs(t, database.DeleteBudget(ctx, pool, stranger.ID, budget.ID), models.ErrNotFound)
}

func TestSetDefaultBudget(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)
	ctx := context.Background()

	first := &models.Budget{UserID: user.ID, Month: "February", Year: 2025,
		Categories: []models.Category{models.DefaultSavingsCategory()}}
	second := &models.Budget{UserID: user.ID, Month: "March", Year: 2025,
		Categories: []models.Category{models.DefaultSavingsCategory()}}
	require.NoError(t, database.CreateBudget(ctx, pool, first))
	require.NoError(t, database.CreateBudget(ctx, pool, second))

	promoted, err := database.SetDefaultBudget(ctx, pool, user.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsDefault)

	promoted, err = database.SetDefaultBudget(ctx, pool, user.ID, second.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsDefault)

	demoted, err := database.GetBudgetByID(ctx, pool, user.ID, first.ID)
	require.NoError(t, err)
	assert.False(t, demoted.IsDefault, "promoting one budget demotes the previous default")
}

func TestDeleteUserCascades(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)
	ctx := context.Background()

	budget := &models.Budget{UserID: user.ID, Month: "March", Year: 2025,
		Categories: []models.Category{models.DefaultSavingsCategory()}}
	require.NoError(t, database.CreateBudget(ctx, pool, budget))
	transaction := &models.Transaction{UserID: user.ID, Title: "rent", Category: "Rent",
		Value: 600, Date: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, database.CreateTransaction(ctx, pool, transaction))

	require.NoError(t, database.DeleteUser(ctx, pool, user.ID))

	_, err := database.GetBudgetByID(ctx, pool, user.ID, budget.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = database.GetTransactionByID(ctx, pool, user.ID, transaction.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
