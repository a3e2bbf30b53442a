package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/privatepenny/privatepennybudget/internal/auth"
	"github.com/privatepenny/privatepennybudget/internal/config"
	"github.com/privatepenny/privatepennybudget/internal/database"
	"github.com/privatepenny/privatepennybudget/internal/mailer"
	"github.com/privatepenny/privatepennybudget/models"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
	Theme    string `json:"theme"`
}

// RegisterHandler creates an account and returns a session token, so the
// client is logged in right after signing up.
func RegisterHandler(pool *pgxpool.Pool, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
			return
		}
		if req.Email == "" || req.Password == "" || req.Nickname == "" || req.Theme == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields must be filled."})
			return
		}
		if err := auth.ValidateEmail(req.Email); err != nil {
			respondError(c, err)
			return
		}
		if err := auth.ValidatePassword(req.Password); err != nil {
			respondError(c, err)
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		user := &models.User{
			Email:        req.Email,
			PasswordHash: hash,
			Nickname:     req.Nickname,
			Theme:        req.Theme,
		}
		if err := database.CreateUser(c.Request.Context(), pool, user); err != nil {
			respondError(c, err)
			return
		}

		token, err := auth.NewSessionToken(secret, user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email, "theme": user.Theme, "token": token})
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func LoginHandler(pool *pgxpool.Pool, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
			return
		}
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields must be filled."})
			return
		}

		user, err := database.GetUserByEmail(c.Request.Context(), pool, req.Email)
		if err != nil {
			respondError(c, models.ErrUnknownEmail)
			return
		}
		if !auth.CheckPassword(req.Password, user.PasswordHash) {
			respondError(c, models.ErrWrongPassword)
			return
		}

		token, err := auth.NewSessionToken(secret, user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email, "theme": user.Theme, "token": token})
	}
}

const forgotPasswordReply = "If that email is registered, a reset link has been sent."

// ForgotPasswordHandler issues a 15-minute reset token and mails the reset
// link. The response is identical whether or not the email is registered,
// so the endpoint cannot be used to enumerate accounts.
func ForgotPasswordHandler(pool *pgxpool.Pool, cfg *config.Config, sender mailer.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields must be filled."})
			return
		}

		user, err := database.GetUserByEmail(c.Request.Context(), pool, req.Email)
		if err == nil {
			token, _, err := auth.NewResetToken(cfg.Secret, user.ID)
			if err == nil {
				link := fmt.Sprintf("%s/reset-password/%s", cfg.FrontendURL, token)
				if err := sender.SendResetLink(user.Email, link); err != nil {
					log.Printf("reset email to %s failed: %v", user.Email, err)
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": forgotPasswordReply})
	}
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ResetPasswordHandler verifies the reset token, consumes it, and stores the
// new password hash. A token can only be spent once.
func ResetPasswordHandler(pool *pgxpool.Pool, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req resetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" || req.NewPassword == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields must be filled."})
			return
		}

		userID, jti, err := auth.ParseResetToken(secret, req.Token)
		if err != nil {
			respondError(c, err)
			return
		}
		if err := auth.ValidatePassword(req.NewPassword); err != nil {
			respondError(c, err)
			return
		}
		if err := database.ConsumeResetToken(c.Request.Context(), pool, jti, userID); err != nil {
			respondError(c, err)
			return
		}

		user, err := database.GetUserByID(c.Request.Context(), pool, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		hash, err := auth.HashPassword(req.NewPassword)
		if err != nil {
			respondError(c, err)
			return
		}
		user.PasswordHash = hash
		if err := database.UpdateUser(c.Request.Context(), pool, user); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully."})
	}
}

type settingsRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Nickname *string `json:"nickname"`
	Theme    *string `json:"theme"`
}

// UpdateSettingsHandler validates and applies each provided field
// independently; absent fields stay untouched. A fresh token is returned
// because the client stores email and theme alongside it.
func UpdateSettingsHandler(pool *pgxpool.Pool, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req settingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
			return
		}

		user, err := database.GetUserByID(c.Request.Context(), pool, UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}

		if req.Email != nil && *req.Email != "" {
			if err := auth.ValidateEmail(*req.Email); err != nil {
				respondError(c, err)
				return
			}
			user.Email = *req.Email
		}
		if req.Password != nil && *req.Password != "" {
			if err := auth.ValidatePassword(*req.Password); err != nil {
				respondError(c, err)
				return
			}
			hash, err := auth.HashPassword(*req.Password)
			if err != nil {
				respondError(c, err)
				return
			}
			user.PasswordHash = hash
		}
		if req.Nickname != nil && *req.Nickname != "" {
			user.Nickname = *req.Nickname
		}
		if req.Theme != nil && *req.Theme != "" {
			user.Theme = *req.Theme
		}

		if err := database.UpdateUser(c.Request.Context(), pool, user); err != nil {
			respondError(c, err)
			return
		}

		token, err := auth.NewSessionToken(secret, user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email, "theme": user.Theme, "token": token})
	}
}

// DeleteAccountHandler removes the account after re-verifying the password.
// Owned records are removed with it.
func DeleteAccountHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required."})
			return
		}

		user, err := database.GetUserByID(c.Request.Context(), pool, UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		if !auth.CheckPassword(req.Password, user.PasswordHash) {
			respondError(c, models.ErrWrongPassword)
			return
		}
		if err := database.DeleteUser(c.Request.Context(), pool, user.ID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully."})
	}
}
