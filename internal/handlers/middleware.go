package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/privatepenny/privatepennybudget/internal/auth"
	"github.com/privatepenny/privatepennybudget/models"
)

const userIDKey = "userID"

// RequireAuth verifies the bearer token and stores the authenticated user id
// in the request context. Every resource handler reads the owner id from
// here, never from the request body.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required."})
			return
		}

		userID, err := auth.ParseSessionToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Request is not authorized."})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}

// CORSMiddleware allows the configured frontend origin to call the API.
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Header.Get("Origin") == origin {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// respondError maps the shared sentinel errors onto the API's status codes:
// 404 for missing records, 400 for anything the client got wrong, 500
// otherwise. Unexpected errors are logged and never echoed to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
	case errors.Is(err, models.ErrEmailInUse),
		errors.Is(err, models.ErrInvalidEmail),
		errors.Is(err, models.ErrWeakPassword),
		errors.Is(err, models.ErrUnknownEmail),
		errors.Is(err, models.ErrWrongPassword),
		errors.Is(err, models.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": errMessage(err)})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong."})
	}
}

// errMessage renders sentinel errors the way the client displays them.
func errMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrEmailInUse):
		return "Email already in use."
	case errors.Is(err, models.ErrInvalidEmail):
		return "Email is not valid."
	case errors.Is(err, models.ErrWeakPassword):
		return "Password is not strong enough."
	case errors.Is(err, models.ErrUnknownEmail):
		return "Incorrect Email"
	case errors.Is(err, models.ErrWrongPassword):
		return "Incorrect Password"
	case errors.Is(err, models.ErrInvalidToken):
		return "Invalid or expired token."
	default:
		return err.Error()
	}
}
