package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/privatepenny/privatepennybudget/models"
)

const (
	// SessionDuration is how long a login token stays valid.
	SessionDuration = 3 * 24 * time.Hour
	// ResetDuration is how long a password-reset token stays valid.
	ResetDuration = 15 * time.Minute

	purposeReset = "reset"
)

type claims struct {
	Purpose string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

// NewSessionToken issues a signed 3-day session token carrying the user id.
func NewSessionToken(secret string, userID int) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionDuration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// ParseSessionToken verifies a session token and returns the user id.
// Reset tokens are rejected here; they cannot be used to authenticate.
func ParseSessionToken(secret, token string) (int, error) {
	c, err := parse(secret, token)
	if err != nil || c.Purpose != "" {
		return 0, models.ErrInvalidToken
	}
	return subject(c)
}

// NewResetToken issues a signed 15-minute password-reset token. The returned
// jti identifies this token so it can be consumed exactly once.
func NewResetToken(secret string, userID int) (token, jti string, err error) {
	now := time.Now()
	jti = uuid.NewString()
	c := claims{
		Purpose: purposeReset,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ResetDuration)),
		},
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	return token, jti, err
}

// ParseResetToken verifies a reset token and returns the user id and jti.
func ParseResetToken(secret, token string) (userID int, jti string, err error) {
	c, err := parse(secret, token)
	if err != nil || c.Purpose != purposeReset || c.ID == "" {
		return 0, "", models.ErrInvalidToken
	}
	userID, err = subject(c)
	if err != nil {
		return 0, "", err
	}
	return userID, c.ID, nil
}

func parse(secret, token string) (*claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, models.ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, models.ErrInvalidToken
	}
	c, ok := parsed.Claims.(*claims)
	if !ok {
		return nil, models.ErrInvalidToken
	}
	return c, nil
}

func subject(c *claims) (int, error) {
	id, err := strconv.Atoi(c.Subject)
	if err != nil || id <= 0 {
		return 0, models.ErrInvalidToken
	}
	return id, nil
}
