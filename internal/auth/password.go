package auth

import (
	"regexp"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/privatepenny/privatepennybudget/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// HashPassword hashes a plaintext password with bcrypt. The plaintext is
// never stored.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidateEmail checks the address format.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return models.ErrInvalidEmail
	}
	return nil
}

// ValidatePassword enforces the strength policy: at least 8 characters with
// a lowercase letter, an uppercase letter, a digit and a symbol.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return models.ErrWeakPassword
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if !lower || !upper || !digit || !symbol {
		return models.ErrWeakPassword
	}
	return nil
}
