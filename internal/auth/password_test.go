package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privatepenny/privatepennybudget/internal/auth"
	"github.com/privatepenny/privatepennybudget/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("Sup3r!Secret")
	require.NoError(t, err)
	require.NotEqual(t, "Sup3r!Secret", hash)

	assert.True(t, auth.CheckPassword("Sup3r!Secret", hash))
	assert.False(t, auth.CheckPassword("sup3r!secret", hash))
	assert.False(t, auth.CheckPassword("", hash))
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last@example.com", "user+tag@mail.example.org"}
	for _, email := range valid {
		assert.NoError(t, auth.ValidateEmail(email), email)
	}

	invalid := []string{"", "plain", "no@dot", "two words@example.com", "@example.com", "user@"}
	for _, email := range invalid {
		assert.ErrorIs(t, auth.ValidateEmail(email), models.ErrInvalidEmail, email)
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"Sup3r!Secret", true},
		{"aB3$efgh", true},
		{"short1!", false},        // under 8 characters
		{"alllower3!", false},     // no uppercase
		{"ALLUPPER3!", false},     // no lowercase
		{"NoDigits!!", false},     // no digit
		{"NoSymbols123", false},   // no symbol
		{"", false},
	}
	for _, tt := range tests {
		err := auth.ValidatePassword(tt.password)
		if tt.ok {
			assert.NoError(t, err, tt.password)
		} else {
			assert.ErrorIs(t, err, models.ErrWeakPassword, tt.password)
		}
	}
}
