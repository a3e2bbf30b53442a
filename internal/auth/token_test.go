package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privatepenny/privatepennybudget/internal/auth"
	"github.com/privatepenny/privatepennybudget/models"
)

const testSecret = "unit-test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := auth.NewSessionToken(testSecret, 42)
	require.NoError(t, err)

	userID, err := auth.ParseSessionToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := auth.NewSessionToken(testSecret, 42)
	require.NoError(t, err)

	_, err = auth.ParseSessionToken("another-secret", token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestSessionTokenGarbage(t *testing.T) {
	for _, token := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		_, err := auth.ParseSessionToken(testSecret, token)
		assert.ErrorIs(t, err, models.ErrInvalidToken, token)
	}
}

func TestResetTokenRoundTrip(t *testing.T) {
	token, jti, err := auth.NewResetToken(testSecret, 7)
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	userID, parsedJTI, err := auth.ParseResetToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, 7, userID)
	assert.Equal(t, jti, parsedJTI)
}

func TestResetTokenJTIsAreUnique(t *testing.T) {
	_, first, err := auth.NewResetToken(testSecret, 7)
	require.NoError(t, err)
	_, second, err := auth.NewResetToken(testSecret, 7)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestTokenPurposesAreNotInterchangeable(t *testing.T) {
	reset, _, err := auth.NewResetToken(testSecret, 7)
	require.NoError(t, err)
	_, err = auth.ParseSessionToken(testSecret, reset)
	assert.ErrorIs(t, err, models.ErrInvalidToken, "reset token must not authenticate a session")

	session, err := auth.NewSessionToken(testSecret, 7)
	require.NoError(t, err)
	_, _, err = auth.ParseResetToken(testSecret, session)
	assert.ErrorIs(t, err, models.ErrInvalidToken, "session token must not reset a password")
}
