package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privatepenny/privatepennybudget/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db")
	t.Setenv("PORT", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("SMTP_HOST", "")
	t.Setenv("EMAIL_USER", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":4001", cfg.Addr())
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.False(t, cfg.MailConfigured())
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadAssemblesDatabaseURL(t *testing.T) {
	t.Setenv("SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_USER", "penny")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "pennydb")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://penny:pw@db.internal:5433/pennydb", cfg.DatabaseURL)
}

func TestLoadRejectsBadSMTPPort(t *testing.T) {
	t.Setenv("SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db")
	t.Setenv("SMTP_PORT", "not-a-port")

	_, err := config.Load()
	assert.Error(t, err)
}
