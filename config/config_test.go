package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("ACCESS_TOKEN_SECRET", "secret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_x")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_NAME", "")
	t.Setenv("PORT", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "parmaWorld", cfg.DBName)
	assert.Equal(t, "5000", cfg.Port)
	assert.Empty(t, cfg.AWSRegion)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoadReadsAWSRegion(t *testing.T) {
	setRequired(t)
	t.Setenv("AWS_REGION", "eu-west-1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", cfg.AWSRegion)
}

func TestLoadMissingSecrets(t *testing.T) {
	setRequired(t)
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	t.Setenv("STRIPE_SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ACCESS_TOKEN_SECRET")
	assert.Contains(t, err.Error(), "STRIPE_SECRET_KEY")
}
