package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/advisor_client_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "JWT_EXPIRY_DURATION", "RESET_TOKEN_EXPIRY_DURATION", "CONSUME_RESET_TOKEN", "ID_MAX_ATTEMPTS", "JWT_ISSUER"} {
		t.Setenv(key, "")
	}

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 24*time.Hour, cfg.ResetTokenExpiryDuration)
	assert.Equal(t, "advisor-backend", cfg.JWTIssuer)
	assert.Equal(t, uint64(100), cfg.IDMaxAttempts)
	assert.True(t, cfg.ConsumeResetToken)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("JWT_EXPIRY_DURATION", "2h")
	t.Setenv("RESET_TOKEN_EXPIRY_DURATION", "30m")
	t.Setenv("CONSUME_RESET_TOKEN", "false")
	t.Setenv("ID_MAX_ATTEMPTS", "7")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 30*time.Minute, cfg.ResetTokenExpiryDuration)
	assert.False(t, cfg.ConsumeResetToken)
	assert.Equal(t, uint64(7), cfg.IDMaxAttempts)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_DURATION", "not-a-duration")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
}
