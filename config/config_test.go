package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "abc123")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_1")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_1")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", EnvProduction)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "production", cfg.Sanity.Dataset)
	assert.Equal(t, "2024-01-01", cfg.Sanity.APIVersion)
	assert.True(t, cfg.Sanity.UseCDN)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, []string{"US", "CA", "GB", "ES", "FR", "DE", "IT"}, cfg.Stripe.ShippingCountries)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadDevelopmentDisablesCache(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", EnvDevelopment)

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsDevelopment())
	assert.Zero(t, cfg.Cache.TTL)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("CONTENT_CACHE_TTL", "15m")
	t.Setenv("SHIPPING_COUNTRIES", " us, es ")
	t.Setenv("APP_URL", "https://example.com/")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, []string{"US", "ES"}, cfg.Stripe.ShippingCountries)
	assert.Equal(t, "https://example.com", cfg.AppURL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadRequiresSecrets(t *testing.T) {
	setRequired(t)
	t.Setenv("STRIPE_WEBHOOK_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STRIPE_WEBHOOK_SECRET")
}
