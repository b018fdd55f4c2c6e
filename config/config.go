package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env        string
	Port       string
	AppURL     string
	CORSOrigin []string
	LogLevel   string

	Sanity SanityConfig
	Cache  CacheConfig
	Redis  RedisConfig
	Stripe StripeConfig
}

type SanityConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
}

type CacheConfig struct {
	TTL time.Duration
}

// RedisConfig is optional; an empty Addr disables response caching.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type StripeConfig struct {
	SecretKey         string
	WebhookSecret     string
	ShippingCountries []string
}

func (c *Config) IsDevelopment() bool { return c.Env == EnvDevelopment }

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Env:        v.GetString("APP_ENV"),
		Port:       v.GetString("PORT"),
		AppURL:     strings.TrimRight(v.GetString("APP_URL"), "/"),
		CORSOrigin: splitAndTrim(v.GetString("CORS_ORIGIN")),
		LogLevel:   v.GetString("LOG_LEVEL"),
		Sanity: SanityConfig{
			ProjectID:  v.GetString("SANITY_PROJECT_ID"),
			Dataset:    v.GetString("SANITY_DATASET"),
			APIVersion: v.GetString("SANITY_API_VERSION"),
			Token:      v.GetString("SANITY_TOKEN"),
			UseCDN:     v.GetBool("SANITY_USE_CDN"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Stripe: StripeConfig{
			SecretKey:         v.GetString("STRIPE_SECRET_KEY"),
			WebhookSecret:     v.GetString("STRIPE_WEBHOOK_SECRET"),
			ShippingCountries: splitAndTrim(strings.ToUpper(v.GetString("SHIPPING_COUNTRIES"))),
		},
	}

	defaultTTL := time.Hour
	if cfg.IsDevelopment() {
		defaultTTL = 0
	}
	cfg.Cache.TTL = parseDuration(v.GetString("CONTENT_CACHE_TTL"), defaultTTL)

	required := []struct{ key, val string }{
		{"SANITY_PROJECT_ID", cfg.Sanity.ProjectID},
		{"STRIPE_SECRET_KEY", cfg.Stripe.SecretKey},
		{"STRIPE_WEBHOOK_SECRET", cfg.Stripe.WebhookSecret},
	}
	for _, r := range required {
		if r.val == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", r.key)
		}
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_URL", "http://localhost:3000")
	v.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("SANITY_DATASET", "production")
	v.SetDefault("SANITY_API_VERSION", "2024-01-01")
	v.SetDefault("SANITY_USE_CDN", true)

	v.SetDefault("CONTENT_CACHE_TTL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SHIPPING_COUNTRIES", "US,CA,GB,ES,FR,DE,IT")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
