package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("CAPTURE_DELAY", "")
	t.Setenv("MAX_TRAVELLERS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.IsDatabaseConfigured())
	assert.Equal(t, 1500*time.Millisecond, cfg.Checkout.CaptureDelay)
	assert.Equal(t, 2*time.Second, cfg.Checkout.SubmitDelay)
	assert.Equal(t, 0, cfg.Checkout.MaxTravellers)
	assert.Equal(t, 20, cfg.Checkout.NoticeFeedSize)
}

func TestLoad_CheckoutOverrides(t *testing.T) {
	t.Setenv("CAPTURE_DELAY", "250ms")
	t.Setenv("SUBMIT_DELAY", "1s")
	t.Setenv("MAX_TRAVELLERS", "8")
	t.Setenv("SESSION_IDLE_TTL", "10m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Checkout.CaptureDelay)
	assert.Equal(t, time.Second, cfg.Checkout.SubmitDelay)
	assert.Equal(t, 8, cfg.Checkout.MaxTravellers)
	assert.Equal(t, 10*time.Minute, cfg.Checkout.SessionIdleTTL)
}

func TestLoad_DatabaseRequiresPassword(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App: AppConfig{Env: "development"},
			JWT: JWTConfig{Secret: defaultJWTSecret},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults are fine in development", mutate: func(c *Config) {}},
		{name: "default secret refused in production", mutate: func(c *Config) { c.App.Env = "Production" }, wantErr: true},
		{name: "custom secret in production", mutate: func(c *Config) { c.App.Env = "production"; c.JWT.Secret = "s3cret" }},
		{name: "empty secret", mutate: func(c *Config) { c.JWT.Secret = "" }, wantErr: true},
		{name: "negative cap", mutate: func(c *Config) { c.Checkout.MaxTravellers = -1 }, wantErr: true},
		{name: "negative delay", mutate: func(c *Config) { c.Checkout.SubmitDelay = -time.Second }, wantErr: true},
		{name: "database without password", mutate: func(c *Config) { c.Database.Host = "localhost" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetStringSliceEnv(t *testing.T) {
	t.Setenv("TEST_ORIGINS", " https://a.example , ,https://b.example")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, getStringSliceEnv("TEST_ORIGINS", nil))

	t.Setenv("TEST_ORIGINS", " , ")
	assert.Equal(t, []string{"*"}, getStringSliceEnv("TEST_ORIGINS", []string{"*"}))
}

func TestGetDSN(t *testing.T) {
	c := &Config{Database: DatabaseConfig{
		Host: "localhost", Port: "5432", User: "boat", Password: "pw", Name: "checkout",
		SSLMode: "disable", ConnTimeout: 10 * time.Second,
	}}
	assert.Equal(t, "postgres://boat:pw@localhost:5432/checkout?sslmode=disable&connect_timeout=10", c.GetDSN())
}
