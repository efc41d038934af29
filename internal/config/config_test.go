package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080

[database]
host = "localhost"
port = 5432
user = "postgres"
password = "postgres"
dbname = "hotel"
sslmode = "disable"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultBreakfastPrice, cfg.Pricing.BreakfastPrice)
	assert.Equal(t, domain.DefaultLunchPrice, cfg.Pricing.LunchPrice)
	assert.Equal(t, domain.DefaultDinnerPrice, cfg.Pricing.DinnerPrice)
	assert.Equal(t, domain.DefaultCancellationNoticeHours, cfg.Cancellation.NoticeHours)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 5, cfg.Acquiring.Timeout)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[pricing]
breakfast_price = 350
long_stay_nights = 5
long_stay_discount_percent = 7.5

[cancellation]
notice_hours = 48
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	rules := cfg.PricingRules()
	assert.Equal(t, int64(350), rules.MealPrices.Breakfast)
	assert.Equal(t, domain.DefaultLunchPrice, rules.MealPrices.Lunch)
	assert.Equal(t, 5, rules.LongStayNights)
	assert.Equal(t, 7.5, rules.LongStayDiscountPercent)
	assert.Equal(t, 48, cfg.Cancellation.NoticeHours)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.local",
		Port:     5433,
		User:     "hotel",
		Password: "secret",
		DBName:   "bookings",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.local port=5433 user=hotel password=secret dbname=bookings sslmode=require",
		cfg.DSN())
}
