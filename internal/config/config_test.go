package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadClean(t *testing.T, env map[string]string) *Config {
	t.Helper()

	viper.Reset()
	for k, v := range env {
		t.Setenv(k, v)
	}
	return Load()
}

func TestLoadDefaults(t *testing.T) {
	if _, err := os.Stat(".env"); err == nil {
		t.Skip("local .env present, defaults not observable")
	}

	cfg := loadClean(t, nil)
	require.NotNil(t, cfg)

	assert.Equal(t, "escolar-api", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "school_management", cfg.Database.Name)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.False(t, cfg.Receipt.MonthlyReset)
	assert.Equal(t, []string{"Efectivo", "Tarjeta", "Transferencia"}, cfg.Payment.Methods)
	assert.Equal(t, 10, cfg.Inventory.LowStockThreshold)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
}

func TestLoadFromEnvironment(t *testing.T) {
	if _, err := os.Stat(".env"); err == nil {
		t.Skip("local .env present, env overrides not observable")
	}

	cfg := loadClean(t, map[string]string{
		"APP_PORT":                      "9090",
		"DB_NAME":                       "escolar_test",
		"RECEIPT_MONTHLY_RESET":         "true",
		"INVENTORY_LOW_STOCK_THRESHOLD": "5",
	})

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "escolar_test", cfg.Database.Name)
	assert.True(t, cfg.Receipt.MonthlyReset)
	assert.Equal(t, 5, cfg.Inventory.LowStockThreshold)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		Name:     "escolar",
		User:     "app",
		Password: "secret",
		SSLMode:  "require",
		Timezone: "America/Mexico_City",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "dbname=escolar")
	assert.Contains(t, dsn, "sslmode=require")
	assert.Contains(t, dsn, "TimeZone=America/Mexico_City")
}
