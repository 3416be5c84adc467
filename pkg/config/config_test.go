package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-ledger/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "almacen-ledger", cfg.App.Name)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "almacen", cfg.DB.DBName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, int64(5), cfg.Inventory.LowStockThreshold)
	assert.Equal(t, 30, cfg.Inventory.ExpiryWindowDays)
}

func TestLoad_EnvVarsTienenPrioridad(t *testing.T) {
	t.Setenv("DB_HOST", "db.interna")
	t.Setenv("DB_PORT", "15432")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("INVENTORY_LOW_STOCK_THRESHOLD", "12")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.interna", cfg.DB.Host)
	assert.Equal(t, 15432, cfg.DB.Port)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, int64(12), cfg.Inventory.LowStockThreshold)
}

func TestDSN_EscapaCredenciales(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "app", Password: "p@ss:w/rd",
		DBName: "almacen", SSLMode: "disable",
	}

	dsn := db.DSN()

	assert.Contains(t, dsn, "p%40ss%3Aw%2Frd", "la contraseña debe ir URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgresql://u:p@host:5432/db?sslmode=require",
		Host:        "ignorado",
	}

	assert.Equal(t, db.DatabaseURL, db.ConnectionString())
}
