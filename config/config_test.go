package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, StoreBackendWorkbook, cfg.Store.Backend)
	assert.Equal(t, "data", cfg.Store.DataDir)
	assert.Equal(t, "data/ledger.db", cfg.Store.SQLitePath)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("LEDGER_STORE", StoreBackendSQLite)
	t.Setenv("LEDGER_SQLITE_PATH", "/tmp/test.db")
	t.Setenv("LEDGER_BCRYPT_COST", "4")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, StoreBackendSQLite, cfg.Store.Backend)
	assert.Equal(t, "/tmp/test.db", cfg.Store.SQLitePath)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_IgnoresUnreadableInt(t *testing.T) {
	t.Setenv("LEDGER_BCRYPT_COST", "lots")

	cfg := Load()

	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}
