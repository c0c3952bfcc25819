package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("returns default when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnv("PAYDESK_MISSING_KEY", "fallback"))
	})

	t.Run("empty value falls back to default", func(t *testing.T) {
		t.Setenv("PAYDESK_EMPTY_KEY", "")
		assert.Equal(t, "fallback", GetEnv("PAYDESK_EMPTY_KEY", "fallback"))
	})

	t.Run("returns set value", func(t *testing.T) {
		t.Setenv("PAYDESK_SET_KEY", "value")
		assert.Equal(t, "value", GetEnv("PAYDESK_SET_KEY", "fallback"))
	})
}

func TestGetIntEnv(t *testing.T) {
	t.Run("returns set int", func(t *testing.T) {
		t.Setenv("PAYDESK_INT_KEY", "3")
		assert.Equal(t, 3, GetIntEnv("PAYDESK_INT_KEY", 7))
	})

	t.Run("non-numeric value falls back to default", func(t *testing.T) {
		t.Setenv("PAYDESK_INT_KEY", "three")
		assert.Equal(t, 7, GetIntEnv("PAYDESK_INT_KEY", 7))
	})
}

func TestDatabaseDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "ledger")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "walletdb")
	t.Setenv("DB_PORT", "5433")

	assert.Equal(t,
		"host=db.internal user=ledger password=secret dbname=walletdb port=5433 sslmode=disable",
		DatabaseDSN())
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENV", "development")
	assert.False(t, IsProduction())

	t.Setenv("ENV", "production")
	assert.True(t, IsProduction())
}
