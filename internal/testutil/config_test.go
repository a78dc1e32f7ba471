package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTestDBConfig(t *testing.T) {
	t.Run("defaults to local compose database", func(t *testing.T) {
		for _, k := range []string{"TEST_DB_HOST", "TEST_DB_PORT", "TEST_DB_USER", "TEST_DB_PASSWORD", "TEST_DB_NAME"} {
			t.Setenv(k, "")
		}
		cfg := DefaultTestDBConfig()
		assert.Equal(t, TestDBConfig{
			Host:     "localhost",
			Port:     "55432",
			User:     "chatportal",
			Password: "chatportal",
			DBName:   "chatportal",
		}, cfg)
	})

	t.Run("respects CI overrides", func(t *testing.T) {
		t.Setenv("TEST_DB_HOST", "postgres")
		t.Setenv("TEST_DB_PORT", "5432")
		cfg := DefaultTestDBConfig()
		assert.Equal(t, "postgres", cfg.Host)
		assert.Equal(t, "5432", cfg.Port)
	})
}

func TestTestDBConfig_DSN(t *testing.T) {
	t.Setenv("DB_SSL_MODE", "")
	cfg := TestDBConfig{Host: "db", Port: "5432", User: "u", Password: "p@ss", DBName: "portal"}

	assert.Equal(t, "postgres://u:p%40ss@db:5432/portal?sslmode=disable", cfg.DSN(""))
	assert.Contains(t, cfg.DSN("t_abc,public"), "search_path=t_abc%2Cpublic")
}

func TestEnvBool(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", "y"} {
		t.Setenv("X_FLAG", v)
		assert.True(t, envBool("X_FLAG"), v)
	}
	t.Setenv("X_FLAG", "0")
	assert.False(t, envBool("X_FLAG"))
}
