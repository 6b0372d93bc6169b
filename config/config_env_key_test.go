package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"driver": "sqlite",
			"sqlite": map[string]any{
				"path":        "data/app.sqlite",
				"busyTimeout": "5s",
			},
		},
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
		},
		"env": map[string]any{
			"serviceName": "crm",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_DRIVER", want: "database.driver"},
		{envKey: "DATABASE_SQLITE_BUSYTIMEOUT", want: "database.sqlite.busyTimeout"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyOverrides_ShortEnvNames(t *testing.T) {
	t.Setenv(envSQLitePath, "/tmp/override.sqlite")
	t.Setenv(envPort, "5055")

	cfg := &Config{}
	require.NoError(t, applyOverrides(cfg))

	require.NotNil(t, cfg.Database.SQLite)
	assert.Equal(t, "/tmp/override.sqlite", cfg.Database.SQLite.Path)
	assert.Equal(t, 5055, cfg.HTTP.Port)
}

func TestApplyOverrides_InvalidPort(t *testing.T) {
	t.Setenv(envPort, "not-a-port")

	err := applyOverrides(&Config{})
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Driver = " SQLite "

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, defaultSQLitePath, cfg.Database.SQLite.Path)
	assert.Equal(t, 5*time.Second, cfg.Database.SQLite.BusyTimeout)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
	require.NotNil(t, cfg.QRCode)
	assert.Equal(t, 256, cfg.QRCode.Size)
}

func TestNew_LoadsYAMLAndEnv(t *testing.T) {
	t.Setenv("DATABASE_SQLITE_PATH", "/tmp/from-env.sqlite")
	t.Setenv("ENV_LOG_LEVEL", "debug")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "crm", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, "/tmp/from-env.sqlite", cfg.Database.SQLite.Path)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Nil(t, cfg.Database.Postgres)
}
