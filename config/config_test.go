package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirecentive/dashboard/database"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.UseHTTPS)
	assert.Equal(t, database.DefaultDSN, cfg.AuditDSN)
	assert.Equal(t, 50, cfg.MockInfluencers)
	assert.Equal(t, 50, cfg.MockLogs)
	assert.Equal(t, "Admin", cfg.OperatorName)
	assert.Equal(t, 60, cfg.MutationRateLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Hour, cfg.SessionLifetime)
	assert.NotZero(t, cfg.Seed)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"PORT":             "9090",
		"USE_HTTPS":        "true",
		"AUDIT_DSN":        "audit.db",
		"SEED":             "42",
		"MOCK_INFLUENCERS": "5",
		"OPERATOR_NAME":    "SuperAdmin",
		"SESSION_LIFETIME": "60",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.UseHTTPS)
	assert.Equal(t, "audit.db", cfg.AuditDSN)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 5, cfg.MockInfluencers)
	assert.Equal(t, "SuperAdmin", cfg.OperatorName)
	assert.Equal(t, time.Minute, cfg.SessionLifetime)
}

func TestFromEnv_Invalid(t *testing.T) {
	_, err := FromEnv(env(map[string]string{"MOCK_LOGS": "lots"}))
	assert.ErrorContains(t, err, "MOCK_LOGS")

	_, err = FromEnv(env(map[string]string{"MOCK_INFLUENCERS": "-1"}))
	assert.ErrorContains(t, err, "MOCK_INFLUENCERS")

	_, err = FromEnv(env(map[string]string{"SEED": "abc"}))
	assert.ErrorContains(t, err, "SEED")
}
