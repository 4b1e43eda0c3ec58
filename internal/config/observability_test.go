package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultObservabilityConfigIsValid(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "researchify", cfg.ServiceName)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.IsProduction())
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.ServiceName = ""
	assert.Error(t, cfg.Validate())
}

func TestGetLogLevelDefaultsByEnvironment(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = ""
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}
