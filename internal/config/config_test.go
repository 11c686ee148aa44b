package config_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/infovalid/internal/config"
	"github.com/dmitrymomot/infovalid/pkg/environment"
	"github.com/dmitrymomot/infovalid/pkg/logger"
)

var envKeys = []string{"INFOVALID_ENV", "INFOVALID_LOG_LEVEL", "INFOVALID_LOG_FORMAT", "INFOVALID_OUTPUT"}

// unsetEnv removes key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		unsetEnv(t, envKeys...)

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, config.Config{
			Env:       "development",
			LogLevel:  "warn",
			LogFormat: "text",
			Output:    config.OutputText,
		}, cfg)
	})

	t.Run("reads values from the environment", func(t *testing.T) {
		t.Setenv("INFOVALID_ENV", "prod")
		t.Setenv("INFOVALID_LOG_LEVEL", "debug")
		t.Setenv("INFOVALID_LOG_FORMAT", "json")
		t.Setenv("INFOVALID_OUTPUT", "json")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "prod", cfg.Env)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, config.OutputJSON, cfg.Output)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		t.Setenv("INFOVALID_ENV", "qa")
		t.Setenv("INFOVALID_LOG_LEVEL", "loud")
		t.Setenv("INFOVALID_LOG_FORMAT", "text")
		t.Setenv("INFOVALID_OUTPUT", "yaml")

		_, err := config.Load()
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.ErrorIs(t, err, environment.ErrUnknownEnvironment)
		assert.ErrorIs(t, err, logger.ErrInvalidLevel)
		assert.Contains(t, err.Error(), `output "yaml"`)
	})

	t.Run("missing explicit env file is an error", func(t *testing.T) {
		_, err := config.Load("testdata/does-not-exist.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestLoad_EnvFile(t *testing.T) {
	unsetEnv(t, envKeys...)
	// Process variables take precedence over the file.
	t.Setenv("INFOVALID_LOG_FORMAT", "json")

	cfg, err := config.Load("testdata/.env.test")
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, config.OutputJSON, cfg.Output)
}

func TestConfig_Logger(t *testing.T) {
	cfg := config.Config{Env: "production", LogLevel: "error", LogFormat: "json", Output: "text"}
	require.NoError(t, cfg.Validate())

	log := cfg.Logger("infovalid")
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, log.Enabled(context.Background(), slog.LevelError))
}
