// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_LEVEL": "debug",
		"APP_VERSION":   "1.2.3",

		"GATEWAY_ADDRESS":         "localhost:3000",
		"GATEWAY_REQUEST_TIMEOUT": "30s",

		"RESOLVER_ADDRESS":         "localhost:4000",
		"RESOLVER_REQUEST_TIMEOUT": "20s",

		"ADAPTER_ADDRESS":         "http://localhost:4000",
		"ADAPTER_REQUEST_TIMEOUT": "5s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:3000", cfg.Gateway.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Gateway.RequestTimeout)

	assert.Equal(t, "localhost:4000", cfg.Resolver.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Resolver.RequestTimeout)

	assert.Equal(t, "http://localhost:4000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_LOG_LEVEL":   "warn",
		"GATEWAY_ADDRESS": "localhost:3000",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// App partially filled
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Empty(t, cfg.App.Version)

	// Gateway partially filled
	assert.Equal(t, "localhost:3000", cfg.Gateway.HTTPAddress)
	assert.Zero(t, cfg.Gateway.RequestTimeout)

	// Others untouched
	assert.Equal(t, Server{}, cfg.Resolver)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// In this version all nested fields are non-pointer values,
	// so "empty" state is represented by zero values.
	assert.Equal(t, "", cfg.JSONFilePath)

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Gateway)
	assert.Equal(t, Server{}, cfg.Resolver)
	assert.Equal(t, Adapter{}, cfg.Adapter)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	// Error wording may vary depending on parseEnv internals; assert loosely.
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"ADAPTER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_LOG_LEVEL",
		"APP_VERSION",

		"GATEWAY_ADDRESS",
		"GATEWAY_REQUEST_TIMEOUT",

		"RESOLVER_ADDRESS",
		"RESOLVER_REQUEST_TIMEOUT",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
