// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// gateway and resolver binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings shared by both tiers, such as
	// the log verbosity and the reported version.
	App App `envPrefix:"APP_"`

	// Gateway holds the listen address and inbound timeout of the gateway
	// (api1) HTTP server.
	Gateway Server `envPrefix:"GATEWAY_"`

	// Resolver holds the listen address and inbound timeout of the resolver
	// (api2) HTTP server.
	Resolver Server `envPrefix:"RESOLVER_"`

	// Adapter holds the gateway's outbound connection settings for reaching
	// the resolver.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged behind the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values shared by both tiers.
type App struct {
	// LogLevel is the zerolog verbosity level ("debug", "info", "warn",
	// "error"). Unknown or empty values fall back to "info".
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string reported by the service-info
	// endpoint of both tiers (e.g. "1.0.0").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for an inbound HTTP listener.
// The gateway and resolver each get their own instance.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:3000").
	// Env: GATEWAY_ADDRESS / RESOLVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server gives up writing a response (e.g. "30s").
	// Env: GATEWAY_REQUEST_TIMEOUT / RESOLVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the gateway's outbound connection settings for the resolver
// tier.
type Adapter struct {
	// HTTPAddress is the resolver base URL the gateway forwards time
	// requests to (e.g. "http://localhost:4000"). A bare "host:port" is
	// accepted and normalised to an http:// URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound call to the resolver. A timed-out
	// call fails the inbound request; there are no retries.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the shared configuration
// from all available sources in the following priority order (earlier
// sources win, field by field):
//  1. Environment variables (after an optional .env file is loaded)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
