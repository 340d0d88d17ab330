package config

import (
	"fmt"
)

// ResolverConfig is the top-level configuration of the resolver (api2)
// binary, assembled from [StructuredConfig]. It is built once at startup and
// treated as immutable afterwards.
type ResolverConfig struct {
	// App contains application-level settings (log verbosity, version).
	App App
	// Server contains the resolver's listen address and inbound timeout.
	Server Server
}

// GetResolverConfig builds and validates the resolver-specific config view
// from the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the resolver runtime, and validates the resulting
// [ResolverConfig].
func GetResolverConfig() (*ResolverConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	resolverCfg := &ResolverConfig{
		App:    cfg.App,
		Server: cfg.Resolver,
	}

	return resolverCfg, resolverCfg.validate()
}
