package config

import (
	"fmt"
)

// GatewayConfig is the top-level configuration of the gateway (api1) binary,
// assembled from [StructuredConfig]. It is built once at startup and treated
// as immutable afterwards.
type GatewayConfig struct {
	// App contains application-level settings (log verbosity, version).
	App App
	// Server contains the gateway's own listen address and inbound timeout.
	Server Server
	// Adapter contains the outbound settings for reaching the resolver.
	Adapter Adapter
}

// GetGatewayConfig builds and validates the gateway-specific config view
// from the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the gateway runtime, and validates the resulting
// [GatewayConfig].
func GetGatewayConfig() (*GatewayConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	gatewayCfg := &GatewayConfig{
		App:     cfg.App,
		Server:  cfg.Gateway,
		Adapter: cfg.Adapter,
	}

	return gatewayCfg, gatewayCfg.validate()
}
