package config

import "time"

// Default values applied by the lowest-priority configuration source. Any
// environment variable, flag, or JSON field overrides them.
const (
	// DefaultGatewayAddress is the gateway (api1) listen address.
	DefaultGatewayAddress = "localhost:3000"

	// DefaultResolverAddress is the resolver (api2) listen address.
	DefaultResolverAddress = "localhost:4000"

	// DefaultAdapterAddress is the resolver base URL the gateway calls.
	DefaultAdapterAddress = "http://localhost:4000"

	// DefaultServerRequestTimeout bounds a single inbound request.
	DefaultServerRequestTimeout = 15 * time.Second

	// DefaultAdapterRequestTimeout bounds a single outbound call to the
	// resolver.
	DefaultAdapterRequestTimeout = 5 * time.Second

	// DefaultLogLevel is the zerolog verbosity used when none is configured.
	DefaultLogLevel = "info"

	// DefaultVersion is reported by the service-info endpoint when the build
	// provides no version.
	DefaultVersion = "1.0.0"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
			Version:  DefaultVersion,
		},
		Gateway: Server{
			HTTPAddress:    DefaultGatewayAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Resolver: Server{
			HTTPAddress:    DefaultResolverAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
	}
}
