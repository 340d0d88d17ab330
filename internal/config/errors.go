package config

import "errors"

// Validation errors returned by the per-binary config views when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates an invalid inbound server group
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid outbound adapter settings
	// (for example, a missing resolver URL or a non-positive request
	// timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
