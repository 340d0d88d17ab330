package models

// Tier identifiers used as service names in health reports and as logger
// roles.
const (
	// ServiceGateway is the public name of the front (relaying) tier.
	ServiceGateway = "api1"

	// ServiceResolver is the public name of the backend (resolving) tier.
	ServiceResolver = "api2"
)

// Human-readable tier descriptions served from GET /.
const (
	DescriptionGateway  = "Time Service Gateway"
	DescriptionResolver = "Time Service Provider"
)

// ServiceInfo is the static metadata document served from GET / on both
// tiers. It is assembled once at startup and never changes afterwards.
type ServiceInfo struct {
	// Name is the tier identifier, e.g. "api1".
	Name string `json:"name"`

	// Version is the semantic version of the running binary.
	Version string `json:"version"`

	// Description is a short human-readable summary of the tier's role.
	Description string `json:"description"`
}
