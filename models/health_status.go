package models

// StatusHealthy is the only status value a serving tier ever reports.
const StatusHealthy = "healthy"

// HealthStatus is the liveness report returned by GET /health on both tiers.
// It is recomputed on every call, involves no stored state, and never probes
// the other tier — startup ordering between the tiers is enforced by the
// surrounding orchestration observing this endpoint.
type HealthStatus struct {
	// Status is always [StatusHealthy] while the process serves traffic.
	Status string `json:"status"`

	// Service identifies the answering tier ([ServiceGateway] or
	// [ServiceResolver]).
	Service string `json:"service"`

	// Timestamp is the instant of the check in the shared wire format.
	Timestamp string `json:"timestamp"`
}
