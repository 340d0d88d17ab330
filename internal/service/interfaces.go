package service

import (
	"context"

	"github.com/MKhiriev/go-time-relay/models"
)

// TimeService answers GET /time for a tier. The resolver backs it with the
// local alias table and clock; the gateway backs it with a relay to the
// resolver over [adapter.ResolverAdapter].
type TimeService interface {
	// CurrentTime produces the TimeResponse for the requested symbolic
	// timezone. requestID is the correlation id already established for the
	// inbound request and is echoed into the response.
	//
	// An empty timezone means the client omitted the parameter; the response
	// then reports the default zone name rather than an empty string.
	CurrentTime(ctx context.Context, timezone string, requestID string) (models.TimeResponse, error)
}

// AppInfoService answers the static metadata and liveness endpoints shared by
// both tiers.
type AppInfoService interface {
	// GetServiceInfo returns the static service-info document for GET /.
	GetServiceInfo(ctx context.Context) models.ServiceInfo

	// GetHealthStatus returns a freshly computed liveness report for
	// GET /health. It performs no downstream probing.
	GetHealthStatus(ctx context.Context) models.HealthStatus
}
