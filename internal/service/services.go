package service

import (
	"github.com/MKhiriev/go-time-relay/internal/adapter"
	"github.com/MKhiriev/go-time-relay/internal/config"
	"github.com/MKhiriev/go-time-relay/internal/logger"
	"github.com/MKhiriev/go-time-relay/models"
)

// Services aggregates everything the HTTP handler needs for one tier. Both
// tiers share the same shape; they differ only in which TimeService backs
// GET /time.
type Services struct {
	TimeService    TimeService
	AppInfoService AppInfoService
}

// NewGatewayServices wires the service layer of the gateway tier: GET /time
// is answered by relaying to the resolver through resolverAdapter.
func NewGatewayServices(resolverAdapter adapter.ResolverAdapter, cfg config.GatewayConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(models.ServiceGateway, models.DescriptionGateway, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		TimeService:    NewRelayTimeService(resolverAdapter, logger),
		AppInfoService: appInfoService,
	}, nil
}

// NewResolverServices wires the service layer of the resolver tier: GET /time
// is answered locally from the alias table and the process clock.
func NewResolverServices(cfg config.ResolverConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(models.ServiceResolver, models.DescriptionResolver, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	timeService, err := NewTimeService(logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		TimeService:    timeService,
		AppInfoService: appInfoService,
	}, nil
}
