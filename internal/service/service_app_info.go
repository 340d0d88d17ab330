package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-time-relay/internal/config"
	"github.com/MKhiriev/go-time-relay/internal/logger"
	"github.com/MKhiriev/go-time-relay/models"
)

type appInfoService struct {
	serviceInfo models.ServiceInfo
	now         func() time.Time

	logger *logger.Logger
}

// NewAppInfoService constructs the [AppInfoService] for one tier.
// serviceName and description identify the tier (e.g. [models.ServiceGateway]
// with [models.DescriptionGateway]); the version comes from cfg.
//
// Returns [ErrVersionIsNotSpecified] if cfg.Version is empty.
func NewAppInfoService(serviceName string, description string, cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		serviceInfo: models.ServiceInfo{
			Name:        serviceName,
			Version:     cfg.Version,
			Description: description,
		},
		now:    time.Now,
		logger: logger,
	}, nil
}

// GetServiceInfo implements [AppInfoService]. The document is assembled once
// at construction and returned as-is.
func (s *appInfoService) GetServiceInfo(ctx context.Context) models.ServiceInfo {
	return s.serviceInfo
}

// GetHealthStatus implements [AppInfoService]. The report is recomputed on
// every call with a fresh timestamp and involves no downstream probing, so it
// stays side-effect-free for orchestration to poll.
func (s *appInfoService) GetHealthStatus(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{
		Status:    models.StatusHealthy,
		Service:   s.serviceInfo.Name,
		Timestamp: models.FormatTimestamp(s.now().UTC()),
	}
}
