package handler

import (
	"github.com/MKhiriev/go-time-relay/internal/config"
	"github.com/MKhiriev/go-time-relay/internal/handler/http"
	"github.com/MKhiriev/go-time-relay/internal/logger"
	"github.com/MKhiriev/go-time-relay/internal/metrics"
	"github.com/MKhiriev/go-time-relay/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, metrics, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
