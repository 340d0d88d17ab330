package service

import (
	"context"

	"github.com/MKhiriev/go-time-relay/internal/adapter"
	"github.com/MKhiriev/go-time-relay/internal/logger"
	"github.com/MKhiriev/go-time-relay/models"
)

// relayTimeService is the gateway-side implementation of [TimeService].
// It obtains the answer from the resolver and re-attributes it as relayed,
// leaving timestamp, timezone and request id untouched.
type relayTimeService struct {
	resolver adapter.ResolverAdapter

	logger *logger.Logger
}

// NewRelayTimeService constructs the gateway-side [TimeService] on top of a
// [adapter.ResolverAdapter].
func NewRelayTimeService(resolver adapter.ResolverAdapter, logger *logger.Logger) TimeService {
	return &relayTimeService{
		resolver: resolver,
		logger:   logger,
	}
}

// CurrentTime implements [TimeService]. It issues exactly one downstream call
// with no retry; a failed or timed-out call fails the inbound request. The
// adapter's sentinel errors pass through unchanged so the handler can map
// them to status codes with [errors.Is].
func (s *relayTimeService) CurrentTime(ctx context.Context, timezone string, requestID string) (models.TimeResponse, error) {
	log := logger.FromContext(ctx)

	log.Info().Str("timezone", timezone).Msg("forwarding time request to resolver")

	resolved, err := s.resolver.GetTime(ctx, timezone, requestID)
	if err != nil {
		return models.TimeResponse{}, err
	}

	resolved.Source = models.SourceRelayed
	if resolved.RequestID == "" {
		// The resolver is expected to echo the forwarded id; keep our own if
		// the response came back without one.
		resolved.RequestID = requestID
	}

	log.Info().
		Str("timestamp", resolved.Timestamp).
		Str("timezone", resolved.Timezone).
		Msg("received response from resolver")

	return resolved, nil
}
