package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-time-relay/internal/logger"
	"github.com/MKhiriev/go-time-relay/models"
)

type timeService struct {
	zones map[string]*time.Location
	now   func() time.Time

	logger *logger.Logger
}

// NewTimeService constructs the resolver-side [TimeService]. It resolves the
// full alias table to time.Location values up front and fails if any
// canonical zone cannot be loaded.
func NewTimeService(logger *logger.Logger) (TimeService, error) {
	zones, err := loadZones()
	if err != nil {
		return nil, err
	}

	return &timeService{
		zones:  zones,
		now:    time.Now,
		logger: logger,
	}, nil
}

// CurrentTime implements [TimeService]. The requested name is looked up in
// the alias table as-is; an empty or unrecognized name resolves to UTC and
// still returns success. The response echoes the name the lookup ran on, not
// the canonical zone it resolved to.
func (s *timeService) CurrentTime(ctx context.Context, timezone string, requestID string) (models.TimeResponse, error) {
	log := logger.FromContext(ctx)

	requested := timezone
	if requested == "" {
		requested = defaultZone
	}

	location, found := s.zones[requested]
	if !found {
		log.Info().
			Str("timezone", requested).
			Msg("unsupported timezone, defaulting to UTC")
		location = s.zones[defaultZone]
	}

	response := models.TimeResponse{
		Timestamp: models.FormatTimestamp(s.now().In(location)),
		Timezone:  requested,
		RequestID: requestID,
		Source:    models.SourceResolver,
	}

	log.Info().
		Str("timezone", requested).
		Str("zone", location.String()).
		Str("timestamp", response.Timestamp).
		Msg("resolved current time")

	return response, nil
}
