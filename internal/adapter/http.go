package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-time-relay/internal/config"
	"github.com/MKhiriev/go-time-relay/internal/logger"
	"github.com/MKhiriev/go-time-relay/internal/metrics"
	"github.com/MKhiriev/go-time-relay/internal/utils"
	"github.com/MKhiriev/go-time-relay/models"
)

type httpResolverAdapter struct {
	client *utils.HTTPClient

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewHTTPResolverAdapter constructs an HTTP/REST implementation of
// [ResolverAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. A non-positive request timeout falls
// back to [config.DefaultAdapterRequestTimeout].
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPResolverAdapter(adapterCfg config.Adapter, m *metrics.Metrics, logger *logger.Logger) (ResolverAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultAdapterRequestTimeout
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpResolverAdapter{client: client, metrics: m, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetTime implements [ResolverAdapter]. It GETs the resolver's /time endpoint
// with requestID in the correlation header and, when timezone is non-empty,
// the timezone query parameter. The call duration is observed on the outbound
// request histogram whether or not the call succeeds.
func (h *httpResolverAdapter) GetTime(ctx context.Context, timezone string, requestID string) (models.TimeResponse, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader(models.HeaderRequestID, requestID)
	if timezone != "" {
		req.SetQueryParam(models.QueryParamTimezone, timezone)
	}

	start := time.Now()
	resp, err := req.Get("/time")
	h.metrics.ObserveResolverRequest(time.Since(start))

	if err != nil {
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("resolver request failed")
		return models.TimeResponse{}, fmt.Errorf("%w: %s", ErrResolverUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("resolver returned error status")
		return models.TimeResponse{}, err
	}

	var timeResponse models.TimeResponse
	if err = json.Unmarshal(resp.Body(), &timeResponse); err != nil {
		return models.TimeResponse{}, fmt.Errorf("%w: %s", ErrInvalidResponse, err)
	}

	return timeResponse, nil
}
