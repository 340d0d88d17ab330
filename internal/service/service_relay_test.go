// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-time-relay/internal/adapter"
	"github.com/MKhiriev/go-time-relay/internal/logger"
	"github.com/MKhiriev/go-time-relay/internal/mock"
	"github.com/MKhiriev/go-time-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestRelaySvc — хелпер для создания relayTimeService с моком адаптера
func newTestRelaySvc(t *testing.T, ctrl *gomock.Controller) (*relayTimeService, *mock.MockResolverAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockResolverAdapter(ctrl)

	svc := NewRelayTimeService(mockAdapter, logger.Nop()).(*relayTimeService)

	return svc, mockAdapter
}

// ── CurrentTime: success ─────────────────────────────────────────────────────

func TestRelayCurrentTime_RewritesSourceOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestRelaySvc(t, ctrl)
	ctx := context.Background()

	resolved := models.TimeResponse{
		Timestamp: "2026-08-25T14:00:00.123+02:00",
		Timezone:  "CET",
		RequestID: "11111111-2222-4333-8444-555555555555",
		Source:    models.SourceResolver,
	}
	mockAdapter.EXPECT().
		GetTime(ctx, "CET", resolved.RequestID).
		Return(resolved, nil)

	got, err := svc.CurrentTime(ctx, "CET", resolved.RequestID)

	require.NoError(t, err)
	assert.Equal(t, models.SourceRelayed, got.Source)
	assert.Equal(t, resolved.Timestamp, got.Timestamp, "timestamp must be preserved verbatim")
	assert.Equal(t, resolved.Timezone, got.Timezone, "timezone must be preserved verbatim")
	assert.Equal(t, resolved.RequestID, got.RequestID, "request id must be preserved verbatim")
}

func TestRelayCurrentTime_ForwardsArgumentsToAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestRelaySvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		GetTime(ctx, "US/Pacific", "gateway-minted-id").
		Return(models.TimeResponse{Source: models.SourceResolver, RequestID: "gateway-minted-id"}, nil)

	_, err := svc.CurrentTime(ctx, "US/Pacific", "gateway-minted-id")

	require.NoError(t, err)
}

func TestRelayCurrentTime_KeepsOwnIDWhenResolverOmitsIt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestRelaySvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		GetTime(ctx, "UTC", "gateway-minted-id").
		Return(models.TimeResponse{Timezone: "UTC", Source: models.SourceResolver}, nil)

	got, err := svc.CurrentTime(ctx, "UTC", "gateway-minted-id")

	require.NoError(t, err)
	assert.Equal(t, "gateway-minted-id", got.RequestID)
}

// ── CurrentTime: failures ────────────────────────────────────────────────────

func TestRelayCurrentTime_AdapterErrorsPassThrough(t *testing.T) {
	tests := []struct {
		name        string
		adapterErr  error
		sentinelErr error
	}{
		{
			name:        "resolver unavailable",
			adapterErr:  fmt.Errorf("%w: connection refused", adapter.ErrResolverUnavailable),
			sentinelErr: adapter.ErrResolverUnavailable,
		},
		{
			name:        "resolver failed",
			adapterErr:  fmt.Errorf("%w: http 500: boom", adapter.ErrResolverFailed),
			sentinelErr: adapter.ErrResolverFailed,
		},
		{
			name:        "invalid response",
			adapterErr:  fmt.Errorf("%w: unexpected end of JSON input", adapter.ErrInvalidResponse),
			sentinelErr: adapter.ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockAdapter := newTestRelaySvc(t, ctrl)
			ctx := context.Background()

			mockAdapter.EXPECT().
				GetTime(ctx, "UTC", "some-id").
				Return(models.TimeResponse{}, tt.adapterErr)

			got, err := svc.CurrentTime(ctx, "UTC", "some-id")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinelErr, "sentinel must survive the relay for errors.Is mapping")
			assert.Equal(t, models.TimeResponse{}, got, "no partial data on failure")
		})
	}
}
