// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the resolver service.
//
// The primary abstraction is [ResolverAdapter], which decouples the gateway's
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPResolverAdapter]).
//
// Error values defined in errors.go are mapped from transport failures and
// HTTP status codes so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrResolverUnavailable] when the resolver cannot be
// reached, [ErrResolverFailed] for a non-2xx upstream response).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-time-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/resolver_adapter_mock.go -package=mock

// ResolverAdapter defines transport-agnostic communication with the resolver
// service. Implementations are responsible for serialisation, correlation
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ResolverAdapter interface {
	// GetTime requests the current time for timezone from the resolver.
	// requestID is forwarded verbatim in the correlation header so both tiers
	// log under the same identifier. An empty timezone is forwarded as no
	// timezone parameter at all, leaving the default to the resolver.
	//
	// Returns [ErrResolverUnavailable] (wrapped) if the resolver cannot be
	// reached or the request times out, [ErrResolverFailed] (wrapped) if the
	// resolver responds with a non-2xx status, and [ErrInvalidResponse]
	// (wrapped) if the response body cannot be decoded.
	GetTime(ctx context.Context, timezone string, requestID string) (models.TimeResponse, error)
}
