// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body returned with 5xx statuses when the gateway
// cannot obtain a complete TimeResponse from the resolver. A failed request
// produces either this document or a full [TimeResponse], never a mix of
// the two.
type ErrorResponse struct {
	// Error is a stable error kind suitable for client-side matching and
	// alerting, not a free-form wrapped message chain.
	Error string `json:"error"`

	// RequestID is the correlation identifier of the failed request so the
	// client-visible error can be matched with both tiers' logs.
	RequestID string `json:"request_id"`

	// Timestamp is the instant the error was produced, in the shared wire
	// format.
	Timestamp string `json:"timestamp"`
}
