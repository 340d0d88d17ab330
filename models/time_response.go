// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TimestampLayout is the wire format shared by every timestamp the service
// pair emits: ISO-8601 with millisecond precision and an explicit UTC offset
// ("Z" when the resolved zone is UTC).
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Attribution tags carried in [TimeResponse.Source].
const (
	// SourceResolver marks a response answered directly by the resolver tier.
	SourceResolver = "api2"

	// SourceRelayed marks a response that was obtained from the resolver and
	// relayed through the gateway tier.
	SourceRelayed = "api1->api2"
)

// FormatTimestamp renders t in the [TimestampLayout] wire format.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// TimeResponse is the single data transfer entity of the time pipeline.
// The resolver constructs it; the gateway relays it and rewrites only the
// attribution tag, leaving every other field untouched.
type TimeResponse struct {
	// Timestamp is the current instant rendered in the resolved zone using
	// [TimestampLayout].
	Timestamp string `json:"timestamp"`

	// Timezone is the symbolic zone name exactly as the client requested it,
	// echoed verbatim even when resolution fell back to UTC. An omitted
	// parameter is reported as "UTC".
	Timezone string `json:"timezone"`

	// RequestID is the correlation identifier in canonical UUID-v4 text form.
	// It stays stable across the gateway -> resolver round trip.
	RequestID string `json:"request_id"`

	// Source attributes the answer: [SourceResolver] when served directly,
	// [SourceRelayed] when the gateway forwarded it.
	Source string `json:"source"`
}
