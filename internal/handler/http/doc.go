// Package http implements the HTTP transport layer shared by both tiers.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as correlation ids, access logging,
// request metrics, and response compression are handled in this package
// before requests are delegated to the service layer. The gateway and the
// resolver serve the same route surface; which tier a process is belongs to
// is decided entirely by the service layer injected into the Handler.
package http
