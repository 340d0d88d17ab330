// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the HTTP server lifecycle, including
// startup, signal handling, and graceful shutdown. Both the gateway and the
// resolver binaries run through this package; they differ only in the
// handlers and listen address they pass in.
package server
