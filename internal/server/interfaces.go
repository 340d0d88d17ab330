package server

// Server defines the common lifecycle contract for transport servers managed
// by this package. The gateway and resolver binaries both run their HTTP
// listener through it.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
