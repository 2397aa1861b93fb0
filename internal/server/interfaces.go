package server

import "context"

// Server defines the lifecycle contract for transport servers managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled or
	// the listener fails. A cancelled ctx triggers a graceful shutdown and
	// is not reported as an error.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
