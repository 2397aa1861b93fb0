// Package server wires and runs the HTTP transport of the contacts API.
//
// It owns the server lifecycle: startup, serving until the caller's context
// is cancelled, and graceful shutdown with a bounded grace period.
package server
