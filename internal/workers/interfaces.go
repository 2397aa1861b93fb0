// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs every
// configured worker until the application shuts down.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled. Returning a non-nil error stops every
// other worker of the same [Workers] aggregate.
type Worker interface {
	Run(ctx context.Context) error
}
