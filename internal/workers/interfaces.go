// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations must return promptly and keep working in their own
// goroutine until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Sweeper removes entries that expired at or before now and reports how many
// were removed. The in-memory session store implements it.
type Sweeper interface {
	Sweep(now time.Time) int
}
