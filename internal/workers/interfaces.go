// Package workers runs the background jobs of the blob store server.
//
// Each Worker blocks until its context is cancelled. The Workers aggregate
// starts them together and waits for all of them to return.
package workers

import "context"

// Worker is a long-running background job. Run blocks until ctx is done and
// returns nil on a clean stop.
type Worker interface {
	Run(ctx context.Context) error
}
