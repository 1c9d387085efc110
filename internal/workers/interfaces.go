// Package workers runs the periodic background jobs of the client: the
// write queue drain and the lists index refresh.
//
// Every worker is started with Run and stopped with Stop. Workers groups
// several of them so the client can manage them as one.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Run must not block: implementations spawn their own goroutine and return.
// Stop cancels that goroutine and blocks until it has exited.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    // start background processing
//	}
//
//	func (w *MyWorker) Stop() {}
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// Job is one tick of a periodic worker.
type Job func(ctx context.Context) error
