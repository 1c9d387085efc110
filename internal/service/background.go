package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
)

// Background runs fire-and-forget tasks on their own goroutines. A task is
// detached from the caller's cancellation; the error it returns is logged
// and dropped.
type Background struct {
	wg     sync.WaitGroup
	logger *logger.Logger
}

func NewBackground(logger *logger.Logger) *Background {
	return &Background{logger: logger}
}

// Go starts task under name.
func (b *Background) Go(ctx context.Context, name string, task func(ctx context.Context) error) {
	ctx = context.WithoutCancel(ctx)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		if err := task(ctx); err != nil {
			b.logger.Err(err).Str("task", name).Msg("background task failed")
		}
	}()
}

// Wait blocks until every started task has returned.
func (b *Background) Wait() {
	b.wg.Wait()
}
