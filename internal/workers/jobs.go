package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/service"
	"github.com/MKhiriev/go-shop-sync/models"
)

// NewQueueWorker drains the write queue every interval.
func NewQueueWorker(queue service.WriteQueue, interval time.Duration, logger *logger.Logger) *Periodic {
	return NewPeriodic("write-queue", interval, DrainQueue(queue, logger), logger)
}

// DrainQueue returns a Job delivering the due entries of queue.
func DrainQueue(queue service.WriteQueue, logger *logger.Logger) Job {
	return func(ctx context.Context) error {
		delivered, err := queue.Drain(ctx)
		if err != nil {
			return fmt.Errorf("drain write queue: %w", err)
		}
		if delivered > 0 {
			logger.Info().Int("delivered", delivered).Msg("queued writes delivered")
		}
		return nil
	}
}

// NewIndexSyncWorker refreshes the cached lists index every interval and
// reports a changed index to onUpdate. onUpdate may be nil.
func NewIndexSyncWorker(lists service.ShoppingListProvider, interval time.Duration, onUpdate func(models.ListsIndex), logger *logger.Logger) *Periodic {
	return NewPeriodic("index-sync", interval, SyncIndex(lists, onUpdate), logger)
}

// SyncIndex returns a Job that reads the lists index and waits for its
// background sync, if the read offers one, to finish.
func SyncIndex(lists service.ShoppingListProvider, onUpdate func(models.ListsIndex)) Job {
	return func(ctx context.Context) error {
		result, err := lists.GetShoppingLists(ctx)
		if err != nil {
			return fmt.Errorf("read lists index: %w", err)
		}

		done := make(chan struct{})
		subscribed := result.Subscribe(func(index models.ListsIndex) {
			if onUpdate != nil {
				onUpdate(index)
			}
		}, func(syncing bool) {
			if !syncing {
				close(done)
			}
		})
		if !subscribed {
			return nil
		}

		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
