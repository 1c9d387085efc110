package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/store"
	"github.com/MKhiriev/go-shop-sync/internal/utils"
	"github.com/MKhiriev/go-shop-sync/models"
)

const (
	defaultBackoffBase = time.Second
	defaultBackoffCap  = 5 * time.Minute
)

// writeQueue persists writes in the local database and delivers them through
// the gateway. A failed delivery is retried with capped exponential backoff
// until maxAttempts is reached, after which the entry is dropped.
type writeQueue struct {
	repo    store.QueueRepository
	gateway StorageGateway
	paths   listPaths
	ids     *utils.UUIDGenerator

	maxAttempts int
	batchSize   int
	backoffBase time.Duration
	backoffCap  time.Duration

	now    func() time.Time
	logger *logger.Logger
}

func NewWriteQueue(
	repo store.QueueRepository,
	gateway StorageGateway,
	workers config.ClientWorkers,
	paths config.Paths,
	logger *logger.Logger,
) WriteQueue {
	return &writeQueue{
		repo:        repo,
		gateway:     gateway,
		paths:       newListPaths(paths),
		ids:         utils.NewUUIDGenerator(),
		maxAttempts: workers.MaxAttempts,
		batchSize:   workers.BatchSize,
		backoffBase: defaultBackoffBase,
		backoffCap:  defaultBackoffCap,
		now:         time.Now,
		logger:      logger,
	}
}

func (q *writeQueue) Enqueue(ctx context.Context, collection, itemID string, payload any) error {
	if _, err := q.paths.resolve(collection, itemID); err != nil {
		return err
	}

	raw, err := marshalDocument(payload)
	if err != nil {
		return fmt.Errorf("enqueue %s/%s: %w", collection, itemID, err)
	}

	now := q.now()
	entry := models.QueueEntry{
		ID:            q.ids.Generate(),
		Collection:    collection,
		ItemID:        itemID,
		Payload:       raw,
		CreatedAt:     now,
		NextAttemptAt: now,
	}
	if err = q.repo.Enqueue(ctx, entry); err != nil {
		return fmt.Errorf("enqueue %s/%s: %w", collection, itemID, err)
	}

	q.logger.Debug().Str("collection", collection).Str("item_id", itemID).Str("entry_id", entry.ID).
		Msg("write enqueued")
	return nil
}

func (q *writeQueue) Drain(ctx context.Context) (int, error) {
	if !q.gateway.Online() {
		return 0, nil
	}

	due, err := q.repo.Due(ctx, q.now(), q.batchSize)
	if err != nil {
		return 0, fmt.Errorf("load due queue entries: %w", err)
	}

	delivered := 0
	for _, entry := range due {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return delivered, ctxErr
		}

		ok, deliverErr := q.deliver(ctx, entry)
		if deliverErr != nil {
			return delivered, deliverErr
		}
		if ok {
			delivered++
		}
	}

	return delivered, nil
}

// deliver pushes one entry. The returned error is a queue bookkeeping
// failure; a failed push only reschedules the entry.
func (q *writeQueue) deliver(ctx context.Context, entry models.QueueEntry) (bool, error) {
	log := q.logger.With().
		Str("entry_id", entry.ID).
		Str("collection", entry.Collection).
		Str("item_id", entry.ItemID).
		Logger()

	path, err := q.paths.resolve(entry.Collection, entry.ItemID)
	if err != nil {
		log.Err(err).Msg("dropping undeliverable queue entry")
		return false, q.markDone(ctx, entry.ID)
	}

	pushErr := q.gateway.PushFile(ctx, path, entry.Payload)
	if pushErr == nil {
		return true, q.markDone(ctx, entry.ID)
	}

	attempts := entry.Attempts + 1
	if attempts >= q.maxAttempts {
		log.Err(pushErr).Int("attempts", attempts).Msg("giving up on queue entry")
		return false, q.markDone(ctx, entry.ID)
	}

	next := q.now().Add(q.backoff(attempts))
	log.Warn().Err(pushErr).Int("attempts", attempts).Time("next_attempt_at", next).Msg("queue delivery failed")

	if err = q.repo.MarkFailed(ctx, entry.ID, attempts, pushErr.Error(), next); err != nil {
		return false, fmt.Errorf("reschedule queue entry %s: %w", entry.ID, err)
	}
	return false, nil
}

func (q *writeQueue) markDone(ctx context.Context, id string) error {
	if err := q.repo.MarkDone(ctx, id); err != nil {
		return fmt.Errorf("remove queue entry %s: %w", id, err)
	}
	return nil
}

// backoff returns the delay before the given attempt: base, 2*base, 4*base
// and so on, never above backoffCap.
func (q *writeQueue) backoff(attempts int) time.Duration {
	b := retry.WithCappedDuration(q.backoffCap, retry.NewExponential(q.backoffBase))

	var delay time.Duration
	for i := 0; i < attempts; i++ {
		delay, _ = b.Next()
	}
	return delay
}

func (q *writeQueue) Pending(ctx context.Context) (int, error) {
	count, err := q.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count queue entries: %w", err)
	}
	return count, nil
}
