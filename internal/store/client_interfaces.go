package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shop-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CacheRepository is the local document cache. Keys are opaque strings;
// remote paths and local staging keys share the table and are told apart by
// prefix.
type CacheRepository interface {
	// Get returns ErrCacheEntryNotFound when key is absent.
	Get(ctx context.Context, key string) (models.CacheEntry, error)
	// Put inserts or replaces the entry unconditionally.
	Put(ctx context.Context, entry models.CacheEntry) error
	// Refresh stores a remotely fetched entry unless the cached one is
	// pending. It reports whether the entry was written.
	Refresh(ctx context.Context, entry models.CacheEntry) (bool, error)
	// MarkSynced flips a pending entry to cached if its data is still data.
	MarkSynced(ctx context.Context, key string, data []byte, revision string, at time.Time) (bool, error)
	Delete(ctx context.Context, key string) error
	// DeleteByPrefix removes every key starting with prefix and returns the
	// number of removed entries.
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}

// QueueRepository persists the write queue.
type QueueRepository interface {
	// Enqueue stores entry, dropping older entries for the same
	// collection and item.
	Enqueue(ctx context.Context, entry models.QueueEntry) error
	// Due returns up to limit entries whose next attempt is not after now,
	// oldest first.
	Due(ctx context.Context, now time.Time, limit int) ([]models.QueueEntry, error)
	MarkDone(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, attempts int, lastErr string, nextAttemptAt time.Time) error
	Count(ctx context.Context) (int, error)
}
