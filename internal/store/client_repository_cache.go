package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/models"
)

// cacheRepository is the SQLite-backed [CacheRepository] over the
// cache_entries table.
type cacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	return &cacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *cacheRepository) Get(ctx context.Context, key string) (models.CacheEntry, error) {
	log := logger.FromContext(ctx)

	var (
		entry     models.CacheEntry
		state     string
		fetchedAt int64
		updatedAt int64
	)
	err := c.DB.QueryRowContext(ctx, getCacheEntry, key).Scan(
		&entry.Key,
		&entry.Data,
		&state,
		&entry.Revision,
		&fetchedAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CacheEntry{}, ErrCacheEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.Get").
			Str("key", key).
			Msg("failed to scan cache entry")
		return models.CacheEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	entry.State = models.CacheState(state)
	entry.FetchedAt = fromMillis(fetchedAt)
	entry.UpdatedAt = fromMillis(updatedAt)

	return entry, nil
}

func (c *cacheRepository) Put(ctx context.Context, entry models.CacheEntry) error {
	_, err := c.exec(ctx, "cacheRepository.Put", putCacheEntry, entry.Key, entryArgs(entry)...)
	return err
}

func (c *cacheRepository) Refresh(ctx context.Context, entry models.CacheEntry) (bool, error) {
	affected, err := c.exec(ctx, "cacheRepository.Refresh", refreshCacheEntry, entry.Key, entryArgs(entry)...)
	return affected > 0, err
}

func (c *cacheRepository) MarkSynced(ctx context.Context, key string, data []byte, revision string, at time.Time) (bool, error) {
	affected, err := c.exec(ctx, "cacheRepository.MarkSynced", markCacheEntrySynced, key,
		revision, toMillis(at), key, data)
	return affected > 0, err
}

func (c *cacheRepository) Delete(ctx context.Context, key string) error {
	_, err := c.exec(ctx, "cacheRepository.Delete", deleteCacheEntry, key, key)
	return err
}

func (c *cacheRepository) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	affected, err := c.exec(ctx, "cacheRepository.DeleteByPrefix", deleteCacheEntriesByPrefix, prefix, prefix, prefix)
	return int(affected), err
}

func (c *cacheRepository) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, listCacheKeys, prefix, prefix)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.ListKeys").
			Str("prefix", prefix).
			Msg("failed to execute query for listing cache keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0, 16)
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			log.Err(err).
				Str("func", "cacheRepository.ListKeys").
				Msg("failed to scan cache key")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "cacheRepository.ListKeys").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}

func (c *cacheRepository) exec(ctx context.Context, funcName, query, key string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("key", key).
			Msg("failed to execute cache statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func entryArgs(entry models.CacheEntry) []any {
	state := entry.State
	if state == "" {
		state = models.CacheStateCached
	}

	updatedAt := entry.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	data := []byte(entry.Data)
	if data == nil {
		data = []byte{}
	}

	return []any{
		entry.Key,
		data,
		string(state),
		entry.Revision,
		toMillis(entry.FetchedAt),
		toMillis(updatedAt),
	}
}
