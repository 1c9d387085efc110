package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-shop-sync/internal/adapter"
	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/store"
	"github.com/MKhiriev/go-shop-sync/internal/utils"
	"github.com/MKhiriev/go-shop-sync/models"
)

// storageGateway is the SQLite-backed implementation of [StorageGateway].
//
// Cached copies of remote documents are keyed by their remote path; local
// files are keyed under localPrefix. A cached copy younger than freshTTL is
// served without a sync handle. A pending copy is never replaced by a
// background sync; its sync handle pushes it instead.
type storageGateway struct {
	cache  store.CacheRepository
	remote adapter.RemoteStore

	freshTTL    time.Duration
	localPrefix string

	tasks *Background
	now   func() time.Time

	logger *logger.Logger
}

// NewStorageGateway builds a [StorageGateway]. remote may be nil, in which
// case the gateway only ever serves the cache.
func NewStorageGateway(
	cache store.CacheRepository,
	remote adapter.RemoteStore,
	cfg config.Gateway,
	paths config.Paths,
	tasks *Background,
	logger *logger.Logger,
) StorageGateway {
	return &storageGateway{
		cache:       cache,
		remote:      remote,
		freshTTL:    cfg.FreshTTL,
		localPrefix: paths.LocalPrefix,
		tasks:       tasks,
		now:         time.Now,
		logger:      logger,
	}
}

func (g *storageGateway) Online() bool {
	return g.remote != nil && g.remote.Token() != ""
}

func (g *storageGateway) GetFile(ctx context.Context, path string) (models.ReadResult[[]byte], error) {
	entry, err := g.cache.Get(ctx, path)
	if errors.Is(err, store.ErrCacheEntryNotFound) {
		return g.fetchMissing(ctx, path), nil
	}
	if err != nil {
		return models.ReadResult[[]byte]{State: models.CacheStateMissing}, fmt.Errorf("read cache %s: %w", path, err)
	}

	result := models.ReadResult[[]byte]{Data: entry.Data, State: entry.State}
	if !g.Online() {
		return result, nil
	}

	switch {
	case entry.State == models.CacheStatePending:
		result.Sync = g.pushHandle(ctx, path, entry.Data)
	case g.isFresh(entry):
		result.State = models.CacheStateFresh
	default:
		result.Sync = g.refreshHandle(ctx, path, entry)
	}

	return result, nil
}

func (g *storageGateway) isFresh(entry models.CacheEntry) bool {
	if g.freshTTL <= 0 || entry.FetchedAt.IsZero() {
		return false
	}
	return g.now().Sub(entry.FetchedAt) < g.freshTTL
}

// fetchMissing reads a document the cache has never seen. A remote failure
// degrades to a missing result.
func (g *storageGateway) fetchMissing(ctx context.Context, path string) models.ReadResult[[]byte] {
	missing := models.ReadResult[[]byte]{State: models.CacheStateMissing}
	if !g.Online() {
		return missing
	}

	file, err := g.remote.GetFile(ctx, path)
	if errors.Is(err, adapter.ErrNotFound) {
		return missing
	}
	if err != nil {
		g.logger.Warn().Err(err).Str("func", "storageGateway.GetFile").Str("path", path).
			Msg("remote fetch of uncached file failed")
		return missing
	}

	if _, err = g.cache.Refresh(ctx, g.cacheEntry(path, file.Data)); err != nil {
		g.logger.Err(err).Str("func", "storageGateway.GetFile").Str("path", path).Msg("caching remote file failed")
	}

	return models.ReadResult[[]byte]{Data: file.Data, State: models.CacheStateFresh}
}

// refreshHandle fetches the remote copy in the background and reports it
// through onUpdate only when it differs from entry.
func (g *storageGateway) refreshHandle(ctx context.Context, path string, entry models.CacheEntry) models.SyncHandler[[]byte] {
	return func(onUpdate func([]byte), onSyncStatusChange func(bool)) {
		onSyncStatusChange(true)

		g.tasks.Go(ctx, "refresh "+path, func(ctx context.Context) error {
			defer onSyncStatusChange(false)

			updated, err := g.refresh(ctx, path, entry)
			if err != nil {
				return err
			}
			if updated != nil && onUpdate != nil {
				onUpdate(updated)
			}
			return nil
		})
	}
}

func (g *storageGateway) refresh(ctx context.Context, path string, entry models.CacheEntry) ([]byte, error) {
	file, err := g.remote.GetFile(ctx, path)
	if errors.Is(err, adapter.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: refresh %s: %w", ErrRemoteUnavailable, path, err)
	}

	written, err := g.cache.Refresh(ctx, g.cacheEntry(path, file.Data))
	if err != nil {
		return nil, fmt.Errorf("refresh cached %s: %w", path, err)
	}
	if !written || utils.Revision(file.Data) == utils.Revision(entry.Data) {
		return nil, nil
	}

	return file.Data, nil
}

// pushHandle re-sends a pending local write. The caller already shows data,
// so onUpdate is never called.
func (g *storageGateway) pushHandle(ctx context.Context, path string, data []byte) models.SyncHandler[[]byte] {
	return func(_ func([]byte), onSyncStatusChange func(bool)) {
		onSyncStatusChange(true)

		g.tasks.Go(ctx, "push pending "+path, func(ctx context.Context) error {
			defer onSyncStatusChange(false)
			return g.PushFile(ctx, path, data)
		})
	}
}

func (g *storageGateway) UpdateFile(ctx context.Context, path string, data any) error {
	raw, err := g.StageFile(ctx, path, data)
	if err != nil {
		return err
	}
	if !g.Online() {
		return nil
	}

	return g.PushFile(ctx, path, raw)
}

func (g *storageGateway) StageFile(ctx context.Context, path string, data any) ([]byte, error) {
	raw, err := marshalDocument(data)
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", path, err)
	}

	err = g.cache.Put(ctx, models.CacheEntry{
		Key:       path,
		Data:      raw,
		State:     models.CacheStatePending,
		UpdatedAt: g.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", path, err)
	}

	return raw, nil
}

func (g *storageGateway) PushFile(ctx context.Context, path string, data []byte) error {
	if !g.Online() {
		return fmt.Errorf("%w: no bearer token", ErrRemoteUnavailable)
	}

	file, err := g.remote.PutFile(ctx, path, data)
	if err != nil {
		return fmt.Errorf("%w: push %s: %w", ErrRemoteUnavailable, path, err)
	}

	revision := file.Revision
	if revision == "" {
		revision = utils.Revision(data)
	}

	synced, err := g.cache.MarkSynced(ctx, path, data, revision, g.now())
	if err != nil {
		return fmt.Errorf("mark %s synced: %w", path, err)
	}
	if !synced {
		g.logger.Debug().Str("func", "storageGateway.PushFile").Str("path", path).
			Msg("cached copy changed during push, left pending")
	}

	return nil
}

func (g *storageGateway) DeleteFile(ctx context.Context, path string) error {
	if err := g.cache.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete cached %s: %w", path, err)
	}
	if !g.Online() {
		return nil
	}

	err := g.remote.DeleteFile(ctx, path)
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: delete %s: %w", ErrRemoteUnavailable, path, err)
	}

	return nil
}

func (g *storageGateway) ForceRemoteFetch(ctx context.Context, path string) ([]byte, error) {
	if !g.Online() {
		return nil, fmt.Errorf("%w: no bearer token", ErrRemoteUnavailable)
	}

	file, err := g.remote.GetFile(ctx, path)
	if errors.Is(err, adapter.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", ErrRemoteUnavailable, path, err)
	}

	if err = g.cache.Put(ctx, g.cacheEntry(path, file.Data)); err != nil {
		return nil, fmt.Errorf("cache fetched %s: %w", path, err)
	}

	return file.Data, nil
}

func (g *storageGateway) cacheEntry(path string, data []byte) models.CacheEntry {
	now := g.now()
	return models.CacheEntry{
		Key:       path,
		Data:      data,
		State:     models.CacheStateCached,
		Revision:  utils.Revision(data),
		FetchedAt: now,
		UpdatedAt: now,
	}
}

// ── local staging namespace ──────────────────────────────────────────────────

func (g *storageGateway) checkLocal(key string) error {
	if !strings.HasPrefix(key, g.localPrefix) {
		return fmt.Errorf("%w: %q", ErrNotLocalKey, key)
	}
	return nil
}

func (g *storageGateway) GetLocalFile(ctx context.Context, key string) ([]byte, error) {
	if err := g.checkLocal(key); err != nil {
		return nil, err
	}

	entry, err := g.cache.Get(ctx, key)
	if errors.Is(err, store.ErrCacheEntryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read local %s: %w", key, err)
	}

	return entry.Data, nil
}

func (g *storageGateway) PutLocalFile(ctx context.Context, key string, data any) error {
	if err := g.checkLocal(key); err != nil {
		return err
	}

	raw, err := marshalDocument(data)
	if err != nil {
		return fmt.Errorf("write local %s: %w", key, err)
	}

	err = g.cache.Put(ctx, models.CacheEntry{
		Key:       key,
		Data:      raw,
		State:     models.CacheStateCached,
		UpdatedAt: g.now(),
	})
	if err != nil {
		return fmt.Errorf("write local %s: %w", key, err)
	}

	return nil
}

func (g *storageGateway) DeleteLocalFile(ctx context.Context, key string) error {
	if err := g.checkLocal(key); err != nil {
		return err
	}
	if err := g.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete local %s: %w", key, err)
	}
	return nil
}

func (g *storageGateway) ClearLocalCache(ctx context.Context, prefix string) (int, error) {
	if err := g.checkLocal(prefix); err != nil {
		return 0, err
	}

	removed, err := g.cache.DeleteByPrefix(ctx, prefix)
	if err != nil {
		return 0, fmt.Errorf("clear local cache %q: %w", prefix, err)
	}

	g.logger.Info().Str("prefix", prefix).Int("removed", removed).Msg("local cache cleared")
	return removed, nil
}

func (g *storageGateway) CacheInfo(ctx context.Context, prefix string) (models.CacheInfo, error) {
	keys, err := g.cache.ListKeys(ctx, prefix)
	if err != nil {
		return models.CacheInfo{}, fmt.Errorf("list cache keys %q: %w", prefix, err)
	}

	return models.CacheInfo{
		HasCache:  len(keys) > 0,
		KeysCount: len(keys),
		Keys:      keys,
	}, nil
}
