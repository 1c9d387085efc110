// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/models"
)

// remoteListProvider is the remote-backed [RemoteListProvider].
//
// It is its own [ListPersistence]: the embedded listProvider runs the shared
// list operations against the methods below. Content edits go through the
// write queue; index writes and list creation go straight to the gateway.
//
// The lists index is read-modify-written as a whole without locking, so two
// repairs racing on different lists can lose one of the updates. The next
// sync of the losing list repairs it again.
type remoteListProvider struct {
	*listProvider

	gateway StorageGateway
	queue   WriteQueue
	local   ListPersistence
	paths   listPaths
	tasks   *Background
}

func NewRemoteListProvider(
	gateway StorageGateway,
	queue WriteQueue,
	paths config.Paths,
	tasks *Background,
	logger *logger.Logger,
) RemoteListProvider {
	p := &remoteListProvider{
		gateway: gateway,
		queue:   queue,
		paths:   newListPaths(paths),
		tasks:   tasks,
	}
	p.listProvider = newListProvider(p, logger)
	p.local = &localListPersistence{gateway: gateway, paths: p.paths}

	return p
}

// ── reads with background sync ───────────────────────────────────────────────

// GetShoppingLists returns the cached index. A non-empty index comes with a
// sync handle that reports a newer remote index through onUpdate.
func (p *remoteListProvider) GetShoppingLists(ctx context.Context) (models.ReadResult[models.ListsIndex], error) {
	result, err := p.listProvider.GetShoppingLists(ctx)
	if err != nil || len(result.Data) == 0 {
		return result, err
	}

	result.Sync = func(onUpdate func(models.ListsIndex), onSyncStatusChange func(bool)) {
		onSyncStatusChange(true)
		p.tasks.Go(ctx, "sync lists index", func(ctx context.Context) error {
			p.syncListsIndex(ctx, onUpdate, onSyncStatusChange)
			return nil
		})
	}

	return result, nil
}

func (p *remoteListProvider) syncListsIndex(ctx context.Context, onUpdate func(models.ListsIndex), onSyncStatusChange func(bool)) {
	log := p.logger.With().Str("func", "remoteListProvider.syncListsIndex").Logger()

	result, err := p.gateway.GetFile(ctx, p.paths.remoteIndex())
	if err != nil {
		log.Err(err).Msg("lists index sync failed")
		onSyncStatusChange(false)
		return
	}

	subscribed := result.Subscribe(func(data []byte) {
		lists, err := decodeListsProfile(data)
		if err != nil {
			log.Err(err).Msg("remote lists index is unreadable")
			return
		}
		if onUpdate != nil {
			onUpdate(lists)
		}
	}, onSyncStatusChange)

	if !subscribed {
		onSyncStatusChange(false)
	}
}

// GetShoppingListData returns the cached content of a list. Existing content
// comes with a sync handle; a newer remote copy repairs the index summary
// before it reaches onUpdate.
func (p *remoteListProvider) GetShoppingListData(ctx context.Context, listID string) (models.ReadResult[*models.ListContent], error) {
	result, err := p.listProvider.GetShoppingListData(ctx, listID)
	if err != nil || result.Data == nil {
		return result, err
	}

	result.Sync = func(onUpdate func(*models.ListContent), onSyncStatusChange func(bool)) {
		onSyncStatusChange(true)
		p.tasks.Go(ctx, "sync list "+listID, func(ctx context.Context) error {
			p.syncList(ctx, listID, onUpdate, onSyncStatusChange)
			return nil
		})
	}

	return result, nil
}

func (p *remoteListProvider) syncList(ctx context.Context, listID string, onUpdate func(*models.ListContent), onSyncStatusChange func(bool)) {
	log := p.logger.With().Str("func", "remoteListProvider.syncList").Str("list_id", listID).Logger()

	result, err := p.gateway.GetFile(ctx, p.paths.remoteList(listID))
	if err != nil {
		log.Err(err).Msg("list sync failed")
		onSyncStatusChange(false)
		return
	}

	subscribed := result.Subscribe(func(data []byte) {
		content, err := decodeListContent(data)
		if err != nil || content == nil {
			log.Err(err).Msg("remote list content is unreadable")
			return
		}

		if err = p.repairMetadata(ctx, listID, content); err != nil {
			log.Err(err).Msg("metadata repair after remote update failed")
		}

		if onUpdate != nil {
			onUpdate(content)
		}
	}, onSyncStatusChange)

	if !subscribed {
		onSyncStatusChange(false)
	}
}

// repairMetadata rewrites the summary of listID from content. A list without
// a summary is left alone.
func (p *remoteListProvider) repairMetadata(ctx context.Context, listID string, content *models.ListContent) error {
	metadata, _, err := p.GetListsDetails(ctx)
	if err != nil {
		return fmt.Errorf("get lists details: %w", err)
	}

	summary, ok := metadata.Lists[listID]
	if !ok {
		return nil
	}
	metadata.Lists[listID] = repairSummary(summary, content, p.now())

	if err = p.SaveListsDetails(ctx, metadata); err != nil {
		return fmt.Errorf("save lists details: %w", err)
	}
	return nil
}

// ── ListPersistence ──────────────────────────────────────────────────────────

func (p *remoteListProvider) GetListsDetails(ctx context.Context) (models.ListsMetadata, models.CacheState, error) {
	result, err := p.gateway.GetFile(ctx, p.paths.remoteIndex())
	if err != nil {
		return models.ListsMetadata{Lists: models.ListsIndex{}}, models.CacheStateMissing, err
	}

	metadata, err := decodeRemoteMetadata(result.Data)
	if err != nil {
		return models.ListsMetadata{Lists: models.ListsIndex{}}, models.CacheStateMissing, err
	}

	return metadata, result.State, nil
}

// SaveListsDetails stages the index in the cache and pushes it in the
// background.
func (p *remoteListProvider) SaveListsDetails(ctx context.Context, metadata models.ListsMetadata) error {
	path := p.paths.remoteIndex()

	raw, err := p.gateway.StageFile(ctx, path, toProfile(metadata))
	if err != nil {
		return err
	}

	if p.gateway.Online() {
		p.tasks.Go(ctx, "push lists index", func(ctx context.Context) error {
			return p.gateway.PushFile(ctx, path, raw)
		})
	}

	return nil
}

func (p *remoteListProvider) GetListData(ctx context.Context, listID string) (*models.ListContent, models.CacheState, error) {
	result, err := p.gateway.GetFile(ctx, p.paths.remoteList(listID))
	if err != nil {
		return nil, models.CacheStateMissing, err
	}

	content, err := decodeListContent(result.Data)
	if err != nil {
		return nil, models.CacheStateMissing, fmt.Errorf("list %s: %w", listID, err)
	}

	return content, result.State, nil
}

// SaveListData stages content in the cache and hands it to the write queue.
// The index is not touched.
func (p *remoteListProvider) SaveListData(ctx context.Context, listID string, data *models.ListContent) error {
	if err := validateListID(listID); err != nil {
		return err
	}

	raw, err := p.gateway.StageFile(ctx, p.paths.remoteList(listID), data)
	if err != nil {
		return err
	}

	return p.queue.Enqueue(ctx, CollectionShoppingLists, listID, raw)
}

func (p *remoteListProvider) CreateListData(ctx context.Context, listID string, data *models.ListContent) error {
	if err := validateListID(listID); err != nil {
		return err
	}
	return p.gateway.UpdateFile(ctx, p.paths.remoteList(listID), data)
}

func (p *remoteListProvider) DeleteListData(ctx context.Context, listID string) error {
	if err := validateListID(listID); err != nil {
		return err
	}
	return p.gateway.DeleteFile(ctx, p.paths.remoteList(listID))
}

// ── forced refresh and merge ─────────────────────────────────────────────────

func (p *remoteListProvider) ForceRefreshListData(ctx context.Context, listID string) (*models.ListContent, error) {
	if err := validateListID(listID); err != nil {
		return nil, err
	}
	log := p.logger.With().Str("func", "remoteListProvider.ForceRefreshListData").Str("list_id", listID).Logger()

	data, err := p.gateway.ForceRemoteFetch(ctx, p.paths.remoteList(listID))
	if err != nil {
		log.Err(err).Msg("force refresh failed")
		return nil, fmt.Errorf("force refresh list %s: %w", listID, err)
	}
	if data == nil {
		log.Info().Msg("list has no remote data")
		return nil, nil
	}

	content, err := decodeListContent(data)
	if err != nil {
		return nil, fmt.Errorf("force refresh list %s: %w", listID, err)
	}
	if content == nil {
		return nil, nil
	}

	if err = p.repairMetadata(ctx, listID, content); err != nil {
		log.Err(err).Msg("metadata repair after force refresh failed")
	}

	return content, nil
}

// MergeLocalListsWithRemote promotes the local staging lists. The local index
// replaces the remote one and is pushed before any content; the staging
// namespace is cleared only after every push was issued. A failure aborts
// the merge without rolling back what was already pushed.
func (p *remoteListProvider) MergeLocalListsWithRemote(ctx context.Context) (models.MergeResult, error) {
	log := p.logger.With().Str("func", "remoteListProvider.MergeLocalListsWithRemote").Logger()

	local, _, err := p.local.GetListsDetails(ctx)
	if err != nil {
		return p.mergeFailed(log, fmt.Errorf("read local index: %w", err))
	}
	if len(local.Lists) == 0 {
		log.Debug().Msg("no local lists to merge")
		return models.MergeResult{Success: true}, nil
	}

	if err = p.gateway.UpdateFile(ctx, p.paths.remoteIndex(), toProfile(local)); err != nil {
		return p.mergeFailed(log, fmt.Errorf("push lists index: %w", err))
	}

	ids := make([]string, 0, len(local.Lists))
	for id := range local.Lists {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	merged := 0
	for _, id := range ids {
		content, _, err := p.local.GetListData(ctx, id)
		if err != nil {
			return p.mergeFailed(log, fmt.Errorf("read local list %s: %w", id, err))
		}
		if content == nil {
			continue
		}

		if err = p.SaveListData(ctx, id, content); err != nil {
			return p.mergeFailed(log, fmt.Errorf("push list %s: %w", id, err))
		}
		merged++
	}

	if _, err = p.gateway.ClearLocalCache(ctx, p.paths.localPrefix()); err != nil {
		return p.mergeFailed(log, fmt.Errorf("clear local lists: %w", err))
	}

	log.Info().Int("lists", len(ids)).Int("contents", merged).Msg("local lists merged")
	return models.MergeResult{Success: true, MergedLists: merged}, nil
}

func (p *remoteListProvider) mergeFailed(log zerolog.Logger, err error) (models.MergeResult, error) {
	log.Err(err).Msg("merge failed")
	return models.MergeResult{Success: false}, fmt.Errorf("%w: %w", ErrMergeFailed, err)
}
