package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/models"
)

// localListPersistence keeps lists in the local staging namespace. It is
// used before the client has a bearer token; the remote provider merges its
// content once one is available.
type localListPersistence struct {
	gateway StorageGateway
	paths   listPaths
}

// NewLocalListProvider returns a provider that never talks to the remote
// store.
func NewLocalListProvider(gateway StorageGateway, paths config.Paths, logger *logger.Logger) ShoppingListProvider {
	return newListProvider(&localListPersistence{gateway: gateway, paths: newListPaths(paths)}, logger)
}

func (l *localListPersistence) GetListsDetails(ctx context.Context) (models.ListsMetadata, models.CacheState, error) {
	raw, err := l.gateway.GetLocalFile(ctx, l.paths.localIndex())
	if err != nil {
		return models.ListsMetadata{Lists: models.ListsIndex{}}, models.CacheStateMissing, err
	}

	metadata, err := decodeListsMetadata(raw)
	if err != nil {
		return models.ListsMetadata{Lists: models.ListsIndex{}}, models.CacheStateMissing, err
	}

	return metadata, localState(raw), nil
}

func (l *localListPersistence) SaveListsDetails(ctx context.Context, metadata models.ListsMetadata) error {
	if metadata.Lists == nil {
		metadata.Lists = models.ListsIndex{}
	}
	return l.gateway.PutLocalFile(ctx, l.paths.localIndex(), metadata)
}

func (l *localListPersistence) GetListData(ctx context.Context, listID string) (*models.ListContent, models.CacheState, error) {
	raw, err := l.gateway.GetLocalFile(ctx, l.paths.localList(listID))
	if err != nil {
		return nil, models.CacheStateMissing, err
	}

	content, err := decodeListContent(raw)
	if err != nil {
		return nil, models.CacheStateMissing, fmt.Errorf("local list %s: %w", listID, err)
	}

	return content, localState(raw), nil
}

func (l *localListPersistence) SaveListData(ctx context.Context, listID string, data *models.ListContent) error {
	return l.gateway.PutLocalFile(ctx, l.paths.localList(listID), data)
}

func (l *localListPersistence) CreateListData(ctx context.Context, listID string, data *models.ListContent) error {
	return l.gateway.PutLocalFile(ctx, l.paths.localList(listID), data)
}

func (l *localListPersistence) DeleteListData(ctx context.Context, listID string) error {
	return l.gateway.DeleteLocalFile(ctx, l.paths.localList(listID))
}

func localState(raw []byte) models.CacheState {
	if raw == nil {
		return models.CacheStateMissing
	}
	return models.CacheStateCached
}
