package service

import (
	"context"

	"github.com/MKhiriev/go-shop-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// StorageGateway is the single point of access to named JSON documents.
//
// Remote-backed documents are addressed by their remote path and read with
// cache-or-fetch semantics. Local files live in a separate key namespace that
// is never synced with the remote store.
type StorageGateway interface {
	// Online reports whether the remote store can be reached with a token.
	Online() bool

	// GetFile returns the cached document at path, fetching it when the cache
	// has no copy. The result offers a sync handle when the cached copy may be
	// stale or holds an unconfirmed local write.
	GetFile(ctx context.Context, path string) (models.ReadResult[[]byte], error)
	// UpdateFile stages data in the cache and pushes it to the remote store.
	// While offline the staged copy stays pending.
	UpdateFile(ctx context.Context, path string, data any) error
	// StageFile writes data to the cache as a pending local write and returns
	// the stored bytes. Nothing is sent to the remote store.
	StageFile(ctx context.Context, path string, data any) ([]byte, error)
	// PushFile sends data to the remote store and marks the cached copy
	// synced if it still holds the same bytes.
	PushFile(ctx context.Context, path string, data []byte) error
	DeleteFile(ctx context.Context, path string) error
	// ForceRemoteFetch reads path from the remote store, bypassing and then
	// overwriting the cache. It returns nil, nil when the remote store has no
	// document at path.
	ForceRemoteFetch(ctx context.Context, path string) ([]byte, error)

	// GetLocalFile returns nil, nil when key is absent.
	GetLocalFile(ctx context.Context, key string) ([]byte, error)
	PutLocalFile(ctx context.Context, key string, data any) error
	DeleteLocalFile(ctx context.Context, key string) error
	// ClearLocalCache removes every local key starting with prefix and
	// returns how many were removed.
	ClearLocalCache(ctx context.Context, prefix string) (int, error)
	CacheInfo(ctx context.Context, prefix string) (models.CacheInfo, error)
}

// WriteQueue delivers writes to the remote store independently of the
// caller's lifetime.
type WriteQueue interface {
	// Enqueue durably records payload for (collection, itemID). A newer
	// entry for the same item supersedes an undelivered older one.
	Enqueue(ctx context.Context, collection, itemID string, payload any) error
	// Drain delivers the entries that are due and returns how many were
	// delivered.
	Drain(ctx context.Context) (int, error)
	// Pending returns the number of undelivered entries.
	Pending(ctx context.Context) (int, error)
}

// ListPersistence is the storage strategy behind a list provider.
type ListPersistence interface {
	GetListsDetails(ctx context.Context) (models.ListsMetadata, models.CacheState, error)
	SaveListsDetails(ctx context.Context, metadata models.ListsMetadata) error
	// GetListData returns a nil content when the list has no stored data.
	GetListData(ctx context.Context, listID string) (*models.ListContent, models.CacheState, error)
	SaveListData(ctx context.Context, listID string, data *models.ListContent) error
	CreateListData(ctx context.Context, listID string, data *models.ListContent) error
	DeleteListData(ctx context.Context, listID string) error
}

// ShoppingListProvider is what the UI talks to.
type ShoppingListProvider interface {
	GetShoppingLists(ctx context.Context) (models.ReadResult[models.ListsIndex], error)
	GetShoppingListData(ctx context.Context, listID string) (models.ReadResult[*models.ListContent], error)

	CreateShoppingList(ctx context.Context, name string) (models.ListSummary, error)
	UpdateShoppingList(ctx context.Context, content *models.ListContent) error
	RenameShoppingList(ctx context.Context, listID, name string) error
	DeleteShoppingList(ctx context.Context, listID string) error
}

// RemoteListProvider is the remote-backed provider. Its reads offer
// background sync, remote content updates repair the lists index, and it can
// promote local staging data once the remote store is reachable.
type RemoteListProvider interface {
	ShoppingListProvider
	ListPersistence

	// ForceRefreshListData discards the cached copy of a list and returns the
	// remote one. It returns nil, nil when the remote store has no such list
	// and an error wrapping ErrRemoteUnavailable when the fetch failed.
	ForceRefreshListData(ctx context.Context, listID string) (*models.ListContent, error)
	// MergeLocalListsWithRemote pushes the local staging lists to the remote
	// store and clears the local staging namespace.
	MergeLocalListsWithRemote(ctx context.Context) (models.MergeResult, error)
}
