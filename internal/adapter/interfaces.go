// Package adapter contains the client transport to the remote file server.
//
// The remote store is a per-user key/value space of JSON documents addressed
// by slash-separated paths such as /shop-sync/shopping-lists.json. The
// adapter knows nothing about shopping lists; it moves opaque documents and
// maps transport failures to the sentinel errors in errors.go.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-shop-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteStore is the authenticated file API of the remote server.
type RemoteStore interface {
	// SetToken replaces the bearer token used for subsequent requests.
	SetToken(token string)
	// Token returns the current bearer token, or "" when none is set.
	Token() string

	// GetFile downloads the document stored at path. It returns an error
	// wrapping ErrNotFound when the path holds no document.
	GetFile(ctx context.Context, path string) (models.RemoteFile, error)
	// PutFile stores data at path, replacing any previous document, and
	// returns the stored revision.
	PutFile(ctx context.Context, path string, data []byte) (models.RemoteFile, error)
	// DeleteFile removes the document at path. Deleting an absent path
	// returns an error wrapping ErrNotFound.
	DeleteFile(ctx context.Context, path string) error
}
