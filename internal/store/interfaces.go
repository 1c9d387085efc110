package store

import (
	"context"

	"github.com/MKhiriev/go-shop-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FileRepository stores the JSON documents of the remote file server, one
// namespace per owner.
type FileRepository interface {
	// GetFile returns ErrFileNotFound when the document does not exist.
	GetFile(ctx context.Context, owner, path string) (models.RemoteFile, error)
	// PutFile creates or replaces a document and returns it with the stored
	// revision and timestamp.
	PutFile(ctx context.Context, file models.RemoteFile) (models.RemoteFile, error)
	// DeleteFile returns ErrFileNotFound when nothing was deleted.
	DeleteFile(ctx context.Context, owner, path string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
