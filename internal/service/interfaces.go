package service

import (
	"context"

	"github.com/MKhiriev/go-shop-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FileService manages the documents of the remote file server. Every
// operation is scoped to an owner.
type FileService interface {
	GetFile(ctx context.Context, owner, path string) (models.RemoteFile, error)
	PutFile(ctx context.Context, owner, path string, data []byte) (models.RemoteFile, error)
	DeleteFile(ctx context.Context, owner, path string) error
}

type AuthService interface {
	CreateToken(ctx context.Context, owner string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
