package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/internal/store"
	"github.com/MKhiriev/go-shop-sync/internal/utils"
	"github.com/MKhiriev/go-shop-sync/models"
)

const maxPathLength = 1024

type fileService struct {
	files store.FileRepository

	logger *logger.Logger
}

func NewFileService(files store.FileRepository, logger *logger.Logger) FileService {
	return &fileService{files: files, logger: logger}
}

func (f *fileService) GetFile(ctx context.Context, owner, filePath string) (models.RemoteFile, error) {
	filePath, err := cleanPath(filePath)
	if err != nil {
		return models.RemoteFile{}, err
	}

	file, err := f.files.GetFile(ctx, owner, filePath)
	if errors.Is(err, store.ErrFileNotFound) {
		return models.RemoteFile{}, fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("path", filePath).Msg("file read failed")
		return models.RemoteFile{}, fmt.Errorf("get file %s: %w", filePath, err)
	}

	return file, nil
}

// PutFile stores data at filePath. data must be a JSON document; its
// revision is the BLAKE2b digest of the compacted document.
func (f *fileService) PutFile(ctx context.Context, owner, filePath string, data []byte) (models.RemoteFile, error) {
	filePath, err := cleanPath(filePath)
	if err != nil {
		return models.RemoteFile{}, err
	}
	if !json.Valid(data) {
		return models.RemoteFile{}, ErrInvalidDocument
	}

	stored, err := f.files.PutFile(ctx, models.RemoteFile{
		Owner:    owner,
		Path:     filePath,
		Data:     data,
		Revision: utils.Revision(data),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("path", filePath).Msg("file write failed")
		return models.RemoteFile{}, fmt.Errorf("put file %s: %w", filePath, err)
	}

	return stored, nil
}

func (f *fileService) DeleteFile(ctx context.Context, owner, filePath string) error {
	filePath, err := cleanPath(filePath)
	if err != nil {
		return err
	}

	err = f.files.DeleteFile(ctx, owner, filePath)
	if errors.Is(err, store.ErrFileNotFound) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
	}
	if err != nil {
		return fmt.Errorf("delete file %s: %w", filePath, err)
	}

	return nil
}

// cleanPath turns a request path into the absolute key a document is stored
// under. Paths escaping the root are rejected.
func cleanPath(raw string) (string, error) {
	if raw == "" || len(raw) > maxPathLength {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, raw)
	}
	for _, segment := range strings.Split(raw, "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, raw)
		}
	}

	cleaned := path.Clean("/" + raw)
	if cleaned == "/" {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, raw)
	}

	return cleaned, nil
}
