package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/models"
)

// fileRepository is the PostgreSQL-backed implementation of
// [FileRepository] over the "files" table.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with the
// owner and path of the document.
type fileRepository struct {
	*DB
	logger  *logger.Logger
	builder sq.StatementBuilderType
}

// NewFileRepository constructs a [FileRepository] backed by the provided
// database connection and logger.
func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	return &fileRepository{
		DB:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetFile returns the document stored at path for owner.
func (f *fileRepository) GetFile(ctx context.Context, owner, path string) (models.RemoteFile, error) {
	log := logger.FromContext(ctx)

	query, args, err := f.builder.
		Select("owner", "path", "data", "revision", "updated_at").
		From("files").
		Where(sq.Eq{"owner": owner, "path": path}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.GetFile").
			Msg("failed to build query")
		return models.RemoteFile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		file models.RemoteFile
		data []byte
	)
	err = f.DB.QueryRowContext(ctx, query, args...).Scan(
		&file.Owner,
		&file.Path,
		&data,
		&file.Revision,
		&file.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RemoteFile{}, ErrFileNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.GetFile").
			Str("owner", owner).
			Str("path", path).
			Msg("failed to scan file row")
		return models.RemoteFile{}, fmt.Errorf("%w: %w", ErrScanningRow, f.classify(err))
	}
	file.Data = data

	return file, nil
}

// PutFile upserts the document. The (owner, path) pair is the identity; the
// last writer wins.
func (f *fileRepository) PutFile(ctx context.Context, file models.RemoteFile) (models.RemoteFile, error) {
	log := logger.FromContext(ctx)

	query, args, err := f.builder.
		Insert("files").
		Columns("owner", "path", "data", "revision", "updated_at").
		Values(file.Owner, file.Path, string(file.Data), file.Revision, sq.Expr("NOW()")).
		Suffix(`ON CONFLICT (owner, path) DO UPDATE SET
			data = EXCLUDED.data,
			revision = EXCLUDED.revision,
			updated_at = EXCLUDED.updated_at
			RETURNING updated_at`).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.PutFile").
			Msg("failed to build query")
		return models.RemoteFile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updatedAt time.Time
	if err = f.DB.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		log.Err(err).
			Str("func", "fileRepository.PutFile").
			Str("owner", file.Owner).
			Str("path", file.Path).
			Msg("failed to upsert file")
		return models.RemoteFile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, f.classify(err))
	}
	file.UpdatedAt = updatedAt

	return file, nil
}

// DeleteFile removes the document stored at path for owner.
func (f *fileRepository) DeleteFile(ctx context.Context, owner, path string) error {
	log := logger.FromContext(ctx)

	query, args, err := f.builder.
		Delete("files").
		Where(sq.Eq{"owner": owner, "path": path}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.DeleteFile").
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := f.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.DeleteFile").
			Str("owner", owner).
			Str("path", path).
			Msg("failed to delete file")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, f.classify(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFileNotFound
	}

	return nil
}
