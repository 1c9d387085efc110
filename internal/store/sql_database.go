package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
	"github.com/MKhiriev/go-shop-sync/migrations"
)

// DB is a *sql.DB bound to the dialect and migration set it was opened for.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	dialect       string
	migrationsDir string
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect, db.migrationsDir)
}

// classify wraps err with ErrTemporaryFailure when the classifier deems it
// retryable.
func (db *DB) classify(err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTemporaryFailure, err)
	}
	return err
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
