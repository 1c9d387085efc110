// Package migrations embeds the goose schema migrations of the client cache
// database and of the remote file server database.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

// Dialects and migration directories.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "pgx"

	ClientDir = "client"
	ServerDir = "server"
)

// Migrate applies every pending migration found in dir using dialect.
func Migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
