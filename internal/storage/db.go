// Package storage opens the local SQLite database and wires the repositories
// that live in it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/unconfessional/internal/filex"
	"github.com/dmitrijs2005/unconfessional/internal/repositories/localstorage"
	"github.com/dmitrijs2005/unconfessional/internal/storage/migrations"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Repositories bundles the repositories backed by one database handle.
type Repositories struct {
	DB           *sql.DB
	LocalStorage localstorage.Repository
}

// Close releases the database handle.
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// InitDatabase opens (creating if needed) the SQLite database at path and
// brings its schema up to date. The parent directory is created when missing.
func InitDatabase(ctx context.Context, path string) (*Repositories, error) {
	if path != ":memory:" {
		if err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection serialises writers and keeps :memory: databases shared.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		DB:           db,
		LocalStorage: localstorage.NewSQLiteRepository(db),
	}, nil
}
