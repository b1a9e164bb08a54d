package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore is the persistent Store implementation, backed by a single
// SQLite table of key/value pairs.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) the SQLite database at the given file
// path, applies schema migrations, and returns a ready store. An in-memory
// path such as "file::memory:" is accepted for tests.
func NewSQLiteStore(filePath string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite store: %w", err)
	}

	// A single connection keeps in-memory databases coherent and matches the
	// single-writer model the data layer assumes anyway.
	db.SetMaxOpenConns(1)

	// WAL mode is friendlier to the read-mostly access pattern of the stores.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode on sqlite store: %w", err)
	}

	if err := applyMigrations(db.DB); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

// applyMigrations runs all up migrations from the embedded migrations
// directory against the open database handle.
func applyMigrations(db *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Get returns the value stored under key.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	query := `SELECT value FROM storage WHERE key = ?`
	if err := s.db.GetContext(ctx, &value, query, key); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	query := `INSERT OR REPLACE INTO storage (key, value) VALUES (?, ?)`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

// Remove deletes key.
func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM storage WHERE key = ?`
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
