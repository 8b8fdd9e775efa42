// Package db opens the comic store, creates its schema and translates between
// the SQL dialects of the supported drivers.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS volume (
    volume_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS publisher (
    publisher_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS series (
    series_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    volume_id INTEGER NOT NULL REFERENCES volume (volume_id) ON DELETE RESTRICT,
    publisher_id INTEGER NOT NULL REFERENCES publisher (publisher_id) ON DELETE RESTRICT
);

CREATE TABLE IF NOT EXISTS comic (
    comic_id INTEGER PRIMARY KEY AUTOINCREMENT,
    image_url TEXT,
    description TEXT,
    series_id INTEGER NOT NULL REFERENCES series (series_id) ON DELETE RESTRICT,
    current_price REAL,
    issue_num INTEGER NOT NULL,
    cover_price REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS "user" (
    user_id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    clearance_level INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS collection (
    collection_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES "user" (user_id) ON DELETE CASCADE,
    comic_id INTEGER NOT NULL REFERENCES comic (comic_id) ON DELETE CASCADE
);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS volume (
    volume_id SERIAL PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS publisher (
    publisher_id SERIAL PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS series (
    series_id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    volume_id INTEGER NOT NULL REFERENCES volume (volume_id) ON DELETE RESTRICT,
    publisher_id INTEGER NOT NULL REFERENCES publisher (publisher_id) ON DELETE RESTRICT
);

CREATE TABLE IF NOT EXISTS comic (
    comic_id SERIAL PRIMARY KEY,
    image_url TEXT,
    description TEXT,
    series_id INTEGER NOT NULL REFERENCES series (series_id) ON DELETE RESTRICT,
    current_price DOUBLE PRECISION,
    issue_num INTEGER NOT NULL,
    cover_price DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS "user" (
    user_id SERIAL PRIMARY KEY,
    username TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    clearance_level INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS collection (
    collection_id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES "user" (user_id) ON DELETE CASCADE,
    comic_id INTEGER NOT NULL REFERENCES comic (comic_id) ON DELETE CASCADE
);
`

// Store bundles an open database handle with the dialect its queries must be written in.
type Store struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
	// Dialect selects placeholder style and schema flavour.
	Dialect Dialect
}

// Open connects to the store selected by dialect. For SQLite dsn is the database
// file path, for PostgreSQL a connection string.
func Open(ctx context.Context, dialect Dialect, dsn string) (*Store, error) {
	switch dialect {
	case SQLite:
		return OpenSQLite(ctx, dsn)
	case Postgres:
		return OpenPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported driver %q", dialect)
	}
}

// OpenSQLite opens (creating if needed) the database file at path with foreign
// keys enforced on every connection.
func OpenSQLite(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("open sqlite: empty database file name")
	}
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One interactive session at a time; a single connection keeps pragmas and locking simple.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &Store{DB: db, Dialect: SQLite}, nil
}

// OpenPostgres connects to a PostgreSQL server through lib/pq.
func OpenPostgres(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{DB: db, Dialect: Postgres}, nil
}

// Init creates the six tables if they do not exist yet. Safe to call repeatedly.
func (s *Store) Init(ctx context.Context) error {
	schema := sqliteSchema
	if s.Dialect == Postgres {
		schema = postgresSchema
	}
	if _, err := s.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Rebind rewrites a query written with '?' placeholders for the store's dialect.
func (s *Store) Rebind(query string) string {
	return s.Dialect.Rebind(query)
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.DB.Close()
}
