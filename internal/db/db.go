package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	conn *sql.DB
	Path string
}

// OpenDB opens a SQLite database with WAL mode and foreign keys enabled
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for concurrent reads
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	return &DB{conn: conn, Path: path}, nil
}

// InitSchema creates the edges, runs, and records tables if absent.
func (d *DB) InitSchema() error {
	_, err := d.conn.Exec(`
		CREATE TABLE IF NOT EXISTS edges (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			left_side  TEXT NOT NULL,
			right_side TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS runs (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			processed_at    TEXT NOT NULL,
			node_count      INTEGER NOT NULL,
			edge_count      INTEGER NOT NULL,
			component_count INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS records (
			run_id        INTEGER NOT NULL REFERENCES runs(id),
			id_unique     INTEGER NOT NULL,
			source        TEXT NOT NULL,
			idi           TEXT NOT NULL,
			tim_processed TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.conn.Close()
}

// Conn returns the underlying sql.DB for custom queries
func (d *DB) Conn() *sql.DB {
	return d.conn
}
