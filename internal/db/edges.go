package db

import (
	"fmt"

	"entlink/unify/internal/graph"
)

// InsertEdges appends identifier pairs to the edges table in one
// transaction, preserving their order via the autoincrement rowid.
func (d *DB) InsertEdges(edges []graph.Edge) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO edges (left_side, right_side) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range edges {
		if _, err := stmt.Exec(e.Left, e.Right); err != nil {
			return fmt.Errorf("inserting edge (%q, %q): %w", e.Left, e.Right, err)
		}
	}
	return tx.Commit()
}

// ImportEdges reads all identifier pairs from the edges table in insert
// order, so handle assignment stays deterministic across runs.
func (d *DB) ImportEdges() ([]graph.Edge, error) {
	rows, err := d.conn.Query("SELECT left_side, right_side FROM edges ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying edges: %w", err)
	}
	defer rows.Close()

	var edges []graph.Edge
	for rows.Next() {
		var e graph.Edge
		if err := rows.Scan(&e.Left, &e.Right); err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// EdgeCount returns the number of stored edge rows.
func (d *DB) EdgeCount() (int, error) {
	var n int
	err := d.conn.QueryRow("SELECT COUNT(*) FROM edges").Scan(&n)
	return n, err
}
