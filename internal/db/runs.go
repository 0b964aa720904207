package db

import (
	"fmt"

	"entlink/unify/internal/resolve"
)

// timeLayout matches the CSV output format: microsecond precision.
const timeLayout = "2006-01-02 15:04:05.000000"

// Run is a row in the runs table.
type Run struct {
	ID             int64  `json:"id"`
	ProcessedAt    string `json:"processed_at"`
	NodeCount      int    `json:"node_count"`
	EdgeCount      int    `json:"edge_count"`
	ComponentCount int    `json:"component_count"`
}

// SaveRun persists one resolution result: a runs row plus every record,
// all in a single transaction so a failed run leaves nothing behind.
// Returns the new run id.
func (d *DB) SaveRun(result *resolve.Result) (int64, error) {
	tx, err := d.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO runs (processed_at, node_count, edge_count, component_count)
		VALUES (?, ?, ?, ?)`,
		result.ProcessedAt.Format(timeLayout),
		result.NodeCount, result.EdgeCount, result.ComponentCount,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO records (run_id, id_unique, source, idi, tim_processed)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing record insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range result.Records {
		_, err := stmt.Exec(runID, rec.ComponentID, rec.Source, rec.LocalID,
			rec.ProcessedAt.Format(timeLayout))
		if err != nil {
			return 0, fmt.Errorf("inserting record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

// GetRun loads one runs row by id.
func (d *DB) GetRun(id int64) (*Run, error) {
	var r Run
	err := d.conn.QueryRow(`
		SELECT id, processed_at, node_count, edge_count, component_count
		FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &r.ProcessedAt, &r.NodeCount, &r.EdgeCount, &r.ComponentCount)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// RecordCount returns the number of records stored for a run.
func (d *DB) RecordCount(runID int64) (int, error) {
	var n int
	err := d.conn.QueryRow("SELECT COUNT(*) FROM records WHERE run_id = ?", runID).Scan(&n)
	return n, err
}
