package db

import (
	"path/filepath"
	"testing"
	"time"

	"entlink/unify/internal/graph"
	"entlink/unify/internal/resolve"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	if err := d.InitSchema(); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}
	return d
}

func TestEdgesRoundTrip(t *testing.T) {
	d := openTestDB(t)
	in := []graph.Edge{
		{Left: "A|1", Right: "B|2"},
		{Left: "B|2", Right: "C|3"},
		{Left: "X", Right: "X"},
	}
	if err := d.InsertEdges(in); err != nil {
		t.Fatalf("InsertEdges: %v", err)
	}

	out, err := d.ImportEdges()
	if err != nil {
		t.Fatalf("ImportEdges: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d edges, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("edge %d = %+v, want %+v (order must survive the round trip)", i, out[i], in[i])
		}
	}

	n, err := d.EdgeCount()
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("EdgeCount = %d, want 3", n)
	}
}

func TestSaveRun(t *testing.T) {
	d := openTestDB(t)
	ts := time.Date(2026, 8, 26, 10, 30, 0, 123456000, time.UTC)
	result := &resolve.Result{
		Records: []resolve.Record{
			{ComponentID: 0, Source: "A", LocalID: "1", ProcessedAt: ts},
			{ComponentID: 0, Source: "B", LocalID: "2", ProcessedAt: ts},
			{ComponentID: 1, Source: "", LocalID: "X", ProcessedAt: ts},
		},
		NodeCount:      3,
		EdgeCount:      2,
		ComponentCount: 2,
		ProcessedAt:    ts,
	}

	runID, err := d.SaveRun(result)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	run, err := d.GetRun(runID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if run.NodeCount != 3 || run.EdgeCount != 2 || run.ComponentCount != 2 {
		t.Errorf("run = %+v, want counts 3/2/2", run)
	}
	if run.ProcessedAt != "2026-08-26 10:30:00.123456" {
		t.Errorf("ProcessedAt = %q, want microsecond layout", run.ProcessedAt)
	}

	n, err := d.RecordCount(runID)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("RecordCount = %d, want 3", n)
	}
}

func TestImportEdges_EmptyTable(t *testing.T) {
	d := openTestDB(t)
	edges, err := d.ImportEdges()
	if err != nil {
		t.Fatalf("ImportEdges: %v", err)
	}
	if len(edges) != 0 {
		t.Errorf("got %d edges from an empty table, want 0", len(edges))
	}
}
