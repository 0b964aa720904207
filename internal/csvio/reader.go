// Package csvio owns the delimited-text boundary: reading identifier
// pairs and writing resolved component records.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"entlink/unify/internal/graph"
)

// Required input columns. Extra columns are ignored, position is free.
const (
	LeftColumn  = "LEFT_SIDE"
	RightColumn = "RIGHT_SIDE"
)

// ReadEdges reads identifier pairs from a CSV file. The header row must
// contain LEFT_SIDE and RIGHT_SIDE; a row too short to carry both is a
// hard error since the core never accepts missing sides.
func ReadEdges(path string) ([]graph.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readEdges(f, path)
}

func readEdges(r io.Reader, name string) ([]graph.Edge, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: empty file, expected a header with %s and %s", name, LeftColumn, RightColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s header: %w", name, err)
	}

	left, right := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case LeftColumn:
			left = i
		case RightColumn:
			right = i
		}
	}
	var missing []string
	if left < 0 {
		missing = append(missing, LeftColumn)
	}
	if right < 0 {
		missing = append(missing, RightColumn)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: missing required columns: %s", name, strings.Join(missing, ", "))
	}

	var edges []graph.Edge
	row := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		row++
		if left >= len(record) || right >= len(record) {
			return nil, fmt.Errorf("%s: row %d has %d fields, need both %s and %s",
				name, row, len(record), LeftColumn, RightColumn)
		}
		edges = append(edges, graph.Edge{Left: record[left], Right: record[right]})
	}
	return edges, nil
}
