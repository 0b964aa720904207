package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"entlink/unify/internal/resolve"
)

// TimeLayout is the timestamp format written to output rows. Microsecond
// precision, identical string on every row of one run.
const TimeLayout = "2006-01-02 15:04:05.000000"

var outputHeader = []string{"ID_UNIQUE", "SOURCE", "IDI", "TIM_PROCESSED"}

// WriteRecords writes one CSV row per record under the fixed output
// header, in the order given.
func WriteRecords(path string, records []resolve.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeRecords(f, records); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func writeRecords(w io.Writer, records []resolve.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(outputHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			strconv.FormatUint(uint64(rec.ComponentID), 10),
			rec.Source,
			rec.LocalID,
			rec.ProcessedAt.Format(TimeLayout),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
