package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kenyot/weight-log/internal/model"
)

var header = []string{"Date", "Bodyweight", "Weekly Average"}

// WriteCSV writes the merged series as a three-column table: Date (epoch
// milliseconds), Bodyweight, and Weekly Average formatted to one
// fractional digit. The absent field of each row is an empty cell.
func WriteCSV(w io.Writer, rows []model.SeriesRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		weight, average := "", ""
		if r.Weight != nil {
			weight = strconv.FormatFloat(*r.Weight, 'f', -1, 64)
		}
		if r.Average != nil {
			average = fmt.Sprintf("%.1f", *r.Average)
		}
		record := []string{strconv.FormatInt(r.EpochMS, 10), weight, average}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the merged series to path. Callers compute all rows
// before the file is created, so a failed run leaves no partial output.
func WriteCSVFile(path string, rows []model.SeriesRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("write output file: %w", err)
	}
	return f.Close()
}
