// Package logstore reads and appends the append-only weight log.
//
// A weight log is a text file with one record per line,
// "<timestamp>,<weight>", timestamp in model.TimeFormat. New records are
// appended, never inserted mid-file, but file order is not trusted:
// entries are sorted by timestamp as soon as the log is parsed.
package logstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kenyot/weight-log/internal/model"
)

// Load reads the weight log at path and returns its observations sorted
// ascending by timestamp.
func Load(path string) ([]model.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingLog, path)
		}
		return nil, fmt.Errorf("open weight log: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads weight log records from r. See Load.
func Parse(r io.Reader) ([]model.Observation, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	var obs []model.Observation
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read weight log: %w", err)
		}
		o, err := parseRecord(record)
		if err != nil {
			return nil, err
		}
		obs = append(obs, o)
	}

	if len(obs) == 0 {
		return nil, ErrEmptyLog
	}

	sort.SliceStable(obs, func(i, j int) bool {
		return obs[i].Time.Before(obs[j].Time)
	})
	return obs, nil
}

func parseRecord(record []string) (model.Observation, error) {
	ts, err := ParseTimestamp(record[0])
	if err != nil {
		return model.Observation{}, err
	}
	w, err := ParseWeight(record[1])
	if err != nil {
		return model.Observation{}, err
	}
	return model.Observation{Time: ts, Weight: w}, nil
}

// ParseTimestamp parses s under the fixed log timestamp format.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(model.TimeFormat, s)
	if err != nil {
		return time.Time{}, &MalformedTimestampError{Value: s}
	}
	return t, nil
}

// ParseWeight parses s as a decimal weight in lbs.
func ParseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &InvalidWeightError{Value: s}
	}
	return w, nil
}

// Append writes one observation to the end of the log at path, creating
// the file if necessary. Existing records are never rewritten.
func Append(path string, obs model.Observation) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open weight log for append: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	record := []string{
		obs.Time.Format(model.TimeFormat),
		strconv.FormatFloat(obs.Weight, 'f', -1, 64),
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	w.Flush()
	return w.Error()
}

// DateRange returns the calendar dates of the first and last entries.
// The slice must be sorted ascending and non-empty.
func DateRange(obs []model.Observation) (start, end time.Time) {
	return obs[0].Date(), obs[len(obs)-1].Date()
}
