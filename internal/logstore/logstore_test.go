package logstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kenyot/weight-log/internal/model"
)

func TestParse_SortsEntries(t *testing.T) {
	input := strings.Join([]string{
		"2023-01-09-08:00,149.0",
		"2023-01-02-08:00,150.0",
		"2023-01-03-08:00,151.0",
	}, "\n")

	obs, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(obs) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(obs))
	}
	for i := 1; i < len(obs); i++ {
		if obs[i].Time.Before(obs[i-1].Time) {
			t.Errorf("entries out of order at %d: %v before %v", i, obs[i-1].Time, obs[i].Time)
		}
	}

	start, end := DateRange(obs)
	if start.After(end) {
		t.Errorf("start date %v after end date %v", start, end)
	}
	if !start.Equal(time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start date: %v", start)
	}
}

func TestParse_EmptyLog(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyLog) {
		t.Fatalf("expected ErrEmptyLog, got %v", err)
	}
}

func TestParse_MalformedTimestamp(t *testing.T) {
	_, err := Parse(strings.NewReader("2023-13-01-08:00,150.0"))
	var tsErr *MalformedTimestampError
	if !errors.As(err, &tsErr) {
		t.Fatalf("expected MalformedTimestampError, got %v", err)
	}
	if !strings.Contains(tsErr.Error(), model.TimeFormat) {
		t.Errorf("error should name the expected format: %q", tsErr.Error())
	}
}

func TestParse_InvalidWeight(t *testing.T) {
	_, err := Parse(strings.NewReader("2023-01-02-08:00,heavy"))
	var wErr *InvalidWeightError
	if !errors.As(err, &wErr) {
		t.Fatalf("expected InvalidWeightError, got %v", err)
	}
	if !strings.Contains(wErr.Error(), "heavy") {
		t.Errorf("error should name the offending value: %q", wErr.Error())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, ErrMissingLog) {
		t.Fatalf("expected ErrMissingLog, got %v", err)
	}
}

func TestAppendThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weight_log.txt")

	entries := []model.Observation{
		{Time: mustTime(t, "2023-01-02-08:00"), Weight: 150.0},
		{Time: mustTime(t, "2023-01-03-07:45"), Weight: 151.5},
	}
	for _, e := range entries {
		if err := Append(path, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	obs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(obs) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(obs))
	}
	for i := range entries {
		if !obs[i].Time.Equal(entries[i].Time) || obs[i].Weight != entries[i].Weight {
			t.Errorf("entry %d: expected %+v, got %+v", i, entries[i], obs[i])
		}
	}

	// Appending never rewrites: the file grows by one line per entry.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != len(entries) {
		t.Errorf("expected %d lines, got %d", len(entries), got)
	}
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(model.TimeFormat, s)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", s, err)
	}
	return parsed
}
