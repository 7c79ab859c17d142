package series

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/kenyot/weight-log/internal/model"
)

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(model.TimeFormat, s)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", s, err)
	}
	return parsed
}

func TestMerge_RawOnly(t *testing.T) {
	obs := []model.Observation{
		{Time: ts(t, "2023-01-02-08:00"), Weight: 150.0},
		{Time: ts(t, "2023-01-03-08:00"), Weight: 151.0},
		{Time: ts(t, "2023-01-04-08:00"), Weight: 149.5},
	}
	rows := Merge(obs, nil)
	if len(rows) != len(obs) {
		t.Fatalf("expected %d rows, got %d", len(obs), len(rows))
	}
	for i, r := range rows {
		if r.Average != nil {
			t.Errorf("row %d: expected no average, got %v", i, *r.Average)
		}
		if r.Weight == nil {
			t.Errorf("row %d: expected weight to be set", i)
		}
	}
}

func TestMerge_SortedAndDisjoint(t *testing.T) {
	obs := []model.Observation{
		{Time: ts(t, "2023-01-09-08:00"), Weight: 149.0},
		{Time: ts(t, "2023-01-02-08:00"), Weight: 150.0},
	}
	averages := []model.WeeklyAverage{
		{PeriodEnd: time.Date(2023, 1, 8, 23, 59, 0, 0, time.UTC), Weight: 150.5},
	}
	rows := Merge(obs, averages)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].EpochMS < rows[i-1].EpochMS {
			t.Errorf("rows out of order at %d: %d before %d", i, rows[i-1].EpochMS, rows[i].EpochMS)
		}
	}
	for i, r := range rows {
		if (r.Weight == nil) == (r.Average == nil) {
			t.Errorf("row %d: exactly one of weight/average must be set", i)
		}
	}
	// The average for the week ending Jan 8 sorts between the two raw rows.
	if rows[1].Average == nil || *rows[1].Average != 150.5 {
		t.Errorf("expected middle row to be the weekly average, got %+v", rows[1])
	}
}

func TestWriteCSV(t *testing.T) {
	w := 150.0
	avg := 150.55
	rows := []model.SeriesRow{
		{EpochMS: 1672646400000, Weight: &w},
		{EpochMS: 1673222340000, Average: &avg},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Date,Bodyweight,Weekly Average" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "1672646400000,150," {
		t.Errorf("unexpected raw row: %q", lines[1])
	}
	// Averages round to one fractional digit for display.
	if lines[2] != "1673222340000,,150.6" {
		t.Errorf("unexpected average row: %q", lines[2])
	}
}
