package calculator

import (
	"time"

	"github.com/kenyot/weight-log/internal/model"
)

// Boundaries returns the ordered week-closing dates covering [start, end].
//
// The first boundary is the first occurrence of closeDay on or after
// start; a start date already falling on closeDay is its own first
// boundary. Subsequent boundaries step by exactly seven days while still
// within range. A span shorter than one week yields an empty slice.
func Boundaries(start, end time.Time, closeDay time.Weekday) []time.Time {
	start = model.Midnight(start)
	end = model.Midnight(end)

	offset := (int(closeDay) - int(start.Weekday()) + 7) % 7

	var boundaries []time.Time
	for d := start.AddDate(0, 0, offset); !d.After(end); d = d.AddDate(0, 0, 7) {
		boundaries = append(boundaries, d)
	}
	return boundaries
}
