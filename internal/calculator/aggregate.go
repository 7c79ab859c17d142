package calculator

import (
	"errors"
	"time"

	"github.com/kenyot/weight-log/internal/model"
)

// ErrInsufficientSpan is returned when the log entries span less than one
// full week, leaving no closed week to average over. Callers should
// report it and continue with zero averages.
var ErrInsufficientSpan = errors.New("entries must span at least one week to compute weekly averages")

// Aggregate partitions observations into week buckets and returns one
// average per non-empty bucket, in boundary order.
//
// Each boundary b owns the window (prev, b] by calendar date, where prev
// is the preceding boundary; the first bucket's lower edge is
// boundaries[0] minus seven days. Weeks with no observations produce no
// output row.
func Aggregate(obs []model.Observation, boundaries []time.Time) ([]model.WeeklyAverage, error) {
	if len(boundaries) == 0 {
		return nil, ErrInsufficientSpan
	}

	var averages []model.WeeklyAverage
	prev := boundaries[0].AddDate(0, 0, -7)
	for _, b := range boundaries {
		sum := 0.0
		count := 0
		for _, o := range obs {
			d := o.Date()
			if d.After(prev) && !d.After(b) {
				sum += o.Weight
				count++
			}
		}
		prev = b

		if count == 0 {
			continue
		}
		averages = append(averages, model.WeeklyAverage{
			PeriodEnd: endOfWeek(b),
			Weight:    sum / float64(count),
		})
	}
	return averages, nil
}

// endOfWeek returns 23:59 on the boundary's closing day.
func endOfWeek(b time.Time) time.Time {
	return time.Date(b.Year(), b.Month(), b.Day(), 23, 59, 0, 0, b.Location())
}
