// Package series merges raw observations with weekly averages into one
// time-ordered output table and serializes it as CSV.
package series

import (
	"sort"

	"github.com/kenyot/weight-log/internal/model"
)

// Merge combines raw observations and weekly averages into a single
// sequence sorted ascending by epoch-millisecond timestamp. Each
// observation yields a row with Weight set; each average yields a row
// with Average set. The sort is stable, so rows sharing an instant keep
// insertion order (observations before averages).
func Merge(obs []model.Observation, averages []model.WeeklyAverage) []model.SeriesRow {
	rows := make([]model.SeriesRow, 0, len(obs)+len(averages))
	for _, o := range obs {
		w := o.Weight
		rows = append(rows, model.SeriesRow{EpochMS: o.Time.UnixMilli(), Weight: &w})
	}
	for _, a := range averages {
		avg := a.Weight
		rows = append(rows, model.SeriesRow{EpochMS: a.PeriodEnd.UnixMilli(), Average: &avg})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].EpochMS < rows[j].EpochMS
	})
	return rows
}
