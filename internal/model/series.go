package model

// SeriesRow is one row of the merged output table. Exactly one of
// Weight and Average is non-nil.
type SeriesRow struct {
	EpochMS int64
	Weight  *float64
	Average *float64
}
