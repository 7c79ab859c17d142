package model

import "time"

// TimeFormat is the fixed timestamp layout used throughout the weight log.
const TimeFormat = "2006-01-02-15:04"

// Observation is a single timestamped weight measurement in pounds.
type Observation struct {
	Time   time.Time
	Weight float64
}

// Date returns the observation's calendar date.
func (o Observation) Date() time.Time {
	return Midnight(o.Time)
}

// WeeklyAverage is the mean weight over one aggregation week.
// PeriodEnd is always 23:59 on the week's closing day.
type WeeklyAverage struct {
	PeriodEnd time.Time
	Weight    float64
}

// Midnight truncates t to its calendar date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
