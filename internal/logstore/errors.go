package logstore

import (
	"errors"
	"fmt"

	"github.com/kenyot/weight-log/internal/model"
)

var (
	// ErrMissingLog is returned when the weight log file does not exist.
	ErrMissingLog = errors.New("weight log file not found")

	// ErrEmptyLog is returned when the log parses but contains no entries.
	ErrEmptyLog = errors.New("weight log devoid of any entries")
)

// MalformedTimestampError reports a timestamp that does not match TimeFormat.
type MalformedTimestampError struct {
	Value string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("timestamp %q must conform to format %s", e.Value, model.TimeFormat)
}

// InvalidWeightError reports a weight field that is not a decimal number.
type InvalidWeightError struct {
	Value string
}

func (e *InvalidWeightError) Error() string {
	return fmt.Sprintf("%q must be a decimal bodyweight in lbs", e.Value)
}
