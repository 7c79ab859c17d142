package recorder

import (
	"time"

	"github.com/kenyot/weight-log/internal/model"
)

// RunSummary describes one completed generate run.
type RunSummary struct {
	Entries   int
	Averages  int
	SpanStart time.Time
	SpanEnd   time.Time
	Output    string
}

// Recorder persists entry and run history for later analysis.
// Recording is best-effort: callers log failures and carry on.
type Recorder interface {
	RecordEntry(obs model.Observation) error
	RecordRun(sum *RunSummary) error
	Close() error
}
