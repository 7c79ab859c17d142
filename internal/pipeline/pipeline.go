// Package pipeline runs the load → boundaries → aggregate → merge →
// serialize sequence for one invocation.
package pipeline

import (
	"errors"
	"log"

	"github.com/kenyot/weight-log/internal/calculator"
	"github.com/kenyot/weight-log/internal/config"
	"github.com/kenyot/weight-log/internal/logstore"
	"github.com/kenyot/weight-log/internal/recorder"
	"github.com/kenyot/weight-log/internal/series"
)

// Runner executes one full generate pass against the configured log and
// output locations. Verbosity is injected per runner rather than read
// from a package-level flag.
type Runner struct {
	Cfg      *config.Config
	Recorder recorder.Recorder
	Verbose  bool
}

// New creates a Runner.
func New(cfg *config.Config, rec recorder.Recorder) *Runner {
	return &Runner{Cfg: cfg, Recorder: rec, Verbose: cfg.Verbose}
}

// Run loads the weight log, computes weekly averages, merges both into
// one series, and writes the output table. A log spanning less than one
// week is reported as a warning and still produces the raw rows.
func (r *Runner) Run() (*recorder.RunSummary, error) {
	obs, err := logstore.Load(r.Cfg.Log.Path)
	if err != nil {
		return nil, err
	}
	if r.Verbose {
		log.Printf("[INFO] number of log entries: %d", len(obs))
	}

	closeDay, err := r.Cfg.CloseDay()
	if err != nil {
		return nil, err
	}

	start, end := logstore.DateRange(obs)
	boundaries := calculator.Boundaries(start, end, closeDay)

	averages, err := calculator.Aggregate(obs, boundaries)
	if err != nil {
		if !errors.Is(err, calculator.ErrInsufficientSpan) {
			return nil, err
		}
		log.Printf("[WARN] %v", err)
		averages = nil
	}
	if r.Verbose {
		for _, a := range averages {
			log.Printf("[INFO] week ending %s: %.1f lbs",
				a.PeriodEnd.Format("2006-01-02"), a.Weight)
		}
	}

	rows := series.Merge(obs, averages)
	if err := series.WriteCSVFile(r.Cfg.Output.Path, rows); err != nil {
		return nil, err
	}
	log.Printf("[INFO] wrote %d rows to %s", len(rows), r.Cfg.Output.Path)

	sum := &recorder.RunSummary{
		Entries:   len(obs),
		Averages:  len(averages),
		SpanStart: start,
		SpanEnd:   end,
		Output:    r.Cfg.Output.Path,
	}
	if err := r.Recorder.RecordRun(sum); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	return sum, nil
}
