package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/kenyot/weight-log/internal/pipeline"
)

// Scheduler re-runs the generate pipeline on a cron schedule (watch
// mode). Every tick is one complete batch invocation.
type Scheduler struct {
	Cron   *cron.Cron
	Runner *pipeline.Runner
	Ctx    context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, runner *pipeline.Runner) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Runner: runner,
		Ctx:    ctx,
	}
}

// Register registers the generate task under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.generateTask); err != nil {
		return fmt.Errorf("register generate task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the generate task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.generateTask()
}

func (s *Scheduler) generateTask() {
	log.Println("[INFO] running generate task")
	sum, err := s.Runner.Run()
	if err != nil {
		log.Printf("[ERROR] generate: %v", err)
		return
	}
	log.Printf("[INFO] generate complete: %d entries, %d weekly averages", sum.Entries, sum.Averages)
}
