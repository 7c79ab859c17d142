package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kenyot/weight-log/internal/config"
	"github.com/kenyot/weight-log/internal/logstore"
	"github.com/kenyot/weight-log/internal/model"
	"github.com/kenyot/weight-log/internal/pipeline"
	"github.com/kenyot/weight-log/internal/recorder"
	"github.com/kenyot/weight-log/internal/scheduler"
)

const usage = `Usage:
  weightlog [flags] record [<datetime>] <weight>
  weightlog [flags] generate
  weightlog [flags] watch

Commands:
  record    append one entry to the weight log (datetime defaults to now)
  generate  run the full pipeline once and write the output table
  watch     re-run generate on the configured cron schedule

Flags:
  -config   path to config file (default configs/config.yaml)
  -verbose  enable verbose pipeline output
`

func main() {
	log.SetFlags(log.LstdFlags)

	defaultCfg := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultCfg = v
	}
	cfgPath := flag.String("config", defaultCfg, "path to config file")
	verbose := flag.Bool("verbose", false, "enable verbose pipeline output")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	if *verbose {
		cfg.Verbose = true
	}

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	switch args[0] {
	case "record":
		runRecord(cfg, rec, args[1:])
	case "generate":
		runner := pipeline.New(cfg, rec)
		if _, err := runner.Run(); err != nil {
			log.Fatalf("[FATAL] generate: %v", err)
		}
	case "watch":
		runWatch(cfg, rec)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// runRecord appends one entry to the weight log. With one argument the
// timestamp defaults to the current local time at minute precision.
func runRecord(cfg *config.Config, rec recorder.Recorder, args []string) {
	var tsArg, weightArg string
	switch len(args) {
	case 1:
		tsArg = time.Now().Format(model.TimeFormat)
		weightArg = args[0]
	case 2:
		tsArg = args[0]
		weightArg = args[1]
	default:
		flag.Usage()
		os.Exit(2)
	}

	ts, err := logstore.ParseTimestamp(tsArg)
	if err != nil {
		log.Fatalf("[FATAL] record: %v", err)
	}
	weight, err := logstore.ParseWeight(weightArg)
	if err != nil {
		log.Fatalf("[FATAL] record: %v", err)
	}

	obs := model.Observation{Time: ts, Weight: weight}
	if err := logstore.Append(cfg.Log.Path, obs); err != nil {
		log.Fatalf("[FATAL] record: %v", err)
	}
	if err := rec.RecordEntry(obs); err != nil {
		log.Printf("[ERROR] record entry history: %v", err)
	}
	log.Printf("[INFO] new entry: %s  %s", tsArg, weightArg)
}

// runWatch keeps the process alive and regenerates the output on the
// configured cron schedule until interrupted.
func runWatch(cfg *config.Config, rec recorder.Recorder) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := pipeline.New(cfg, rec)
	sched := scheduler.NewScheduler(ctx, runner)
	if err := sched.Register(cfg.Watch.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing generate task now")
		go sched.RunNow()
	}

	log.Println("[INFO] watch mode running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
}
