package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Log struct {
		Path string `yaml:"path"`
	} `yaml:"log"`
	Output struct {
		Path string `yaml:"path"`
	} `yaml:"output"`
	Week struct {
		CloseDay string `yaml:"close_day"`
	} `yaml:"week"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Watch struct {
		Cron string `yaml:"cron"`
	} `yaml:"watch"`
	Verbose bool `yaml:"verbose"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[INFO] no .env file loaded: %v", err)
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("WEIGHT_LOG_PATH"); v != "" {
		cfg.Log.Path = v
	}
	if v := os.Getenv("OUTPUT_PATH"); v != "" {
		cfg.Output.Path = v
	}
	if v := os.Getenv("WEEK_CLOSE_DAY"); v != "" {
		cfg.Week.CloseDay = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}
	if v := os.Getenv("VERBOSE"); v == "true" {
		cfg.Verbose = true
	}

	// Defaults
	if cfg.Log.Path == "" {
		cfg.Log.Path = "weight_log.txt"
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = "output.csv"
	}
	if cfg.Week.CloseDay == "" {
		cfg.Week.CloseDay = "Sunday"
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "0 0 6 * * *"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and well-formed.
func (c *Config) Validate() error {
	if c.Log.Path == "" {
		return fmt.Errorf("log.path is required")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	if _, err := c.CloseDay(); err != nil {
		return err
	}
	return nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// CloseDay returns the configured week-closing weekday.
func (c *Config) CloseDay() (time.Weekday, error) {
	d, ok := weekdays[strings.ToLower(c.Week.CloseDay)]
	if !ok {
		return 0, fmt.Errorf("week.close_day %q is not a weekday name", c.Week.CloseDay)
	}
	return d, nil
}
