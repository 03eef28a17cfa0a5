// Package config loads dashboard policy settings from an optional YAML file
// with environment-variable overrides. Every setting has a code default, so
// running without a config file is fine.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Built-in policy defaults.
const (
	DefaultBucketThreshold    = 0.03
	DefaultUpcomingWindowDays = 15
	DefaultTopResponsibles    = 10
	DefaultMissingSemantic    = "never_scheduled"
)

// Config holds the tunable policy constants.
type Config struct {
	// BucketThreshold is the minimum share a focus category needs to keep
	// its own chart slice; smaller categories fold into "Outros".
	BucketThreshold float64 `yaml:"bucket_threshold"`

	// UpcomingWindowDays is the scheduling horizon for the planned-visits view.
	UpcomingWindowDays int `yaml:"upcoming_window_days"`

	// TopResponsibles caps the ranked responsible-agent table.
	TopResponsibles int `yaml:"top_responsibles"`

	// MissingSemantic picks the coverage-gap definition:
	// "never_scheduled" (no visit row at all) or "never_completed"
	// (no realized visit).
	MissingSemantic string `yaml:"missing_semantic"`
}

// Default returns the built-in policy.
func Default() Config {
	return Config{
		BucketThreshold:    DefaultBucketThreshold,
		UpcomingWindowDays: DefaultUpcomingWindowDays,
		TopResponsibles:    DefaultTopResponsibles,
		MissingSemantic:    DefaultMissingSemantic,
	}
}

// Load reads the config file at path when it exists, then applies
// environment overrides (VISITDASH_BUCKET_THRESHOLD, VISITDASH_UPCOMING_DAYS,
// VISITDASH_TOP_N, VISITDASH_MISSING_SEMANTIC). An empty path means
// defaults + environment only.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	envOverrideFloat(&cfg.BucketThreshold, "VISITDASH_BUCKET_THRESHOLD")
	envOverrideInt(&cfg.UpcomingWindowDays, "VISITDASH_UPCOMING_DAYS")
	envOverrideInt(&cfg.TopResponsibles, "VISITDASH_TOP_N")
	if v := os.Getenv("VISITDASH_MISSING_SEMANTIC"); v != "" {
		cfg.MissingSemantic = v
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.BucketThreshold < 0 || c.BucketThreshold > 1 {
		return fmt.Errorf("bucket_threshold %v outside [0,1]", c.BucketThreshold)
	}
	if c.UpcomingWindowDays < 0 {
		return fmt.Errorf("upcoming_window_days %d is negative", c.UpcomingWindowDays)
	}
	switch c.MissingSemantic {
	case "never_scheduled", "never_completed":
	default:
		return fmt.Errorf("missing_semantic %q: want never_scheduled or never_completed", c.MissingSemantic)
	}
	return nil
}

func envOverrideInt(target *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*target = n
		}
	}
}

func envOverrideFloat(target *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*target = f
		}
	}
}
