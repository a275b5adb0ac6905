// Package config loads runtime settings from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvVariant    = "GRIDQUEST_VARIANT"
	EnvSeed       = "GRIDQUEST_SEED"
	EnvEnemyDelay = "GRIDQUEST_ENEMY_DELAY_MS"
	EnvLogFile    = "GRIDQUEST_LOG_FILE"
	EnvTelemetry  = "GRIDQUEST_TELEMETRY"
	EnvAPIKey     = "HONEYCOMB_GRIDQUEST_API_KEY"
	EnvDataset    = "HONEYCOMB_GRIDQUEST_DATASET"
)

const defaultDataset = "gridquest"

// Config holds everything main needs to start a game.
type Config struct {
	Variant string // Rule set ID; empty selects the default
	Seed    int64  // 0 means seed from the clock

	// EnemyDelay overrides the variant's counter-attack pause when
	// HasEnemyDelay is set.
	EnemyDelay    time.Duration
	HasEnemyDelay bool

	LogFile   string // Empty discards logs while the terminal UI runs
	Telemetry bool

	HoneycombAPIKey  string
	HoneycombDataset string
}

// LoadDotEnv loads .env files into the process environment. A missing
// file is not an error; variables already set are left alone.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv reads the configuration from the process environment.
func FromEnv() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromFile reads the configuration from a .env file without touching the
// process environment.
func FromFile(path string) (Config, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	return FromLookup(func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	})
}

// FromLookup builds a Config from an environment lookup function.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg := Config{
		Variant:          get(EnvVariant),
		LogFile:          get(EnvLogFile),
		HoneycombAPIKey:  get(EnvAPIKey),
		HoneycombDataset: get(EnvDataset),
	}
	if cfg.HoneycombDataset == "" {
		cfg.HoneycombDataset = defaultDataset
	}

	if v := get(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v := get(EnvEnemyDelay); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvEnemyDelay, err)
		}
		if ms < 0 {
			return Config{}, fmt.Errorf("%s: negative delay %d", EnvEnemyDelay, ms)
		}
		cfg.EnemyDelay = time.Duration(ms) * time.Millisecond
		cfg.HasEnemyDelay = true
	}

	if v := get(EnvTelemetry); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTelemetry, err)
		}
		cfg.Telemetry = on
	} else {
		// Exporting only makes sense with somewhere to send spans.
		cfg.Telemetry = cfg.HoneycombAPIKey != ""
	}

	return cfg, nil
}

// OTelHeaders returns the OTEL_EXPORTER_OTLP_HEADERS value for Honeycomb,
// or "" when no API key is configured.
func (c Config) OTelHeaders() string {
	if c.HoneycombAPIKey == "" {
		return ""
	}
	return fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", c.HoneycombAPIKey, c.HoneycombDataset)
}
