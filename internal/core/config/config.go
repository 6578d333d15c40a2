package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the top-level configuration for statflow.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Redis      RedisConfig      `koanf:"redis"`
	Mongo      MongoConfig      `koanf:"mongo"`
	Aggregator AggregatorConfig `koanf:"aggregator"`
	Archiver   ArchiverConfig   `koanf:"archiver"`
	Importer   ImporterConfig   `koanf:"importer"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Port int    `koanf:"port"`
	Host string `koanf:"host"`
	Mode string `koanf:"mode"` // "debug" or "release"
}

// RedisConfig holds the hot store connection settings.
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	PoolSize int    `koanf:"pool_size"`
}

// MongoConfig holds the cold store connection settings.
type MongoConfig struct {
	URI        string `koanf:"uri"`
	Database   string `koanf:"database"`
	Collection string `koanf:"collection"`
}

// AggregatorConfig holds settings for the queue-consuming aggregator loop.
type AggregatorConfig struct {
	Enabled      bool   `koanf:"enabled"`
	PopTimeout   string `koanf:"pop_timeout"`   // bounded wait on the queue
	ErrorBackoff string `koanf:"error_backoff"` // pause after a failed iteration
}

// ArchiverConfig holds settings for the periodic archive cycle.
type ArchiverConfig struct {
	Enabled       bool   `koanf:"enabled"`
	Interval      string `koanf:"interval"` // sleep between cycles
	ScanPageSize  int64  `koanf:"scan_page_size"`
	RetentionDays int    `koanf:"retention_days"`
}

// ImporterConfig holds settings for the CSV transaction importer.
type ImporterConfig struct {
	FilePath string `koanf:"file_path"`
}

// PopTimeoutDuration returns the parsed bounded-wait duration.
func (c AggregatorConfig) PopTimeoutDuration() (time.Duration, error) {
	return parsePositiveDuration("aggregator.pop_timeout", c.PopTimeout)
}

// ErrorBackoffDuration returns the parsed post-failure pause.
func (c AggregatorConfig) ErrorBackoffDuration() (time.Duration, error) {
	return parsePositiveDuration("aggregator.error_backoff", c.ErrorBackoff)
}

// IntervalDuration returns the parsed inter-cycle sleep.
func (c ArchiverConfig) IntervalDuration() (time.Duration, error) {
	return parsePositiveDuration("archiver.interval", c.Interval)
}

func parsePositiveDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, value)
	}
	return d, nil
}

// Load loads the configuration from the given file path and environment variables.
// Durations are validated here so a bad value fails startup, not the first loop tick.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	defaults := map[string]interface{}{
		"server.port":              8080,
		"server.host":              "0.0.0.0",
		"server.mode":              "release",
		"redis.addr":               "localhost:6379",
		"redis.password":           "",
		"redis.db":                 0,
		"redis.pool_size":          10,
		"mongo.uri":                "mongodb://localhost:27017",
		"mongo.database":           "transaction_db",
		"mongo.collection":         "transactions",
		"aggregator.enabled":       true,
		"aggregator.pop_timeout":   "1s",
		"aggregator.error_backoff": "1s",
		"archiver.enabled":         true,
		"archiver.interval":        "10s",
		"archiver.scan_page_size":  100,
		"archiver.retention_days":  7,
		"importer.file_path":       "sample_transactions.csv",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	// 2. Load from file
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// 3. Load from Environment Variables
	// STATFLOW_SERVER__PORT=9090 overrides server.port
	if err := k.Load(env.Provider("STATFLOW_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "STATFLOW_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if _, err := cfg.Aggregator.PopTimeoutDuration(); err != nil {
		return nil, err
	}
	if _, err := cfg.Aggregator.ErrorBackoffDuration(); err != nil {
		return nil, err
	}
	if _, err := cfg.Archiver.IntervalDuration(); err != nil {
		return nil, err
	}
	if cfg.Archiver.RetentionDays <= 0 {
		return nil, fmt.Errorf("invalid archiver.retention_days %d: must be positive", cfg.Archiver.RetentionDays)
	}

	return &cfg, nil
}
