package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"solar-profit/internal/estimator"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Estimator EstimatorConfig `yaml:"estimator"`
	Log       LogConfig       `yaml:"log"`
	Cache     CacheConfig     `yaml:"cache"`
}

type ServerConfig struct {
	Port        string   `yaml:"port"`
	Env         string   `yaml:"env"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type EstimatorConfig struct {
	Intervals int `yaml:"intervals"`
	// StrictDomain rejects zero or negative deviations instead of returning
	// non-finite or negative figures.
	StrictDomain bool `yaml:"strict_domain"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"` // "text" or "json"
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	TTL     string `yaml:"ttl"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8080",
			Env:         "development",
			CORSOrigins: []string{"*"},
		},
		Estimator: EstimatorConfig{Intervals: estimator.DefaultIntervals},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Cache: CacheConfig{Enabled: true, TTL: "1h"},
	}
}

// Load reads path over the defaults, applies environment overrides and validates.
// An empty path means defaults plus environment.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads the file over the defaults but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return c, nil
}

// ApplyEnv overrides file values with API_PORT, API_ENV, LOG_LEVEL and LOG_FILE when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("API_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("API_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		c.Log.File = v
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Estimator.Intervals <= 0 {
		return fmt.Errorf("estimator.intervals must be > 0, got %d", c.Estimator.Intervals)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if _, err := c.Cache.TTLDuration(); err != nil {
		return errors.Wrap(err, "cache.ttl")
	}
	return nil
}

// Production reports whether the server runs in production mode.
func (c *Config) Production() bool {
	return c.Server.Env == "production"
}

// NewEstimator builds the estimator described by the config.
func (c *Config) NewEstimator() estimator.Estimator {
	return estimator.Estimator{Intervals: c.Estimator.Intervals}
}

// TTLDuration parses TTL; empty means one hour.
func (c CacheConfig) TTLDuration() (time.Duration, error) {
	if c.TTL == "" {
		return time.Hour, nil
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", c.TTL)
	}
	return d, nil
}
