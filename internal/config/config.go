// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/wikiwally/internal/mediawiki"
	"github.com/jonathan/wikiwally/internal/wiki"
)

// Environment variables read by ApplyEnv.
const (
	EnvAPIURL    = "WIKIWALLY_API_URL"
	EnvUserAgent = "WIKIWALLY_USER_AGENT"
	EnvTimeout   = "WIKIWALLY_TIMEOUT"
	EnvRPS       = "WIKIWALLY_RPS"
	EnvPort      = "WIKIWALLY_PORT"
)

// DefaultPort is the HTTP port used by serve.
const DefaultPort = 8080

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Knowledge base
	APIURL            string  `json:"api_url,omitempty" validate:"omitempty,url"`            // MediaWiki Action API endpoint
	UserAgent         string  `json:"user_agent,omitempty"`                                  // User-Agent sent to MediaWiki
	TimeoutSeconds    int     `json:"timeout_seconds,omitempty" validate:"gte=0,lte=300"`    // HTTP timeout per request
	RequestsPerSecond float64 `json:"requests_per_second,omitempty"`                         // Client-side throttle, 0 uses the default, negative disables it
	BatchConcurrency  int     `json:"batch_concurrency,omitempty" validate:"gte=0,lte=10"`   // Concurrent lookups in a random batch

	// Presentation
	Template string `json:"template,omitempty"` // Path to a text/template card for CLI output

	// Server
	Port int `json:"port,omitempty" validate:"gte=0,lte=65535"` // HTTP port for serve

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Debug logging and boxed output
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		APIURL:            mediawiki.DefaultAPIURL,
		UserAgent:         mediawiki.DefaultUserAgent,
		TimeoutSeconds:    int(mediawiki.DefaultTimeout / time.Second),
		RequestsPerSecond: mediawiki.DefaultRequestsPerSecond,
		BatchConcurrency:  wiki.DefaultBatchConcurrency,
		Port:              DefaultPort,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from WIKIWALLY_* variables found by lookup.
// Pass os.LookupEnv in production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		c.APIURL = v
	}
	if v, ok := lookup(EnvUserAgent); ok && v != "" {
		c.UserAgent = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer number of seconds: %w", EnvTimeout, err)
		}
		c.TimeoutSeconds = n
	}
	if v, ok := lookup(EnvRPS); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config error: %s must be a number: %w", EnvRPS, err)
		}
		c.RequestsPerSecond = f
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %w", EnvPort, err)
		}
		c.Port = n
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIURL == "" {
		result.APIURL = defaults.APIURL
	}
	if result.UserAgent == "" {
		result.UserAgent = defaults.UserAgent
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}

	// Numeric fields: use default if zero
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.RequestsPerSecond == 0 {
		result.RequestsPerSecond = defaults.RequestsPerSecond
	}
	if result.BatchConcurrency == 0 {
		result.BatchConcurrency = defaults.BatchConcurrency
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ClientOptions returns the MediaWiki client options this config describes.
func (c *Config) ClientOptions() *mediawiki.Options {
	opts := mediawiki.DefaultOptions()
	if c.APIURL != "" {
		opts.APIURL = c.APIURL
	}
	if c.UserAgent != "" {
		opts.UserAgent = c.UserAgent
	}
	if c.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	}
	if c.RequestsPerSecond != 0 {
		opts.RequestsPerSecond = c.RequestsPerSecond
	}
	return opts
}

// ResolverConfig returns the resolver settings this config describes.
func (c *Config) ResolverConfig() *wiki.ResolverConfig {
	return &wiki.ResolverConfig{BatchConcurrency: c.BatchConcurrency}
}
