package ratelimit

import (
	"strconv"
	"time"
)

// EndpointConfig is the limit applied to one route. A Limit of zero or less
// leaves the route unlimited. Burst defaults to Limit when zero.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Environment variables read by LoadConfig.
const (
	EnvEnabled         = "WIKIWALLY_RATE_LIMIT_ENABLED"
	EnvDefaultLimit    = "WIKIWALLY_RATE_LIMIT_DEFAULT_LIMIT"
	EnvDefaultWindow   = "WIKIWALLY_RATE_LIMIT_DEFAULT_WINDOW"
	EnvCleanupInterval = "WIKIWALLY_RATE_LIMIT_CLEANUP_INTERVAL"
)

// LoadConfig builds the server rate limit configuration from variables found
// by lookup. Pass os.LookupEnv in production. Unset or unparsable values keep
// their defaults.
func LoadConfig(lookup func(string) (string, bool)) *Config {
	env := envReader(lookup)
	if !env.getBool(EnvEnabled, true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    env.getInt(EnvDefaultLimit, 300),
		DefaultWindow:   env.getDuration(EnvDefaultWindow, time.Minute),
		CleanupInterval: env.getDuration(EnvCleanupInterval, 5*time.Minute),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Random batches fan out to as many as ten article lookups.
		{Path: "/wiki/random", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},

		// Single lookups against the knowledge base.
		{Path: "/wiki/page", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/wiki/options", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},

		// Help uses the default limit; the health check is never limited.
	}
}

type envReader func(string) (string, bool)

func (r envReader) getInt(key string, def int) int {
	if v, ok := r(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (r envReader) getBool(key string, def bool) bool {
	if v, ok := r(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func (r envReader) getDuration(key string, def time.Duration) time.Duration {
	if v, ok := r(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
