package config

import (
	"os"
	"runtime"
)

// Config contains runtime configuration for a csv2sfz run
type Config struct {
	Root      string // Root directory scanned for CSV sheets
	Jobs      int    // Number of concurrent file conversions
	Doctor    bool   // Probe sample WAV files and report instead of converting
	SentryDSN string // Sentry DSN for conversion telemetry (optional)
}

// FromEnv fills in the parts of the config that come from the environment
// and applies defaults.
func (c *Config) FromEnv() {
	if c.SentryDSN == "" {
		c.SentryDSN = os.Getenv("SENTRY_DSN")
	}
	if c.Jobs <= 0 {
		c.Jobs = runtime.NumCPU()
	}
}
