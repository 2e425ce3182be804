package config

import (
	"fmt"
	"os"
	"strings"
)

const EnvMetricsPath = "PROMPTLAB_METRICS_PATH"

// MetricsConfig controls where Prometheus metrics are exposed.
type MetricsConfig struct {
	Path string `toml:"path"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *MetricsConfig) Finalize() error {
	if c.Path == "" {
		c.Path = "/metrics"
	}
	if v := os.Getenv(EnvMetricsPath); v != "" {
		c.Path = v
	}
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("invalid path %q: must start with /", c.Path)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *MetricsConfig) Merge(overlay *MetricsConfig) {
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
}
