package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/promptlab/pkg/formatting"
	"github.com/JaimeStill/promptlab/pkg/middleware"
	"github.com/JaimeStill/promptlab/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "PROMPTLAB_CORS_ENABLED",
	Origins:          "PROMPTLAB_CORS_ORIGINS",
	AllowedMethods:   "PROMPTLAB_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "PROMPTLAB_CORS_ALLOWED_HEADERS",
	AllowCredentials: "PROMPTLAB_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "PROMPTLAB_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	MaxLimit: "PROMPTLAB_PAGINATION_MAX_LIMIT",
}

var rateLimitEnv = &middleware.RateLimitEnv{
	Enabled:     "PROMPTLAB_RATE_LIMIT_ENABLED",
	RPS:         "PROMPTLAB_RATE_LIMIT_RPS",
	Burst:       "PROMPTLAB_RATE_LIMIT_BURST",
	IdleTimeout: "PROMPTLAB_RATE_LIMIT_IDLE_TIMEOUT",
}

// APIConfig holds API routing, body limits, CORS, pagination, and rate limit settings.
type APIConfig struct {
	BasePath    string                     `toml:"base_path"`
	MaxBodySize string                     `toml:"max_body_size"`
	CORS        middleware.CORSConfig      `toml:"cors"`
	Pagination  pagination.Config          `toml:"pagination"`
	RateLimit   middleware.RateLimitConfig `toml:"rate_limit"`
}

// MaxBodySizeBytes returns MaxBodySize as a byte count.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return 1024 * 1024 // 1MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.RateLimit.Finalize(rateLimitEnv); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.RateLimit.Merge(&overlay.RateLimit)
}

func (c *APIConfig) loadDefaults() {
	// base_path stays empty so the API is served from the root.
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("PROMPTLAB_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("PROMPTLAB_API_MAX_BODY_SIZE"); v != "" {
		c.MaxBodySize = v
	}
}

func (c *APIConfig) validate() error {
	if _, err := formatting.ParseBytes(c.MaxBodySize); err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	return nil
}
