package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/promptlab/internal/config"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "0.1.0"

[server]
host = "0.0.0.0"
port = 8080
read_timeout = "1m"
write_timeout = "15m"
shutdown_timeout = "30s"

[api]
base_path = "/api"
max_body_size = "2MB"

[api.cors]
enabled = false

[api.pagination]
max_limit = 50

[api.rate_limit]
enabled = true
rps = 5.0
burst = 10

[logging]
level = "debug"
format = "json"

[metrics]
path = "/internal/metrics"

[openapi]
title = "PromptLab Test"
`

const overlayConfig = `
[server]
port = 9090

[logging]
level = "warn"
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("api base_path: got %s, want /api", cfg.API.BasePath)
	}
	if cfg.API.Pagination.MaxLimit != 50 {
		t.Errorf("pagination max_limit: got %d, want 50", cfg.API.Pagination.MaxLimit)
	}
	if !cfg.API.RateLimit.Enabled || cfg.API.RateLimit.RPS != 5 || cfg.API.RateLimit.Burst != 10 {
		t.Errorf("rate_limit: got %+v", cfg.API.RateLimit)
	}
	if cfg.Logging.SlogLevel() != slog.LevelDebug {
		t.Errorf("logging level: got %v, want debug", cfg.Logging.SlogLevel())
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("logging format: got %s, want json", cfg.Logging.Format)
	}
	if cfg.Metrics.Path != "/internal/metrics" {
		t.Errorf("metrics path: got %s", cfg.Metrics.Path)
	}
	if cfg.OpenAPI.Title != "PromptLab Test" {
		t.Errorf("openapi title: got %s", cfg.OpenAPI.Title)
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	writeConfig(t, dir, "config.staging.toml", overlayConfig)
	chdir(t, dir)

	t.Setenv(config.EnvPromptLabEnv, "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want 9090 (from overlay)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("logging level: got %s, want warn (from overlay)", cfg.Logging.Level)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("api base_path: got %s, want /api (from base)", cfg.API.BasePath)
	}
}

func TestLoadEnvVarOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	chdir(t, dir)

	t.Setenv(config.EnvPromptLabVersion, "2.0.0")
	t.Setenv(config.EnvServerPort, "3000")
	t.Setenv("PROMPTLAB_PAGINATION_MAX_LIMIT", "25")
	t.Setenv("PROMPTLAB_API_BASE_PATH", "/v1")
	t.Setenv(config.EnvLoggingFormat, "text")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Version != "2.0.0" {
		t.Errorf("version: got %s, want 2.0.0", cfg.Version)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("server port: got %d, want 3000", cfg.Server.Port)
	}
	if cfg.API.Pagination.MaxLimit != 25 {
		t.Errorf("pagination max_limit: got %d, want 25", cfg.API.Pagination.MaxLimit)
	}
	if cfg.API.BasePath != "/v1" {
		t.Errorf("api base_path: got %s, want /v1", cfg.API.BasePath)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("logging format: got %s, want text", cfg.Logging.Format)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.DotEnvFile, "PROMPTLAB_VERSION=9.9.9\nPROMPTLAB_SERVER_PORT=7070\n")
	chdir(t, dir)

	// godotenv never overrides variables that are already set.
	t.Setenv(config.EnvServerPort, "6060")
	t.Cleanup(func() { os.Unsetenv(config.EnvPromptLabVersion) })

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Version != "9.9.9" {
		t.Errorf("version: got %s, want 9.9.9 (from .env)", cfg.Version)
	}
	if cfg.Server.Port != 6060 {
		t.Errorf("server port: got %d, want 6060 (environment wins)", cfg.Server.Port)
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load without config.toml failed: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("server port default: got %d, want 8000", cfg.Server.Port)
	}
	if d := cfg.Server.ReadHeaderTimeoutDuration(); d != 5*time.Second {
		t.Errorf("read header timeout default: got %v, want 5s", d)
	}
	if d := cfg.Server.IdleTimeoutDuration(); d != 2*time.Minute {
		t.Errorf("idle timeout default: got %v, want 2m", d)
	}
	if cfg.API.BasePath != "" {
		t.Errorf("api base_path default: got %q, want root", cfg.API.BasePath)
	}
	if cfg.Version != "0.1.0" {
		t.Errorf("version default: got %s, want 0.1.0", cfg.Version)
	}
	if cfg.API.Pagination.MaxLimit != 100 {
		t.Errorf("pagination max_limit default: got %d, want 100", cfg.API.Pagination.MaxLimit)
	}
	if cfg.API.RateLimit.Enabled {
		t.Error("rate limit should be disabled by default")
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("metrics path default: got %s", cfg.Metrics.Path)
	}
	if cfg.Logging.File != "" {
		t.Errorf("logging file default: got %q, want none", cfg.Logging.File)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, `[server`)
	chdir(t, dir)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestEnv(t *testing.T) {
	cfg := &config.Config{}
	if cfg.Env() != "local" {
		t.Errorf("env: got %s, want local", cfg.Env())
	}

	t.Setenv(config.EnvPromptLabEnv, "production")
	if cfg.Env() != "production" {
		t.Errorf("env: got %s, want production", cfg.Env())
	}
}

func TestDurations(t *testing.T) {
	cfg, err := config.Parse([]byte(baseConfig))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if d := cfg.ShutdownTimeoutDuration(); d != 30*time.Second {
		t.Errorf("shutdown timeout: got %v, want 30s", d)
	}
	if d := cfg.Server.ReadTimeoutDuration(); d != time.Minute {
		t.Errorf("read timeout: got %v, want 1m", d)
	}
	if d := cfg.Server.WriteTimeoutDuration(); d != 15*time.Minute {
		t.Errorf("write timeout: got %v, want 15m", d)
	}
	if addr := cfg.Server.Addr(); addr != "0.0.0.0:8080" {
		t.Errorf("addr: got %s, want 0.0.0.0:8080", addr)
	}
}

func TestMaxBodySizeBytes(t *testing.T) {
	tests := []struct {
		name string
		size string
		want int64
	}{
		{"valid 2MB", "2MB", 2 * 1024 * 1024},
		{"valid 512KB", "512KB", 512 * 1024},
		{"invalid falls back to 1MB", "bad", 1024 * 1024},
		{"empty falls back to 1MB", "", 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.APIConfig{MaxBodySize: tt.size}
			if got := cfg.MaxBodySizeBytes(); got != tt.want {
				t.Errorf("MaxBodySizeBytes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base, err := config.Parse([]byte(baseConfig))
	if err != nil {
		t.Fatalf("parse base: %v", err)
	}
	overlay, err := config.Parse([]byte(overlayConfig))
	if err != nil {
		t.Fatalf("parse overlay: %v", err)
	}

	base.Merge(overlay)

	if base.Server.Port != 9090 {
		t.Errorf("server port: got %d, want 9090", base.Server.Port)
	}
	if base.Server.Host != "0.0.0.0" {
		t.Errorf("server host: got %s, want unchanged", base.Server.Host)
	}
	if base.API.MaxBodySize != "2MB" {
		t.Errorf("max_body_size: got %s, want unchanged", base.API.MaxBodySize)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{
			name:    "invalid port",
			config:  "[server]\nport = 99999\n",
			wantErr: "invalid port",
		},
		{
			name:    "invalid read_timeout",
			config:  "[server]\nread_timeout = \"bad\"\n",
			wantErr: "invalid read_timeout",
		},
		{
			name:    "negative idle_timeout",
			config:  "[server]\nidle_timeout = \"-1s\"\n",
			wantErr: "invalid idle_timeout",
		},
		{
			name:    "invalid shutdown_timeout",
			config:  "shutdown_timeout = \"soon\"\n",
			wantErr: "invalid shutdown_timeout",
		},
		{
			name:    "invalid max_body_size",
			config:  "[api]\nmax_body_size = \"huge\"\n",
			wantErr: "invalid max_body_size",
		},
		{
			name:    "invalid log level",
			config:  "[logging]\nlevel = \"loud\"\n",
			wantErr: "invalid level",
		},
		{
			name:    "invalid log format",
			config:  "[logging]\nformat = \"xml\"\n",
			wantErr: "invalid format",
		},
		{
			name:    "invalid metrics path",
			config:  "[metrics]\npath = \"metrics\"\n",
			wantErr: "invalid path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tt.config))
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}

			err = cfg.Finalize()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestServerTimeouts(t *testing.T) {
	base := &config.ServerConfig{ReadTimeout: "10s", IdleTimeout: "1m"}
	base.Merge(&config.ServerConfig{IdleTimeout: "90s"})

	t.Setenv(config.EnvServerReadHeaderTimeout, "2s")
	if err := base.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if d := base.ReadTimeoutDuration(); d != 10*time.Second {
		t.Errorf("read timeout: got %v, want 10s", d)
	}
	if d := base.IdleTimeoutDuration(); d != 90*time.Second {
		t.Errorf("idle timeout: got %v, want 90s", d)
	}
	if d := base.ReadHeaderTimeoutDuration(); d != 2*time.Second {
		t.Errorf("read header timeout: got %v, want 2s", d)
	}
	if d := base.WriteTimeoutDuration(); d != 30*time.Second {
		t.Errorf("write timeout default: got %v, want 30s", d)
	}
}
