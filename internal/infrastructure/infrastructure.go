// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, storage, metrics) that domain systems require.
package infrastructure

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/JaimeStill/promptlab/internal/config"
	"github.com/JaimeStill/promptlab/internal/storage"
	"github.com/JaimeStill/promptlab/pkg/ident"
	"github.com/JaimeStill/promptlab/pkg/lifecycle"
	"github.com/JaimeStill/promptlab/pkg/metrics"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, in-memory storage, and metrics.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Storage   *storage.Storage
	Metrics   *metrics.Metrics
	Registry  *prometheus.Registry

	logFile io.Closer
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger, logFile := NewLogger(&cfg.Logging, os.Stderr)

	store := storage.New(ident.NewClock(), logger)

	m := metrics.New()
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.Register(reg, store)

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Storage:   store,
		Metrics:   m,
		Registry:  reg,
		logFile:   logFile,
	}, nil
}

// NewLogger builds the root logger described by cfg, writing to w.
// When cfg.File is set, output is also written to a rotating file whose
// closer is returned; otherwise the closer is nil.
func NewLogger(cfg *config.LoggingConfig, w io.Writer) (*slog.Logger, io.Closer) {
	var closer io.Closer
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		w = io.MultiWriter(w, rotator)
		closer = rotator
	}

	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), closer
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	i.Lifecycle.OnStartup(func() {
		prompts, collections := i.Storage.Counts()
		i.Logger.Info("storage ready", "prompts", prompts, "collections", collections)
	})

	i.Lifecycle.OnShutdown(func() {
		<-i.Lifecycle.Context().Done()
		prompts, collections := i.Storage.Counts()
		i.Logger.Info("storage released", "prompts", prompts, "collections", collections)
	})

	if i.logFile != nil {
		i.Lifecycle.OnClose("log file", i.logFile)
	}

	return nil
}
