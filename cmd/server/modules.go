package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JaimeStill/promptlab/internal/api"
	"github.com/JaimeStill/promptlab/internal/config"
	"github.com/JaimeStill/promptlab/internal/infrastructure"
	"github.com/JaimeStill/promptlab/pkg/handlers"
	"github.com/JaimeStill/promptlab/pkg/middleware"
	"github.com/JaimeStill/promptlab/pkg/module"
	"github.com/JaimeStill/promptlab/web/scalar"
)

type Modules struct {
	API    *module.Module
	Scalar *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	scalarModule := scalar.NewModule("/docs", cfg.API.BasePath+"/openapi.json")
	scalarModule.Use(middleware.Logger(infra.Logger))

	return &Modules{
		API:    apiModule,
		Scalar: scalarModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.Scalar)
}

type status struct {
	Status  string   `json:"status"`
	Version string   `json:"version,omitempty"`
	Pending []string `json:"pending,omitempty"`
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, status{Status: "ok", Version: cfg.Version})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if pending := infra.Lifecycle.Pending(); len(pending) > 0 {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, status{Status: "not ready", Pending: pending})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, status{Status: "ready"})
	})

	metricsHandler := promhttp.HandlerFor(infra.Registry, promhttp.HandlerOpts{})
	router.HandleNative("GET "+cfg.Metrics.Path, metricsHandler.ServeHTTP)

	return router
}
