package api

import (
	"fmt"
	"slices"
	"strings"

	"github.com/JaimeStill/promptlab/internal/config"
	"github.com/JaimeStill/promptlab/pkg/openapi"
	"github.com/JaimeStill/promptlab/pkg/routes"
)

func registerRoutes(
	mux *routes.Mux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) error {
	spec := NewSpec(cfg)
	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return fmt.Errorf("marshal openapi spec: %w", err)
	}

	health := &healthHandler{version: cfg.Version}

	patterns := routes.Register(
		mux,
		health.routes(),
		domain.Prompts.Handler().Routes(),
		domain.Collections.Handler().Routes(),
	)

	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	documented := spec.Operations()
	for _, pattern := range patterns {
		method, path, _ := strings.Cut(pattern, " ")
		if !slices.Contains(documented, method+" "+cfg.API.BasePath+path) {
			runtime.Logger.Warn("route missing from openapi document", "route", pattern)
		}
	}

	runtime.Logger.Debug(
		"routes registered",
		"base_path", cfg.API.BasePath,
		"routes", len(patterns)+1,
	)
	return nil
}
