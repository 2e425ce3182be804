package api

import (
	"github.com/JaimeStill/promptlab/internal/collections"
	"github.com/JaimeStill/promptlab/internal/config"
	"github.com/JaimeStill/promptlab/internal/prompts"
	"github.com/JaimeStill/promptlab/pkg/openapi"
)

// NewSpec builds the OpenAPI document for every API endpoint.
func NewSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.OpenAPI.Title, cfg.Version)
	cfg.OpenAPI.Apply(spec)

	base := cfg.API.BasePath
	spec.AddPaths(base, healthSpec)
	spec.AddPaths(base, prompts.Spec)
	spec.AddPaths(base, collections.Spec)

	return spec
}
