package api

import (
	"net/http"

	"github.com/JaimeStill/promptlab/pkg/handlers"
	"github.com/JaimeStill/promptlab/pkg/openapi"
	"github.com/JaimeStill/promptlab/pkg/routes"
)

// Health is the body of the health check response.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type healthHandler struct {
	version string
}

func (h *healthHandler) routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/health", Handler: h.check},
		},
	}
}

func (h *healthHandler) check(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Health{
		Status:  "healthy",
		Version: h.version,
	})
}

var healthSpec = openapi.PathOperations{
	Paths: map[string]*openapi.PathItem{
		"/health": {
			Get: &openapi.Operation{
				Summary: "Health check",
				Tags:    []string{"Health"},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Service is healthy", "Health"),
				},
			},
		},
	},
	Schemas: map[string]*openapi.Schema{
		"Health": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"status":  {Type: "string", Example: "healthy"},
				"version": {Type: "string"},
			},
			Required: []string{"status", "version"},
		},
	},
}
