// Package scalar serves the Scalar API reference UI for the generated OpenAPI document.
package scalar

import (
	"embed"
	"net/http"

	"github.com/JaimeStill/promptlab/pkg/module"
	"github.com/JaimeStill/promptlab/pkg/routes"
	"github.com/JaimeStill/promptlab/pkg/web"
)

//go:embed index.html
var staticFS embed.FS

// NewModule creates a module that serves the Scalar API reference UI at basePath,
// reading the OpenAPI document from specURL.
func NewModule(basePath, specURL string) *module.Module {
	router := buildRouter(basePath, specURL)
	return module.New(basePath, router)
}

func buildRouter(basePath, specURL string) http.Handler {
	mux := routes.NewMux()

	page := web.MustPage(staticFS, "index.html", map[string]string{
		"BasePath": basePath,
		"SpecURL":  specURL,
	})
	mux.Handle("GET /{$}", page)

	return mux
}
