package module

import (
	"net/http"
	"strings"

	"github.com/JaimeStill/promptlab/pkg/routes"
)

// Router dispatches requests to mounted modules by path prefix.
// Unmatched paths go to the native mux when it has a matching pattern,
// and to the root module otherwise. Without a root module the native mux
// answers misses with a JSON 404 or 405.
type Router struct {
	modules map[string]*Module
	root    *Module
	native  *routes.Mux
}

// NewRouter creates a Router with an empty module map and native fallback mux.
func NewRouter() *Router {
	return &Router{
		modules: make(map[string]*Module),
		native:  routes.NewMux(),
	}
}

// HandleNative registers a handler on the native fallback mux.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount registers a module to handle requests matching its prefix.
// A root module handles every request no other module or native pattern claims.
func (r *Router) Mount(m *Module) {
	if m.Root() {
		r.root = m
		return
	}
	r.modules[m.prefix] = m
}

// ServeHTTP dispatches to the matching module, the native mux, or the root module.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := normalizePath(req)
	prefix := extractPrefix(path)

	if m, ok := r.modules[prefix]; ok {
		m.Serve(w, req)
		return
	}

	if r.root != nil {
		if _, pattern := r.native.Handler(req); pattern == "" {
			r.root.Serve(w, req)
			return
		}
	}

	r.native.ServeHTTP(w, req)
}

func extractPrefix(path string) string {
	parts := strings.SplitN(path, "/", 3)
	if len(parts) >= 2 {
		return "/" + parts[1]
	}
	return path
}

func normalizePath(req *http.Request) string {
	path := req.URL.Path
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
		req.URL.Path = path
	}
	return path
}
