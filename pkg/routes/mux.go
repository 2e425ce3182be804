package routes

import (
	"net/http"

	"github.com/JaimeStill/promptlab/pkg/handlers"
)

// Mux is an http.ServeMux whose 404 and 405 replies are JSON
// {"detail": ...} bodies rather than plain text.
type Mux struct {
	*http.ServeMux
}

// NewMux creates an empty Mux.
func NewMux() *Mux {
	return &Mux{ServeMux: http.NewServeMux()}
}

// ServeHTTP dispatches matched requests through the ServeMux. For unmatched
// requests it keeps the ServeMux's status and Allow header and replaces the body.
func (m *Mux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h, pattern := m.Handler(r)
	if pattern != "" {
		m.ServeMux.ServeHTTP(w, r)
		return
	}

	miss := &missWriter{header: make(http.Header), status: http.StatusNotFound}
	h.ServeHTTP(miss, r)

	if allow := miss.header.Get("Allow"); allow != "" {
		w.Header().Set("Allow", allow)
	}
	handlers.RespondJSON(w, miss.status, handlers.ErrorResponse{
		Detail: http.StatusText(miss.status),
	})
}

// missWriter captures the status and headers of the ServeMux's own
// not-found and method-not-allowed handlers and discards their body.
type missWriter struct {
	header http.Header
	status int
}

func (w *missWriter) Header() http.Header         { return w.header }
func (w *missWriter) Write(b []byte) (int, error) { return len(b), nil }
func (w *missWriter) WriteHeader(status int)      { w.status = status }
