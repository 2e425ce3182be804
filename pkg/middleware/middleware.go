// Package middleware provides the HTTP middleware stack and the middleware
// the service mounts on it: request logging, recovery, CORS, metrics, rate
// limiting, and request body limits.
package middleware

import (
	"net/http"
	"slices"
)

// System is an ordered middleware stack. The first middleware added is the
// outermost when applied.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
	Len() int
}

type stack []func(http.Handler) http.Handler

// New creates a System holding mws in order.
func New(mws ...func(http.Handler) http.Handler) System {
	s := make(stack, 0, len(mws))
	s = append(s, mws...)
	return &s
}

func (s *stack) Use(mw func(http.Handler) http.Handler) {
	*s = append(*s, mw)
}

func (s *stack) Apply(handler http.Handler) http.Handler {
	for _, mw := range slices.Backward(*s) {
		handler = mw(handler)
	}
	return handler
}

func (s *stack) Len() int {
	return len(*s)
}
