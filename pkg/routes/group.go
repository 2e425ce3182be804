package routes

import "net/http"

// Group shares a path prefix across its routes and nested groups.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Registrar accepts handler registrations. *http.ServeMux and *Mux satisfy it.
type Registrar interface {
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
}

// Register adds every route in groups to mux and returns the registered
// patterns in declaration order, parents before children.
func Register(mux Registrar, groups ...Group) []string {
	var patterns []string
	for _, group := range groups {
		group.walk("", func(pattern string, route Route) {
			mux.HandleFunc(pattern, route.Handler)
			patterns = append(patterns, pattern)
		})
	}
	return patterns
}

func (g Group) walk(parent string, fn func(string, Route)) {
	prefix := parent + g.Prefix
	for _, route := range g.Routes {
		fn(route.pattern(prefix), route)
	}
	for _, child := range g.Children {
		child.walk(prefix, fn)
	}
}
