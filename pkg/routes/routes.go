// Package routes provides declarative route registration for http.ServeMux.
package routes

import "net/http"

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group collects routes under a shared path prefix.
type Group struct {
	Prefix string
	Routes []Route
}

// Register adds every route from the given groups to the mux,
// prefixing each pattern with its group prefix.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, g := range groups {
		for _, r := range g.Routes {
			mux.HandleFunc(r.Method+" "+g.Prefix+r.Pattern, r.Handler)
		}
	}
}
