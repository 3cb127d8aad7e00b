// Package router is the route boundary of the framework. Pages are
// registered against URL patterns and mounted onto a chi mux; the
// render core never matches paths itself, it only consumes the
// MatchedRoute handed to it.
package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/veltaweb/velta/pkg/jsx"
)

// ReservedPrefix is the path namespace the framework keeps for itself:
// the live channel, client bundles, health and metrics endpoints.
const ReservedPrefix = "/_velta"

// Route is a registered page route.
type Route struct {
	// Pattern is the chi URL pattern: /users/{id}.
	Pattern string

	// Component renders the page.
	Component jsx.Component
}

// MatchedRoute is what the server receives for a request that matched
// a page route.
type MatchedRoute struct {
	Pattern   string
	Params    map[string]string
	Component jsx.Component
}

// ServeFunc renders a matched route to a response.
type ServeFunc func(w http.ResponseWriter, r *http.Request, m MatchedRoute)

// Router collects page routes and mounts them.
type Router struct {
	staticPrefix string
	routes       []Route
	patterns     map[string]struct{}
}

// New creates a router. staticPrefix is the additional reserved
// namespace used for static assets, may be empty.
func New(staticPrefix string) *Router {
	return &Router{
		staticPrefix: staticPrefix,
		patterns:     map[string]struct{}{},
	}
}

// Register adds a page route. Patterns must be absolute, unique, and
// outside the reserved namespaces.
func (rt *Router) Register(pattern string, c jsx.Component) error {
	if !strings.HasPrefix(pattern, "/") {
		return fmt.Errorf("router: pattern %q must start with /", pattern)
	}
	if c == nil {
		return fmt.Errorf("router: pattern %q has no component", pattern)
	}
	if rt.IsReserved(pattern) {
		return fmt.Errorf("router: pattern %q is inside a reserved namespace", pattern)
	}
	if _, dup := rt.patterns[pattern]; dup {
		return fmt.Errorf("router: pattern %q already registered", pattern)
	}

	rt.patterns[pattern] = struct{}{}
	rt.routes = append(rt.routes, Route{Pattern: pattern, Component: c})
	return nil
}

// IsReserved reports whether a pattern collides with the framework's
// own namespaces.
func (rt *Router) IsReserved(pattern string) bool {
	if pattern == ReservedPrefix || strings.HasPrefix(pattern, ReservedPrefix+"/") {
		return true
	}
	if rt.staticPrefix != "" {
		if pattern == rt.staticPrefix || strings.HasPrefix(pattern, rt.staticPrefix+"/") {
			return true
		}
	}
	return false
}

// Routes returns the registered routes in registration order.
func (rt *Router) Routes() []Route {
	out := make([]Route, len(rt.routes))
	copy(out, rt.routes)
	return out
}

// Mount attaches every registered route to the mux. Matching is chi's;
// the serve function receives the resolved MatchedRoute.
func (rt *Router) Mount(mux chi.Router, serve ServeFunc) {
	for _, route := range rt.routes {
		route := route
		mux.Get(route.Pattern, func(w http.ResponseWriter, r *http.Request) {
			serve(w, r, MatchedRoute{
				Pattern:   route.Pattern,
				Params:    urlParams(r),
				Component: route.Component,
			})
		})
	}
}

// urlParams extracts chi's URL parameters into a plain map.
func urlParams(r *http.Request) map[string]string {
	params := map[string]string{}
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return params
	}
	for i, key := range rctx.URLParams.Keys {
		params[key] = rctx.URLParams.Values[i]
	}
	return params
}
