package jsx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
)

// Context is the request-scoped environment threaded through every
// render call. It is created once per incoming request, passed by
// reference down the tree, and never mutated by the renderer itself.
// Components may stash values on it for their descendants.
type Context struct {
	request *http.Request
	logger  *slog.Logger
	params  map[string]string

	// values may be written by components while sibling subtrees render
	// on other goroutines.
	valuesMu sync.RWMutex
	values   map[any]any
}

// NewContext creates a render context for a request. A nil request is
// allowed for tests and offline rendering.
func NewContext(r *http.Request) *Context {
	return &Context{
		request: r,
		values:  make(map[any]any),
	}
}

// WithLogger sets the logger components see via Logger().
func (c *Context) WithLogger(l *slog.Logger) *Context {
	c.logger = l
	return c
}

// WithParams sets the route parameters from the matched route.
func (c *Context) WithParams(params map[string]string) *Context {
	c.params = params
	return c
}

// Request returns the originating request, or nil outside a request.
func (c *Context) Request() *http.Request { return c.request }

// Path returns the request path, or "" outside a request.
func (c *Context) Path() string {
	if c.request == nil {
		return ""
	}
	return c.request.URL.Path
}

// Query returns the request query values.
func (c *Context) Query() url.Values {
	if c.request == nil {
		return url.Values{}
	}
	return c.request.URL.Query()
}

// Param returns a route parameter from the matched route.
func (c *Context) Param(key string) string { return c.params[key] }

// Logger returns the context logger, falling back to slog.Default.
func (c *Context) Logger() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

// SetValue stores a request-scoped value. Components use this to pass
// data to descendants; the renderer never calls it.
func (c *Context) SetValue(key, value any) {
	c.valuesMu.Lock()
	c.values[key] = value
	c.valuesMu.Unlock()
}

// Value returns a stored request-scoped value, or nil.
func (c *Context) Value(key any) any {
	c.valuesMu.RLock()
	defer c.valuesMu.RUnlock()
	return c.values[key]
}

// StdContext returns the request's context.Context, or Background
// outside a request. Deferred nodes and lazy components receive this.
func (c *Context) StdContext() context.Context {
	if c.request == nil {
		return context.Background()
	}
	return c.request.Context()
}
