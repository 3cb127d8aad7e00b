// Package velta is the top-level entry point of the framework. It
// re-exports the pieces an application touches directly; the packages
// under pkg/ remain importable on their own.
//
// A minimal application:
//
//	rt := velta.NewRouter("/static")
//	rt.Register("/", func(ctx *velta.Context, props velta.Props, children []velta.Node) (velta.Node, error) {
//		return el.H1(el.Text("hello")), nil
//	})
//	h := velta.NewServer(server.Config{}, rt)
//	http.ListenAndServe(":3000", h)
package velta

import (
	"net/http"

	"github.com/veltaweb/velta/pkg/jsx"
	"github.com/veltaweb/velta/pkg/render"
	"github.com/veltaweb/velta/pkg/router"
	"github.com/veltaweb/velta/pkg/server"
)

// Core element model types.
type (
	Node      = jsx.Node
	Props     = jsx.Props
	Attr      = jsx.Attr
	Element   = jsx.Element
	Component = jsx.Component
	Context   = jsx.Context
	Raw       = jsx.Raw
)

// Document is the HTML shell pages render into.
type Document = render.Document

// RenderToString renders a node tree to HTML.
func RenderToString(ctx *Context, node Node) (string, error) {
	return render.RenderToString(ctx, node)
}

// Page renders a node tree and writes it as an HTTP response.
func Page(w http.ResponseWriter, r *http.Request, node Node, opts ...render.PageOption) error {
	return render.Page(w, r, node, opts...)
}

// NewRouter creates a page router. staticPrefix is the reserved asset
// namespace, may be empty.
func NewRouter(staticPrefix string) *router.Router {
	return router.New(staticPrefix)
}

// NewServer builds the HTTP handler serving the router's pages, static
// assets, and the live channel.
func NewServer(cfg server.Config, rt *router.Router, opts ...server.Option) *server.Handler {
	return server.New(cfg, rt, opts...)
}
