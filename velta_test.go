package velta

import (
	"strings"
	"testing"

	"github.com/veltaweb/velta/el"
)

func TestRenderToStringFacade(t *testing.T) {
	page := func(ctx *Context, props Props, children []Node) (Node, error) {
		return el.Main(
			el.H1(el.Text("Welcome")),
			el.P(el.Class("lead"), el.Text("Rendered on the server.")),
		), nil
	}

	html, err := RenderToString(nil, Component(page))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "<h1>Welcome</h1>") {
		t.Errorf("html = %q", html)
	}
	if !strings.Contains(html, `<p class="lead">Rendered on the server.</p>`) {
		t.Errorf("html = %q", html)
	}
}

func TestRouterFacadeReservesNamespaces(t *testing.T) {
	page := func(ctx *Context, props Props, children []Node) (Node, error) {
		return nil, nil
	}

	rt := NewRouter("/static")
	if err := rt.Register("/_velta/live", page); err == nil {
		t.Error("reserved pattern accepted")
	}
	if err := rt.Register("/static/app.css", page); err == nil {
		t.Error("static pattern accepted")
	}
}
