package render

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/veltaweb/velta/el"
	"github.com/veltaweb/velta/pkg/jsx"
)

var errTest = errors.New("render failed")

func TestPageDefaultContentType(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	if err := Page(w, r, el.Div(el.Text("hi"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ct := w.Header().Get("Content-Type")
	if !strings.HasPrefix(ct, "text/html") {
		t.Errorf("default content type must be text/html, got %q", ct)
	}
	if w.Code != 200 {
		t.Errorf("got status %d, want 200", w.Code)
	}
	if w.Body.String() != "<div>hi</div>" {
		t.Errorf("got body %q", w.Body.String())
	}
}

func TestPageHeaderOverride(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/feed", nil)

	err := Page(w, r, el.Div(), WithHeader("Content-Type", "application/xhtml+xml"), WithStatus(201))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/xhtml+xml" {
		t.Errorf("got %q", ct)
	}
	if w.Code != 201 {
		t.Errorf("got status %d", w.Code)
	}
}

func TestPageContextCarriesRequest(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/about?x=1", nil)

	whoami := jsx.Component(func(ctx *jsx.Context, props jsx.Props, children []jsx.Node) (jsx.Node, error) {
		return el.Span(el.Text(ctx.Path())), nil
	})

	if err := Page(w, r, jsx.E(whoami, nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Body.String() != "<span>/about</span>" {
		t.Errorf("got %q", w.Body.String())
	}
}

func TestPageErrorLeavesResponseUntouched(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	failing := jsx.Component(func(ctx *jsx.Context, props jsx.Props, children []jsx.Node) (jsx.Node, error) {
		return nil, errTest
	})

	err := Page(w, r, jsx.E(failing, nil))
	if err == nil {
		t.Fatal("expected render error")
	}
	if w.Body.Len() != 0 {
		t.Errorf("no body should be written on render error, got %q", w.Body.String())
	}
}

func TestPageDocumentShellParses(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	err := Page(w, r, el.Main(el.H1(el.Text("Welcome"))), WithDocument(Document{
		Title:        "Home",
		StyleSheets:  []string{"/public/styles.css"},
		Styles:       []string{".c{color:red}"},
		ClientScript: "/public/client.js",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := w.Body.String()
	if !strings.HasPrefix(body, "<!DOCTYPE html>") {
		t.Errorf("missing doctype: %q", body[:40])
	}
	if !strings.Contains(body, "<title>Home</title>") {
		t.Errorf("missing title")
	}
	if !strings.Contains(body, `<script src="/public/client.js" defer>`) {
		t.Errorf("missing client script")
	}

	// The document must be parseable markup end to end.
	if _, err := html.Parse(strings.NewReader(body)); err != nil {
		t.Fatalf("document does not parse: %v", err)
	}
}
