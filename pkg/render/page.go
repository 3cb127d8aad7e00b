package render

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/veltaweb/velta/pkg/jsx"
)

// DefaultContentType is written when no page option overrides it.
const DefaultContentType = "text/html; charset=UTF-8"

// PageOptions control the response around a rendered tree.
type PageOptions struct {
	// Status is the response status code. Defaults to 200.
	Status int

	// Headers are set verbatim on the response. A Content-Type entry
	// here overrides the text/html default.
	Headers http.Header

	// Doc, when set, wraps the rendered tree in a full HTML document.
	Doc *Document

	// Context overrides the request-derived render context. Used by the
	// server layer to attach i18n and route params before rendering.
	Context *jsx.Context
}

// PageOption mutates PageOptions.
type PageOption func(*PageOptions)

// WithStatus sets the response status code.
func WithStatus(code int) PageOption {
	return func(o *PageOptions) { o.Status = code }
}

// WithHeader adds a response header.
func WithHeader(key, value string) PageOption {
	return func(o *PageOptions) {
		if o.Headers == nil {
			o.Headers = http.Header{}
		}
		o.Headers.Set(key, value)
	}
}

// WithDocument wraps the tree in a document shell.
func WithDocument(doc Document) PageOption {
	return func(o *PageOptions) { o.Doc = &doc }
}

// WithContext supplies a prepared render context.
func WithContext(ctx *jsx.Context) PageOption {
	return func(o *PageOptions) { o.Context = ctx }
}

// Page renders node and writes it as an HTTP response. The render
// context carries the originating request; the request itself is never
// mutated. Rendering happens before any byte is written, so a component
// error leaves the response untouched for the caller's error boundary.
func Page(w http.ResponseWriter, r *http.Request, node jsx.Node, opts ...PageOption) error {
	options := PageOptions{Status: http.StatusOK}
	for _, opt := range opts {
		opt(&options)
	}

	ctx := options.Context
	if ctx == nil {
		ctx = jsx.NewContext(r)
	}

	body, err := RenderToString(ctx, node)
	if err != nil {
		return err
	}

	var html string
	if options.Doc != nil {
		html = options.Doc.wrap(body)
	} else {
		html = body
	}

	for key, values := range options.Headers {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", DefaultContentType)
	}
	w.WriteHeader(options.Status)
	_, err = w.Write([]byte(html))
	return err
}

// Document is the HTML shell around a rendered page body.
type Document struct {
	// Lang is the html element language. Defaults to "en".
	Lang string

	// Title is the page title.
	Title string

	// Meta are additional meta tags.
	Meta []MetaTag

	// StyleSheets are external stylesheet paths.
	StyleSheets []string

	// Styles are inline style fragments, including component CSS
	// collected by the reactive runtime.
	Styles []string

	// Scripts are script tags emitted at the end of the body.
	Scripts []ScriptTag

	// ClientScript is the path of the thin client bundle. Empty means
	// no client runtime is injected.
	ClientScript string
}

// MetaTag is a meta element in the document head.
type MetaTag struct {
	Name     string
	Property string
	Content  string
}

// ScriptTag is a script element.
type ScriptTag struct {
	Src    string
	Module bool
	Defer  bool
	Inline string
}

// wrap builds the full document around the rendered body.
func (d *Document) wrap(body string) string {
	lang := d.Lang
	if lang == "" {
		lang = "en"
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&sb, `<html lang="%s">`+"\n", escapeAttr(lang))
	sb.WriteString("<head>\n")
	sb.WriteString(`  <meta charset="utf-8">` + "\n")
	sb.WriteString(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	if d.Title != "" {
		fmt.Fprintf(&sb, "  <title>%s</title>\n", escapeHTML(d.Title))
	}
	for _, m := range d.Meta {
		sb.WriteString("  <meta")
		if m.Name != "" {
			fmt.Fprintf(&sb, ` name="%s"`, escapeAttr(m.Name))
		}
		if m.Property != "" {
			fmt.Fprintf(&sb, ` property="%s"`, escapeAttr(m.Property))
		}
		if m.Content != "" {
			fmt.Fprintf(&sb, ` content="%s"`, escapeAttr(m.Content))
		}
		sb.WriteString(">\n")
	}
	for _, href := range d.StyleSheets {
		fmt.Fprintf(&sb, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href))
	}
	for _, style := range d.Styles {
		fmt.Fprintf(&sb, "  <style>%s</style>\n", style)
	}
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(body)
	sb.WriteString("\n")
	for _, s := range d.Scripts {
		sb.WriteString("<script")
		if s.Src != "" {
			fmt.Fprintf(&sb, ` src="%s"`, escapeAttr(s.Src))
		}
		if s.Module {
			sb.WriteString(` type="module"`)
		}
		if s.Defer {
			sb.WriteString(" defer")
		}
		sb.WriteString(">")
		sb.WriteString(s.Inline)
		sb.WriteString("</script>\n")
	}
	if d.ClientScript != "" {
		fmt.Fprintf(&sb, `<script src="%s" defer></script>`+"\n", escapeAttr(d.ClientScript))
	}
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}
