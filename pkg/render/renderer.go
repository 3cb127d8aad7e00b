package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/veltaweb/velta/pkg/jsx"
)

// RenderToString renders an element tree to HTML. The context defaults
// to an empty one when nil so trees can render outside a request.
//
// Every call re-executes the full subtree; there is no render cache.
// Errors from component functions propagate unhandled.
func RenderToString(ctx *jsx.Context, node jsx.Node) (string, error) {
	if ctx == nil {
		ctx = jsx.NewContext(nil)
	}
	var sb strings.Builder
	if err := renderNode(ctx, &sb, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderToWriter renders an element tree to the given writer.
func RenderToWriter(ctx *jsx.Context, w io.Writer, node jsx.Node) error {
	if ctx == nil {
		ctx = jsx.NewContext(nil)
	}
	return renderNode(ctx, w, node)
}

// renderNode dispatches on the node shape.
func renderNode(ctx *jsx.Context, w io.Writer, node jsx.Node) error {
	switch v := node.(type) {
	case nil:
		return nil
	case string:
		_, err := io.WriteString(w, escapeHTML(v))
		return err
	case jsx.Raw:
		_, err := io.WriteString(w, string(v))
		return err
	case int:
		_, err := io.WriteString(w, strconv.Itoa(v))
		return err
	case int64:
		_, err := io.WriteString(w, strconv.FormatInt(v, 10))
		return err
	case float64:
		_, err := io.WriteString(w, strconv.FormatFloat(v, 'g', -1, 64))
		return err
	case bool:
		// Booleans render as nothing so `cond && node` style children
		// can pass through.
		return nil
	case *jsx.Element:
		return renderElement(ctx, w, v)
	case jsx.Element:
		return renderElement(ctx, w, &v)
	case jsx.Deferred:
		resolved, err := v(ctx.StdContext())
		if err != nil {
			return err
		}
		return renderNode(ctx, w, resolved)
	case jsx.Component:
		return renderElement(ctx, w, &jsx.Element{Type: v})
	case func(ctx *jsx.Context, props jsx.Props, children []jsx.Node) (jsx.Node, error):
		return renderElement(ctx, w, &jsx.Element{Type: jsx.Component(v)})
	case []jsx.Node:
		return renderChildren(ctx, w, v)
	case []*jsx.Element:
		children := make([]jsx.Node, len(v))
		for i, e := range v {
			children[i] = e
		}
		return renderChildren(ctx, w, children)
	default:
		return fmt.Errorf("render: invalid node type %T", node)
	}
}

// renderElement resolves the element type and emits markup.
func renderElement(ctx *jsx.Context, w io.Writer, e *jsx.Element) error {
	typ := e.Type
	if lazy, ok := typ.(jsx.LazyComponent); ok {
		resolved, err := lazy(ctx.StdContext())
		if err != nil {
			return err
		}
		typ = resolved
	}

	switch t := typ.(type) {
	case jsx.Component:
		result, err := t(ctx, e.Props, e.Children)
		if err != nil {
			return err
		}
		// A string or numeric result is terminal: it renders as text
		// with no wrapping tag. Anything else recurses, so components
		// may return components transparently.
		return renderNode(ctx, w, result)

	case func(ctx *jsx.Context, props jsx.Props, children []jsx.Node) (jsx.Node, error):
		return renderElement(ctx, w, &jsx.Element{Type: jsx.Component(t), Props: e.Props, Children: e.Children})

	case string:
		if _, err := fmt.Fprintf(w, "<%s", t); err != nil {
			return err
		}
		if err := writeAttrs(w, e.Props); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if isVoidElement(t) {
			return nil
		}
		if err := renderChildren(ctx, w, e.Children); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "</%s>", t)
		return err

	default:
		return fmt.Errorf("render: element type must be a tag string or component, got %T", typ)
	}
}

// renderChildren renders siblings. With more than one child each subtree
// renders on its own goroutine into its own buffer; output is joined by
// position, never by completion order.
func renderChildren(ctx *jsx.Context, w io.Writer, children []jsx.Node) error {
	switch len(children) {
	case 0:
		return nil
	case 1:
		return renderNode(ctx, w, children[0])
	}

	results := make([]string, len(children))
	errs := make([]error, len(children))

	var wg sync.WaitGroup
	for i, child := range children {
		wg.Add(1)
		go func(i int, child jsx.Node) {
			defer wg.Done()
			var sb strings.Builder
			if err := renderNode(ctx, &sb, child); err != nil {
				errs[i] = err
				return
			}
			results[i] = sb.String()
		}(i, child)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	for _, html := range results {
		if _, err := io.WriteString(w, html); err != nil {
			return err
		}
	}
	return nil
}
