package jsx

import "context"

// Node is anything that can appear in an element tree.
//
// Valid shapes:
//   - string, int, int64, float64: rendered as escaped text
//   - *Element: rendered recursively
//   - Raw: rendered verbatim, no escaping
//   - []Node (or any slice): flattened in declaration order
//   - Deferred: resolved when rendering reaches it
//   - nil, bool: rendered as the empty string
type Node = any

// Attr is a single element attribute. Props preserve declaration order,
// so attributes serialize in the order they were written.
type Attr struct {
	Key   string
	Value any
}

// Props is an ordered attribute list. Unlike a map, iteration order is
// the order attributes were added.
type Props []Attr

// Get returns the value for key and whether it is present.
// The last write for a key wins.
func (p Props) Get(key string) (any, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Key == key {
			return p[i].Value, true
		}
	}
	return nil, false
}

// Set replaces the value for key, or appends if absent.
func (p Props) Set(key string, value any) Props {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Attr{Key: key, Value: value})
}

// Element is a node in the tree. Type is a tag name (string), a
// Component, or a LazyComponent that resolves to one. Children are kept
// out of Props; "children" is never serialized as an attribute.
type Element struct {
	Type     any
	Props    Props
	Children []Node
}

// Component is a render function. It receives the request-scoped Context
// untouched and returns the node to render in its place. Components may
// block; the renderer runs sibling subtrees concurrently.
type Component func(ctx *Context, props Props, children []Node) (Node, error)

// LazyComponent resolves to a Component when rendering reaches the
// element, for component code loaded or selected at render time.
type LazyComponent func(ctx context.Context) (Component, error)

// Deferred is a node whose value is produced when rendering reaches it.
type Deferred func(ctx context.Context) (Node, error)

// Raw is markup emitted without escaping.
type Raw string

// E constructs an element. Type must be a tag string, a Component, or a
// LazyComponent; the renderer rejects anything else.
func E(typ any, props Props, children ...Node) *Element {
	return &Element{Type: typ, Props: props, Children: children}
}
