// Package client is the runtime entry point for transpiled web
// components. The transpiler rewrites element construction into the
// tuple form built by N and binds the authored reactivity calls to the
// re-exports here, so a transpiled module depends on this package and
// nothing else from the server side.
package client

import (
	"fmt"
	"sync"

	"github.com/veltaweb/velta/pkg/reactive"
)

// Node is the tuple form of an element: element type, props, children.
// It is plain data; no renderer is needed to construct it.
type Node struct {
	Type     any
	Props    P
	Children []any
}

// P holds the props of a tuple node.
type P map[string]any

// Get looks up a prop by key. Mirrors the server-side Props accessor so
// transpiled prop reads keep working unchanged.
func (p P) Get(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// N builds a tuple node.
func N(typ any, props P, children ...any) Node {
	if props == nil {
		props = P{}
	}
	return Node{Type: typ, Props: props, Children: children}
}

// Component renders a tuple node tree. The result is usually a Node but
// may be any renderable value, matching the server-side element model.
// Mount wraps the call in a fresh owner that scopes the signals and
// effects it creates.
type Component func(props P) any

// registry holds custom elements by tag name.
var (
	registryMu sync.RWMutex
	registry   = map[string]Component{}
)

// Define registers a component under a custom element name. The name
// must contain a dash, per the custom element contract. Returns a
// zero-size token so transpiled modules can register at package level:
//
//	var _ = client.Define("x-counter", Counter)
func Define(name string, c Component) struct{} {
	if !validElementName(name) {
		panic(fmt.Sprintf("client: invalid custom element name %q", name))
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("client: custom element %q already defined", name))
	}
	registry[name] = c
	return struct{}{}
}

// Mount instantiates a registered custom element: a fresh owner is
// created, the component renders under it, and mount callbacks run.
// Remounting the same name yields an entirely new primitive set.
func Mount(name string, props P) (*reactive.Owner, any, error) {
	c, ok := Lookup(name)
	if !ok {
		return nil, nil, fmt.Errorf("client: custom element %q not defined", name)
	}

	owner := reactive.NewOwner(nil)
	var node any
	reactive.WithOwner(owner, func() {
		node = c(props)
	})
	owner.Mount()
	return owner, node, nil
}

// Lookup returns the component registered under name.
func Lookup(name string) (Component, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[name]
	return c, ok
}

// Defined returns the registered custom element names.
func Defined() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// reset clears the registry. Tests only.
func reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = map[string]Component{}
}

// validElementName checks the minimal custom element naming rule:
// lowercase start, at least one dash.
func validElementName(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	dash := false
	for _, r := range name {
		switch {
		case r == '-':
			dash = true
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_':
		default:
			return false
		}
	}
	return dash
}
