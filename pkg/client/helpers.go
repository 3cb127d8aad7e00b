package client

import "fmt"

// Tuple-form counterparts of the el helpers. The transpiler maps
// authored el calls onto these so component logic survives untouched.

// F groups children without a wrapper element.
func F(children ...any) Node {
	return Node{Props: P{}, Children: children}
}

// Textf builds formatted text.
func Textf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// Raw marks markup that must not be escaped when patched in.
type RawHTML string

// Raw wraps trusted markup.
func Raw(html string) RawHTML { return RawHTML(html) }

// Nothing renders as the empty string.
func Nothing() any { return nil }

// If returns node when the condition holds.
func If(condition bool, node any) any {
	if condition {
		return node
	}
	return nil
}

// IfElse returns ifTrue or ifFalse depending on the condition.
func IfElse(condition bool, ifTrue, ifFalse any) any {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When lazily builds a node only when the condition holds.
func When(condition bool, fn func() any) any {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to child nodes in order.
func Range[T any](items []T, fn func(item T, index int) any) []any {
	nodes := make([]any, len(items))
	for i, item := range items {
		nodes[i] = fn(item, i)
	}
	return nodes
}

// Repeat builds n nodes by index.
func Repeat(n int, fn func(i int) any) []any {
	nodes := make([]any, n)
	for i := range nodes {
		nodes[i] = fn(i)
	}
	return nodes
}
