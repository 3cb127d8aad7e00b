package el

import (
	"fmt"

	"github.com/veltaweb/velta/pkg/jsx"
)

// Text returns a text node. Text is escaped during rendering.
func Text(content string) Node { return content }

// Textf returns a formatted text node.
func Textf(format string, args ...any) Node {
	return fmt.Sprintf(format, args...)
}

// Raw returns markup rendered without escaping. Only use with trusted
// content.
func Raw(html string) Node { return jsx.Raw(html) }

// Fragment groups children without a wrapper element.
func Fragment(children ...Node) Node {
	return children
}

// Nothing renders as the empty string.
func Nothing() Node { return nil }

// If returns node when the condition holds, otherwise nothing.
func If(condition bool, node Node) Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns ifTrue or ifFalse depending on the condition.
func IfElse(condition bool, ifTrue, ifFalse Node) Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When lazily builds a node only when the condition holds. Use instead
// of If when construction itself has a cost or side conditions.
func When(condition bool, fn func() Node) Node {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to child nodes in order.
func Range[T any](items []T, fn func(item T, index int) Node) []Node {
	nodes := make([]Node, len(items))
	for i, item := range items {
		nodes[i] = fn(item, i)
	}
	return nodes
}

// Repeat builds n nodes by index.
func Repeat(n int, fn func(i int) Node) []Node {
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = fn(i)
	}
	return nodes
}
