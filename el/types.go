package el

import "github.com/veltaweb/velta/pkg/jsx"

// Type aliases for the element-tree primitives used by the DSL.
type Node = jsx.Node
type Element = jsx.Element
type Props = jsx.Props
type Attr = jsx.Attr
type Component = jsx.Component
type Deferred = jsx.Deferred
