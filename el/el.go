// Package el is the element DSL. Constructors accept a mixed argument
// list: jsx.Attr values become attributes (in argument order), jsx.Props
// are appended wholesale, and everything else is a child node.
//
//	el.Div(el.Class("card"),
//	    el.H1(el.Text("Title")),
//	    el.P(el.Text("Body")),
//	)
package el

// New builds an element for an arbitrary tag, classifying args into
// attributes and children. Component-typed elements go through Comp.
func New(tag string, args ...any) *Element {
	return build(tag, args)
}

// Comp builds an element whose type is a component function.
// Attr args become the component's props; the rest are its children.
func Comp(c Component, args ...any) *Element {
	return build(c, args)
}

func build(typ any, args []any) *Element {
	e := &Element{Type: typ}
	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			e.Props = append(e.Props, v)
		case Props:
			e.Props = append(e.Props, v...)
		case nil:
			// Dropped so callers can pass conditional attrs/children.
		default:
			e.Children = append(e.Children, v)
		}
	}
	return e
}
