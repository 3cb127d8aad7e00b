package client

// Event is a DOM event delivered to a bound handler. Fields mirror what
// the thin client forwards over the live channel.
type Event struct {
	// Type is the event name: "click", "input", ...
	Type string

	// Target is the hydration ID of the element the event fired on.
	Target string

	// Value carries the input value for value-bearing events.
	Value string

	// Checked carries the checkbox state for change events.
	Checked bool
}

// Handler consumes a DOM event.
type Handler func(Event)

// binding associates an element's event with a handler.
type binding struct {
	target  string
	event   string
	handler Handler
}

// Bindings collects the event handlers of one mounted component
// instance. The transpiler emits Bind calls for every data-on-* marker
// the server rendered.
type Bindings struct {
	list []binding
}

// Bind attaches a handler to an element's event.
func (b *Bindings) Bind(target, event string, h Handler) {
	b.list = append(b.list, binding{target: target, event: event, handler: h})
}

// Dispatch routes an event to every matching handler, in bind order.
// Returns the number of handlers invoked.
func (b *Bindings) Dispatch(e Event) int {
	n := 0
	for _, bound := range b.list {
		if bound.target == e.Target && bound.event == e.Type {
			bound.handler(e)
			n++
		}
	}
	return n
}

// Len returns the number of bindings.
func (b *Bindings) Len() int { return len(b.list) }
