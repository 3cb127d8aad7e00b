package el

import "fmt"

// A builds an arbitrary attribute.
func A(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// On attaches an event handler. Handlers never serialize as attribute
// values; the renderer emits a data-on-<event> marker instead and the
// client runtime binds the real listener.
func On(event string, handler any) Attr {
	return Attr{Key: "on" + event, Value: handler}
}

func Class(v string) Attr { return A("class", v) }
func Classf(format string, args ...any) Attr {
	return A("class", fmt.Sprintf(format, args...))
}
func ID(v string) Attr          { return A("id", v) }
func Href(v string) Attr        { return A("href", v) }
func Src(v string) Attr         { return A("src", v) }
func Alt(v string) Attr         { return A("alt", v) }
func Title_(v string) Attr      { return A("title", v) }
func Type(v string) Attr        { return A("type", v) }
func Name(v string) Attr        { return A("name", v) }
func Value(v any) Attr          { return A("value", v) }
func Placeholder(v string) Attr { return A("placeholder", v) }
func Rel(v string) Attr         { return A("rel", v) }
func Target(v string) Attr      { return A("target", v) }
func Style(v string) Attr       { return A("style", v) }
func Lang(v string) Attr        { return A("lang", v) }
func Charset(v string) Attr     { return A("charset", v) }
func Content(v string) Attr     { return A("content", v) }
func Role(v string) Attr        { return A("role", v) }
func TabIndex(v int) Attr       { return A("tabindex", v) }
func Width(v any) Attr          { return A("width", v) }
func Height(v any) Attr         { return A("height", v) }
func For(v string) Attr         { return A("for", v) }
func Action(v string) Attr      { return A("action", v) }
func Method(v string) Attr      { return A("method", v) }
func Min(v any) Attr            { return A("min", v) }
func Max(v any) Attr            { return A("max", v) }
func Step(v any) Attr           { return A("step", v) }

// Boolean attributes render as the bare name when true and are omitted
// when false.
func Checked() Attr   { return A("checked", true) }
func Disabled() Attr  { return A("disabled", true) }
func Selected() Attr  { return A("selected", true) }
func Required() Attr  { return A("required", true) }
func ReadOnly() Attr  { return A("readonly", true) }
func Autofocus() Attr { return A("autofocus", true) }
func Multiple() Attr  { return A("multiple", true) }
func Defer() Attr     { return A("defer", true) }
func Async() Attr     { return A("async", true) }

// Data builds a data-* attribute.
func Data(suffix string, value any) Attr {
	return A("data-"+suffix, value)
}

// Aria builds an aria-* attribute.
func Aria(suffix string, value any) Attr {
	return A("aria-"+suffix, value)
}
