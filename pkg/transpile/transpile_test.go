package transpile

import (
	"strings"
	"testing"
)

const helloSource = `package components

import (
	"github.com/veltaweb/velta/el"
	"github.com/veltaweb/velta/pkg/reactive"
)

func HelloWorld(props el.Props) el.Node {
	count := reactive.NewSignal(0)
	reactive.CSS(".hello { color: red }")
	return el.Div(
		el.Class("hello"),
		el.Button(
			el.On("click", func() { count.Update(func(n int) int { return n + 1 }) }),
			el.Text("+"),
		),
		el.Span(el.Textf("count: %d", count.Get())),
	)
}
`

func TestTranspileHelloWorld(t *testing.T) {
	out, err := TranspileWebComponent(helloSource)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		`client.N("div"`,
		`client.P{`,
		`"class": "hello"`,
		`"onclick":`,
		`client.N("button"`,
		`client.N("span"`,
		`client.State(0)`,
		`client.CSS(`,
		`client.Textf("count: %d"`,
		`func HelloWorld(props client.P) any`,
		`client.Define("v-hello-world", HelloWorld)`,
		`"github.com/veltaweb/velta/pkg/client"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	for _, banned := range []string{
		`"github.com/veltaweb/velta/el"`,
		`"github.com/veltaweb/velta/pkg/reactive"`,
		`el.Div`,
		`el.Text`,
	} {
		if strings.Contains(out, banned) {
			t.Errorf("output still contains %q\n%s", banned, out)
		}
	}
}

func TestTranspilePreservesAuthoredLogic(t *testing.T) {
	out, err := TranspileWebComponent(helloSource)
	if err != nil {
		t.Fatal(err)
	}

	// The click handler's closure body must come through untouched.
	if !strings.Contains(out, "func(n int) int") {
		t.Errorf("handler logic not preserved\n%s", out)
	}
	if !strings.Contains(out, "count.Update") {
		t.Errorf("signal update call not preserved\n%s", out)
	}
}

func TestTranspileAttributeFolding(t *testing.T) {
	src := `package components

import "github.com/veltaweb/velta/el"

func LoginField(props el.Props) el.Node {
	return el.Input(
		el.Type("text"),
		el.Name("user"),
		el.Disabled(),
		el.Data("field", "login"),
		el.Aria("label", "user name"),
		el.A("autocomplete", "off"),
	)
}
`
	out, err := TranspileWebComponent(src)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		`client.N("input"`,
		`"type": "text"`,
		`"name": "user"`,
		`"disabled": true`,
		`"data-field": "login"`,
		`"aria-label": "user name"`,
		`"autocomplete": "off"`,
		`client.Define("v-login-field", LoginField)`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestTranspileCustomTagAndHelpers(t *testing.T) {
	src := `package components

import "github.com/veltaweb/velta/el"

func TagList(props el.Props) el.Node {
	items := []string{"a", "b"}
	return el.New("tag-list",
		el.Range(items, func(item string, i int) el.Node {
			return el.Li(el.Text(item))
		}),
		el.If(len(items) == 0, el.Text("empty")),
	)
}
`
	out, err := TranspileWebComponent(src)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		`client.N("tag-list"`,
		`client.Range(items`,
		`client.If(len(items) == 0, "empty")`,
		`client.N("li", nil, item)`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestTranspileMalformedSource(t *testing.T) {
	_, err := TranspileWebComponent("package x\nfunc {")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "transpile:") {
		t.Errorf("error not attributed to the transpiler: %v", err)
	}
	if IsServerConstruct(err) {
		t.Error("parse failure misreported as a server-construct rejection")
	}
}

func TestTranspileNoComponentFunction(t *testing.T) {
	_, err := TranspileWebComponent("package components\n\nfunc helper() int { return 1 }\n")
	if err == nil {
		t.Fatal("expected error for source without a component")
	}
}

func TestTranspileRejectsServerContext(t *testing.T) {
	src := `package components

import (
	"github.com/veltaweb/velta/el"
	"github.com/veltaweb/velta/pkg/jsx"
)

func Bad(ctx *jsx.Context, props el.Props) el.Node {
	return el.Div(el.Text(ctx.Path()))
}
`
	_, err := TranspileWebComponent(src)
	if err == nil {
		t.Fatal("expected error for server context usage")
	}
	if !strings.Contains(err.Error(), "jsx.Context") {
		t.Errorf("error should name the offending construct: %v", err)
	}
	if !IsServerConstruct(err) {
		t.Errorf("server context rejection not marked as such: %v", err)
	}
}

func TestTranspileAttrHelperOutsideElement(t *testing.T) {
	src := `package components

import "github.com/veltaweb/velta/el"

func Odd(props el.Props) el.Node {
	c := el.Class("stray")
	_ = c
	return el.Div()
}
`
	if _, err := TranspileWebComponent(src); err == nil {
		t.Fatal("expected error for attribute helper outside an element")
	}
}

func TestElementName(t *testing.T) {
	cases := map[string]string{
		"Counter":       "v-counter",
		"CounterButton": "v-counter-button",
		"HelloWorld":    "v-hello-world",
	}
	for in, want := range cases {
		if got := ElementName(in); got != want {
			t.Errorf("ElementName(%q) = %q, want %q", in, got, want)
		}
	}
}
