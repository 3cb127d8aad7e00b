package render

import (
	"strings"
	"testing"

	"github.com/veltaweb/velta/el"
	"github.com/veltaweb/velta/pkg/jsx"
)

func TestAttributeInsertionOrder(t *testing.T) {
	node := el.Div(
		el.A("zeta", "1"),
		el.A("alpha", "2"),
		el.A("mid", "3"),
	)
	html, err := RenderToString(nil, node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div zeta="1" alpha="2" mid="3"></div>`
	if html != want {
		t.Errorf("attributes must serialize in declaration order\ngot  %q\nwant %q", html, want)
	}
}

func TestChildrenNeverSerializesAsAttribute(t *testing.T) {
	node := &jsx.Element{
		Type:     "div",
		Props:    jsx.Props{{Key: "children", Value: "sneaky"}, {Key: "id", Value: "x"}},
		Children: []jsx.Node{"real"},
	}
	html, err := RenderToString(nil, node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "children") {
		t.Errorf("children key must not appear as an attribute, got %q", html)
	}
	if html != `<div id="x">real</div>` {
		t.Errorf("got %q", html)
	}
}

func TestAttributeValueEscaping(t *testing.T) {
	html, err := RenderToString(nil, el.Div(el.A("title", `a "quoted" <value>`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, `"quoted"`) || strings.Contains(html, "<value>") {
		t.Errorf("attribute values must be escaped, got %q", html)
	}
	if !strings.Contains(html, "&quot;quoted&quot;") {
		t.Errorf("got %q", html)
	}
}

func TestBooleanAttributes(t *testing.T) {
	html, err := RenderToString(nil, el.Input(el.Type("checkbox"), el.Checked(), el.A("disabled", false)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<input type="checkbox" checked>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestEventHandlersBecomeMarkers(t *testing.T) {
	clicked := false
	node := el.Button(el.On("click", func() { clicked = true }), el.Text("Go"))
	html, err := RenderToString(nil, node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "func") {
		t.Errorf("handler must not serialize as a value, got %q", html)
	}
	if !strings.Contains(html, `data-on-click="true"`) {
		t.Errorf("expected event marker, got %q", html)
	}
	_ = clicked
}

func TestNilAttributeSkipped(t *testing.T) {
	html, err := RenderToString(nil, el.Div(el.A("data-x", nil), el.ID("d")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<div id="d"></div>` {
		t.Errorf("got %q", html)
	}
}
