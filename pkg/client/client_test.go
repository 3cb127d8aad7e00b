package client

import (
	"testing"
)

func TestNBuildsTuple(t *testing.T) {
	n := N("div", P{"class": "card"}, "Hello World")

	if n.Type != "div" {
		t.Errorf("got type %v", n.Type)
	}
	if n.Props["class"] != "card" {
		t.Errorf("got props %v", n.Props)
	}
	if len(n.Children) != 1 || n.Children[0] != "Hello World" {
		t.Errorf("got children %v", n.Children)
	}
}

func TestNNilPropsBecomesEmpty(t *testing.T) {
	n := N("span", nil)
	if n.Props == nil {
		t.Error("props must never be nil in the tuple form")
	}
}

func TestDefineAndLookup(t *testing.T) {
	defer reset()

	comp := Component(func(props P) any {
		return N("div", P{}, "hi")
	})
	Define("x-hello", comp)

	got, ok := Lookup("x-hello")
	if !ok {
		t.Fatal("component not registered")
	}
	node := got(P{}).(Node)
	if node.Type != "div" {
		t.Errorf("got %v", node.Type)
	}
}

func TestDefineRejectsBadNames(t *testing.T) {
	defer reset()

	for _, name := range []string{"", "nodash", "X-Upper", "-lead", "1-num"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Define(%q) should panic", name)
				}
			}()
			Define(name, func(props P) any { return Node{} })
		}()
	}
}

func TestDefineRejectsDuplicates(t *testing.T) {
	defer reset()

	c := Component(func(props P) any { return Node{} })
	Define("x-dup", c)
	defer func() {
		if recover() == nil {
			t.Error("duplicate Define should panic")
		}
	}()
	Define("x-dup", c)
}

func TestMountCreatesFreshStatePerInstance(t *testing.T) {
	defer reset()

	instances := 0
	Define("x-counter", func(props P) any {
		count := State(0)
		count.Set(count.Peek() + 1)
		instances++
		return N("span", P{}, count.Peek())
	})

	owner1, node1, err := Mount("x-counter", P{})
	if err != nil {
		t.Fatal(err)
	}
	owner1.Dispose()

	_, node2, err := Mount("x-counter", P{})
	if err != nil {
		t.Fatal(err)
	}

	if instances != 2 {
		t.Fatalf("expected 2 instances, got %d", instances)
	}
	if node1.(Node).Children[0] != 1 || node2.(Node).Children[0] != 1 {
		t.Error("each mount must start from a fresh signal")
	}
}

func TestMountUnknownName(t *testing.T) {
	if _, _, err := Mount("x-missing", P{}); err == nil {
		t.Error("expected error for undefined element")
	}
}

func TestBindingsDispatchInBindOrder(t *testing.T) {
	var b Bindings
	var order []int

	b.Bind("h1", "click", func(Event) { order = append(order, 1) })
	b.Bind("h2", "click", func(Event) { order = append(order, 2) })
	b.Bind("h1", "click", func(Event) { order = append(order, 3) })

	n := b.Dispatch(Event{Type: "click", Target: "h1"})
	if n != 2 {
		t.Fatalf("dispatched %d handlers", n)
	}
	if order[0] != 1 || order[1] != 3 {
		t.Errorf("got order %v", order)
	}
}
