package reactive

import "testing"

func TestDerivedComputesFromDependencies(t *testing.T) {
	a := NewSignal(2)
	b := NewSignal(3)
	sum := NewDerived(func() int { return a.Get() + b.Get() })

	if got := sum.Get(); got != 5 {
		t.Errorf("got %d, want 5", got)
	}

	a.Set(10)
	if got := sum.Get(); got != 13 {
		t.Errorf("got %d, want 13", got)
	}
}

func TestDerivedLaziness(t *testing.T) {
	dep := NewSignal(1)
	computes := 0
	d := NewDerived(func() int {
		computes++
		return dep.Get() * 2
	})

	if computes != 0 {
		t.Fatal("derived must not compute before first read")
	}

	_ = d.Get()
	if computes != 1 {
		t.Fatalf("first read computes, got %d", computes)
	}

	// Reads with a valid cache do not recompute.
	_ = d.Get()
	_ = d.Get()
	if computes != 1 {
		t.Errorf("cached reads must not recompute, got %d", computes)
	}

	// A dependency write only invalidates; recomputation waits for the
	// next read.
	dep.Set(2)
	if computes != 1 {
		t.Errorf("recompute must not happen eagerly on write, got %d", computes)
	}

	if got := d.Get(); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
	if computes != 2 {
		t.Errorf("read after invalidation recomputes once, got %d", computes)
	}
}

func TestDerivedCollapsesMultipleWrites(t *testing.T) {
	dep := NewSignal(1)
	computes := 0
	d := NewDerived(func() int {
		computes++
		return dep.Get()
	})

	_ = d.Get()
	dep.Set(2)
	dep.Set(3)
	dep.Set(4)

	if got := d.Get(); got != 4 {
		t.Errorf("got %d", got)
	}
	if computes != 2 {
		t.Errorf("several writes before a read recompute once, got %d", computes)
	}
}

func TestDerivedNotifiesEffects(t *testing.T) {
	dep := NewSignal(1)
	double := NewDerived(func() int { return dep.Get() * 2 })

	var seen []int
	CreateEffect(func() Cleanup {
		seen = append(seen, double.Get())
		return nil
	})

	dep.Set(5)

	if len(seen) != 2 || seen[0] != 2 || seen[1] != 10 {
		t.Errorf("effect should see derived updates, got %v", seen)
	}
}

func TestDerivedUnchangedValueDoesNotNotify(t *testing.T) {
	n := NewSignal(2)
	isEven := NewDerived(func() bool { return n.Get()%2 == 0 })

	runs := 0
	CreateEffect(func() Cleanup {
		isEven.Get()
		runs++
		return nil
	})
	if runs != 1 {
		t.Fatalf("initial run, got %d", runs)
	}

	// Still even: the derived recomputes but downstream stays quiet.
	n.Set(4)
	if runs != 1 {
		t.Errorf("unchanged derived value re-ran the effect, runs = %d", runs)
	}

	n.Set(5)
	if runs != 2 {
		t.Errorf("changed derived value must notify, runs = %d", runs)
	}
	if isEven.Get() {
		t.Error("derived value is stale")
	}
}

func TestDerivedWithEqualsSuppressesNotification(t *testing.T) {
	src := NewSignal(1)
	d := NewDerived(func() int { return src.Get() }).
		WithEquals(func(a, b int) bool { return true })

	runs := 0
	CreateEffect(func() Cleanup {
		d.Get()
		runs++
		return nil
	})

	src.Set(3)
	if runs != 1 {
		t.Errorf("equality reported no change, yet the effect re-ran: runs = %d", runs)
	}
}

func TestDerivedChain(t *testing.T) {
	base := NewSignal(1)
	doubled := NewDerived(func() int { return base.Get() * 2 })
	quadrupled := NewDerived(func() int { return doubled.Get() * 2 })

	if got := quadrupled.Get(); got != 4 {
		t.Errorf("got %d, want 4", got)
	}

	base.Set(3)
	if got := quadrupled.Get(); got != 12 {
		t.Errorf("invalidation must propagate through the chain, got %d", got)
	}
}
