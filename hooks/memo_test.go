package hooks

import "testing"

func TestUseMemoRecomputesOnlyWhenDepsChange(t *testing.T) {
	_, render := newHarness()

	calls := 0
	compute := func(n int) func() int {
		return func() int {
			calls++
			return n * 2
		}
	}

	render(func() { UseMemo(compute(1), []any{1}) })
	render(func() { UseMemo(compute(1), []any{1}) })
	if calls != 1 {
		t.Errorf("expected memo not to recompute with unchanged deps, got %d calls", calls)
	}

	render(func() { UseMemo(compute(2), []any{2}) })
	if calls != 2 {
		t.Errorf("expected memo to recompute when deps changed, got %d calls", calls)
	}
}

func TestUseMemoNilDepsAlwaysRecomputes(t *testing.T) {
	_, render := newHarness()

	calls := 0
	render(func() { UseMemo(func() int { calls++; return 1 }, nil) })
	render(func() { UseMemo(func() int { calls++; return 1 }, nil) })

	if calls != 2 {
		t.Errorf("expected nil deps to recompute every render, got %d calls", calls)
	}
}

func TestUseCallbackKeepsFirstRenderClosureWhenDepsUnchanged(t *testing.T) {
	_, render := newHarness()

	var kept func() string
	render(func() { kept = UseCallback(func() string { return "first" }, []any{"x"}) })
	render(func() { kept = UseCallback(func() string { return "second" }, []any{"x"}) })

	if got := kept(); got != "first" {
		t.Errorf("expected UseCallback to keep the first render's closure while deps unchanged, got %q", got)
	}
}
