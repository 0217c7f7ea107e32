package hooks

import (
	"testing"

	"github.com/loomkit/loom/hooktree"
)

func TestUseEffectRunsAfterDeferredFlush(t *testing.T) {
	tree, render := newHarness()

	ran := false
	render(func() {
		UseEffect(func() func() {
			ran = true
			return nil
		}, []any{1})
	})

	if ran {
		t.Fatal("expected effect body to be deferred, not run during build")
	}
	tree.RunDeferredEffects()
	if !ran {
		t.Error("expected effect body to run once RunDeferredEffects is called")
	}
}

func TestUseEffectSkipsWhenDepsUnchanged(t *testing.T) {
	tree, render := newHarness()

	runs := 0
	render(func() {
		UseEffect(func() func() { runs++; return nil }, []any{1})
	})
	tree.RunDeferredEffects()
	render(func() {
		UseEffect(func() func() { runs++; return nil }, []any{1})
	})
	tree.RunDeferredEffects()

	if runs != 1 {
		t.Errorf("expected effect to run once when deps unchanged across renders, got %d", runs)
	}
}

func TestUseEffectRerunsCleanupBeforeNextRun(t *testing.T) {
	tree, render := newHarness()

	var order []string
	render(func() {
		UseEffect(func() func() {
			order = append(order, "run-1")
			return func() { order = append(order, "cleanup-1") }
		}, []any{1})
	})
	tree.RunDeferredEffects()

	render(func() {
		UseEffect(func() func() {
			order = append(order, "run-2")
			return func() { order = append(order, "cleanup-2") }
		}, []any{2})
	})
	tree.RunDeferredEffects()

	want := []string{"run-1", "cleanup-1", "run-2"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestUseEffectCleanupRunsOnUnmount(t *testing.T) {
	tree := hooktree.NewTree()
	hooktree.Activate(tree)

	cleaned := false
	pass := func(visit bool) {
		tree.Flush()
		tree.StartPass()
		if visit {
			tree.Enter(1)
			UseEffect(func() func() {
				return func() { cleaned = true }
			}, []any{1})
			tree.Exit()
		}
		tree.EndPass()
	}

	pass(true)
	tree.RunDeferredEffects()
	if cleaned {
		t.Fatal("effect should not clean up while its node is still visited")
	}

	pass(false)
	if !cleaned {
		t.Error("expected cleanup to run when the node is removed from the tree")
	}
}
