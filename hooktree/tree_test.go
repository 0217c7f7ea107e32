package hooktree

import "testing"

func enterLeaf(t *Tree, id NodeID) *Node {
	n := t.Enter(id)
	t.Exit()
	return n
}

func TestTreeEnterCreatesStableChild(t *testing.T) {
	tree := NewTree()
	tree.StartPass()

	a := tree.Enter(1)
	a.WriteCell(0, "hello")
	tree.Exit()
	tree.EndPass()

	tree.StartPass()
	b := tree.Enter(1)
	tree.Exit()
	tree.EndPass()

	if a != b {
		t.Fatal("entering the same id across passes should return the same node")
	}
	if got := b.ReadCell(0); got != "hello" {
		t.Errorf("cell not preserved across passes: got %v", got)
	}
}

func TestEndPassDisposesUnvisitedChildren(t *testing.T) {
	tree := NewTree()

	tree.StartPass()
	kept := tree.Enter(1)
	kept.WriteCell(0, "kept")
	tree.Exit()
	stale := enterLeaf(tree, 2)
	stale.WriteCell(0, "stale")
	tree.EndPass()

	tree.StartPass()
	tree.Enter(1)
	tree.Exit()
	tree.EndPass()

	if tree.root.children[2] != nil {
		t.Error("node not visited during the pass should have been disposed")
	}
	if tree.root.children[1] == nil {
		t.Error("node visited during the pass should remain")
	}
}

func TestCurrentPanicsOutsidePass(t *testing.T) {
	tree := &Tree{root: newNode(rootID, nil)}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Current to panic when no node is entered")
		}
		if _, ok := r.(*ContextError); !ok {
			t.Errorf("expected *ContextError, got %T", r)
		}
	}()
	tree.Current()
}

func TestFlushDrainsQueueInFIFOOrder(t *testing.T) {
	tree := NewTree()
	tree.StartPass()
	node := tree.Enter(1)
	node.WriteCell(0, 0)
	tree.Exit()
	tree.EndPass()

	node.Enqueue(0, func(prev Cell) Cell { return prev.(int) + 1 })
	node.Enqueue(0, func(prev Cell) Cell { return prev.(int) * 10 })

	tree.Flush()

	if got := node.ReadCell(0); got != 10 {
		t.Errorf("expected thunks applied in FIFO order (0+1)*10=10, got %v", got)
	}
}

func TestContextLookupWalksAncestors(t *testing.T) {
	tree := NewTree()
	tree.StartPass()
	parent := tree.Enter(1)
	parent.SetContext(ContextID(7), "theme-value")
	child := tree.Enter(2)
	tree.Exit()
	tree.Exit()
	tree.EndPass()

	v, ok := child.GetContext(ContextID(7))
	if !ok || v != "theme-value" {
		t.Errorf("expected child to see parent's published context, got %v, %v", v, ok)
	}

	_, ok = child.GetContext(ContextID(99))
	if ok {
		t.Error("expected lookup of unpublished context to fail")
	}
}

func TestTrackHookDetectsOrderChange(t *testing.T) {
	tree := NewTree()
	tree.StartPass()
	node := tree.Enter(1)
	if err := node.TrackHook(0, "state"); err != nil {
		t.Fatalf("unexpected error on first render: %v", err)
	}
	tree.Exit()
	tree.EndPass()

	tree.StartPass()
	node = tree.Enter(1)
	err := node.TrackHook(0, "effect")
	tree.Exit()
	tree.EndPass()

	if err == nil {
		t.Fatal("expected HookOrderError when hook kind changes at a slot")
	}
	if _, ok := err.(*HookOrderError); !ok {
		t.Errorf("expected *HookOrderError, got %T", err)
	}
}

func TestDeferEffectRunsOnceAndClears(t *testing.T) {
	tree := NewTree()
	calls := 0
	tree.DeferEffect(func() { calls++ })
	tree.DeferEffect(func() { calls++ })
	tree.RunDeferredEffects()

	if calls != 2 {
		t.Errorf("expected both deferred effects to run, got %d calls", calls)
	}

	tree.RunDeferredEffects()
	if calls != 2 {
		t.Error("expected RunDeferredEffects to clear the queue after running")
	}
}

func TestApplyImmediateWritesWithinThePass(t *testing.T) {
	tree := NewTree()
	tree.StartPass()
	node := tree.Enter(1)
	node.WriteCell(0, 1)
	tree.Exit()

	tree.ApplyImmediate(node, 0, func(prev Cell) Cell { return prev.(int) + 41 })

	if got := node.ReadCell(0); got != 42 {
		t.Errorf("expected ApplyImmediate to write back synchronously, got %v", got)
	}
	tree.EndPass()
}

func TestActivateAndRerenderNotifier(t *testing.T) {
	tree := NewTree()
	Activate(tree)
	if Active() != tree {
		t.Error("Active() should return the tree installed by Activate()")
	}

	notified := false
	SetRerenderNotifier(func() { notified = true })
	NotifyRerender()
	if !notified {
		t.Error("expected NotifyRerender to invoke the installed notifier")
	}
}
