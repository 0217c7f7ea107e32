package hooks

import "github.com/loomkit/loom/hooktree"

type effectBox struct {
	deps    []any
	cleanup func()
}

// UseEffect runs fn after the pass that changed its deps (or after the
// first pass, or every pass if deps is nil) has reconciled the DOM,
// running the previous fn's cleanup first if one is owed. The effect
// does not run synchronously during build: it is deferred onto the
// active tree and run by the runtime once reconcile finishes, so fn can
// safely read the DOM this render produced.
func UseEffect(fn func() func(), deps []any) {
	node := currentNode("UseEffect")
	idx := node.NextCursor()
	trackHook(node, idx, "effect")

	cell := node.ReadCell(idx)
	first := cell == nil
	var prev effectBox
	if !first {
		prev = cell.(effectBox)
	}

	if first {
		node.OnDispose(func() {
			if c := node.ReadCell(idx); c != nil {
				if box, ok := c.(effectBox); ok && box.cleanup != nil {
					box.cleanup()
				}
			}
		})
	}

	if !first && deps != nil && depsEqual(prev.deps, deps) {
		return
	}

	tree := hooktree.Active()
	tree.DeferEffect(func() {
		if prev.cleanup != nil {
			prev.cleanup()
		}
		node.WriteCell(idx, effectBox{deps: deps, cleanup: fn()})
	})
}

// UseImperativeHandle lets a component publish a custom handle into ref
// instead of the dom.Node the reconciler would assign there by default,
// recomputing it whenever deps changes and clearing it on unmount.
func UseImperativeHandle[T any](ref *Ref[T], create func() T, deps []any) {
	UseEffect(func() func() {
		ref.SetCurrent(create())
		return func() {
			var zero T
			ref.SetCurrent(zero)
		}
	}, deps)
}
