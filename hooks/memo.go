package hooks

import "github.com/loomkit/loom/hooktree"

type memoBox struct {
	deps  []any
	value any
}

// UseMemo recomputes compute() only when deps has changed since the
// last render (by depsEqual), otherwise returning the previously
// computed value. A nil deps recomputes on every render, the same
// convention React and most of its Go ports use.
func UseMemo[T any](compute func() T, deps []any) T {
	tree := currentTree("UseMemo")
	node := tree.Current()
	idx := node.NextCursor()
	trackHook(node, idx, "memo")

	if cell := node.ReadCell(idx); cell != nil {
		box := cell.(memoBox)
		if deps != nil && depsEqual(box.deps, deps) {
			return box.value.(T)
		}
	}

	var v T
	tree.ApplyImmediate(node, idx, func(hooktree.Cell) hooktree.Cell {
		v = compute()
		return memoBox{deps: deps, value: v}
	})
	return v
}

// UseCallback is UseMemo specialized to returning a function value
// unchanged across renders while deps is unchanged, so it can be passed
// down as a prop without defeating a child's own memoization.
func UseCallback[T any](fn T, deps []any) T {
	return UseMemo(func() T { return fn }, deps)
}
