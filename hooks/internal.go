package hooks

import (
	"reflect"

	"github.com/loomkit/loom/hooktree"
)

// currentTree returns the active hook tree, panicking with
// *hooktree.ContextError if called outside a pass.
func currentTree(op string) *hooktree.Tree {
	tree := hooktree.Active()
	if tree == nil {
		panic(&hooktree.ContextError{Op: op})
	}
	return tree
}

// currentNode returns the node the builder has entered for the
// component being rendered, panicking with *hooktree.ContextError if
// called outside a pass (no tree active, or the tree's entered stack
// is empty).
func currentNode(op string) *hooktree.Node {
	return currentTree(op).Current()
}

// trackHook records the expected hook kind for the cell index about to
// be used, panicking with *hooktree.HookOrderError if this node called
// a different kind of hook at the same slot on a previous render.
func trackHook(node *hooktree.Node, idx int, kind string) {
	if err := node.TrackHook(idx, kind); err != nil {
		panic(err)
	}
}

// depsEqual shallow-compares two dependency lists the way a dependency
// array comparison in any hook system does: same length, and each
// element equal by valueEqual.
func depsEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !valueEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// valueEqual compares two dependency values, fast-pathing the common
// concrete types and falling back to reflect.DeepEqual for everything
// else (slices, maps, structs). Directly comparing arbitrary interface
// values with == would panic if either held an uncomparable dynamic
// type, so every path here avoids bare ==  on the any values themselves
// except within a type switch that already knows the concrete type.
func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return reflect.DeepEqual(a, b)
	}
}
