package hooks

import "github.com/loomkit/loom/hooktree"

type stateBox[T any] struct {
	value T
}

// SetState updates a useState cell. Passing a value of T replaces the
// state outright; passing a func(T) T enqueues it as an updater applied
// to the value in place at the next Flush, so several updates queued in
// one pass compose instead of clobbering each other.
type SetState[T any] func(next any)

// UseState gives a component a piece of state that survives across
// renders at this call site, exactly like useState: the zero-th render
// stores initial, every later render reads whatever the most recent
// Flush left in the cell.
func UseState[T any](initial T) (T, SetState[T]) {
	node := currentNode("UseState")
	idx := node.NextCursor()
	trackHook(node, idx, "state")

	if node.ReadCell(idx) == nil {
		node.WriteCell(idx, stateBox[T]{value: initial})
	}
	box := node.ReadCell(idx).(stateBox[T])

	set := func(next any) {
		node.Enqueue(idx, func(prev hooktree.Cell) hooktree.Cell {
			b := prev.(stateBox[T])
			if fn, ok := next.(func(T) T); ok {
				b.value = fn(b.value)
			} else if v, ok := next.(T); ok {
				b.value = v
			}
			return b
		})
		hooktree.NotifyRerender()
	}
	return box.value, set
}

// UseReducer is UseState generalized to an explicit reducer, exactly
// like useReducer: dispatch enqueues the action, and the reducer
// computes the next state from it at the next Flush.
func UseReducer[S, A any](reducer func(S, A) S, initial S) (S, func(A)) {
	node := currentNode("UseReducer")
	idx := node.NextCursor()
	trackHook(node, idx, "reducer")

	if node.ReadCell(idx) == nil {
		node.WriteCell(idx, stateBox[S]{value: initial})
	}
	box := node.ReadCell(idx).(stateBox[S])

	dispatch := func(action A) {
		node.Enqueue(idx, func(prev hooktree.Cell) hooktree.Cell {
			b := prev.(stateBox[S])
			b.value = reducer(b.value, action)
			return b
		})
		hooktree.NotifyRerender()
	}
	return box.value, dispatch
}
