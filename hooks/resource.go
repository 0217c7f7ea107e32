package hooks

import (
	"fmt"

	"github.com/loomkit/loom/hooktree"
	"github.com/loomkit/loom/suspense"
)

type resourceState uint8

const (
	resourceLoading resourceState = iota
	resourceReady
	resourceFailed
)

type resourceBox[T any] struct {
	state resourceState
	value T
	err   error
}

// Use reads an ancestor Context's value (behaving exactly like
// UseContext) when given a *Context[T], or fetches and suspends on an
// asynchronous resource when given a func() (T, error) factory, mirroring
// React's use(): a factory invoked once per call site, not once per
// render, whose completion is awaited by panicking a *suspense.Pending
// for the nearest Suspense ancestor to catch.
func Use[T any](resource any) T {
	switch r := resource.(type) {
	case *Context[T]:
		return r.Use()
	case func() (T, error):
		return useResource[T](r)
	default:
		panic(fmt.Sprintf("hooks: use() called with unsupported resource type %T", resource))
	}
}

func useResource[T any](factory func() (T, error)) T {
	node := currentNode("Use")
	idx := node.NextCursor()
	trackHook(node, idx, "resource")

	if node.ReadCell(idx) == nil {
		box := &resourceBox[T]{state: resourceLoading}
		node.WriteCell(idx, box)
		fetchResource(node, idx, factory)
	}
	box := node.ReadCell(idx).(*resourceBox[T])

	switch box.state {
	case resourceReady:
		return box.value
	case resourceFailed:
		panic(box.err)
	default:
		if _, ok := node.GetContext(hooktree.SuspenseBoundaryContext); !ok {
			panic(suspense.ErrNoSuspenseBoundary)
		}
		panic(&suspense.Pending{})
	}
}

func fetchResource[T any](node *hooktree.Node, idx int, factory func() (T, error)) {
	go func() {
		value, err := factory()
		node.Enqueue(idx, func(prev hooktree.Cell) hooktree.Cell {
			box := prev.(*resourceBox[T])
			if err != nil {
				box.state = resourceFailed
				box.err = err
			} else {
				box.state = resourceReady
				box.value = value
			}
			return box
		})
		hooktree.NotifyRerender()
	}()
}
