package hooks

import (
	"sync/atomic"

	"github.com/loomkit/loom/element"
	"github.com/loomkit/loom/hooktree"
)

// Context is a typed channel components can publish a value onto
// (Provider) and read the nearest published value from (Use),
// independent of how many ordinary components sit in between.
type Context[T any] struct {
	id  hooktree.ContextID
	def T
}

var contextIDSeq uint64

// CreateContext allocates a new Context carrying defaultValue, returned
// by Use when no ancestor Provider has published a value.
func CreateContext[T any](defaultValue T) *Context[T] {
	id := hooktree.ContextID(atomic.AddUint64(&contextIDSeq, 1))
	return &Context[T]{id: id, def: defaultValue}
}

// Provider publishes value for every descendant's Use/UseContext calls
// to see. It is an ordinary composite component, so the builder gives
// it its own hook node the same way it would any other component; that
// node is what SetContext/GetContext walk through, so two sibling
// providers for the same Context never collide.
//
// Provider's ComponentFunc closure is shared across every Context[T]
// instance of the same T (Go compiles one function per generic
// instantiation, not one per receiver), so NewComposite is given c.id
// as an explicit identity override instead of letting vtree derive one
// from the closure's code pointer — otherwise two distinct Context[T]
// values used side by side would resolve to the same NodeID.
func (c *Context[T]) Provider(value T, children ...any) element.Element {
	fn := func(props element.Props) element.Element {
		node := currentNode("Context.Provider")
		node.SetContext(c.id, value)
		return element.CreateElement(element.Fragment, nil, props.Children()...)
	}
	return element.NewComposite(c.id, fn, element.Props{"children": children})
}

// Use returns the nearest ancestor Provider's value, or the context's
// default if none is found.
func (c *Context[T]) Use() T {
	node := currentNode("Context.Use")
	if v, ok := node.GetContext(c.id); ok {
		return v.(T)
	}
	return c.def
}

// UseContext is Context[T].Use as a free function, for symmetry with
// the other Use* hooks.
func UseContext[T any](ctx *Context[T]) T {
	return ctx.Use()
}
