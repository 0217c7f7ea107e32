// Package hooks implements the hook functions components call during a
// render: UseState, UseReducer, UseEffect, UseRef, UseMemo, UseCallback,
// UseImperativeHandle, CreateContext/UseContext, and Use (the resource
// hook). Every hook reads or writes the current node's cells, so they
// may only be called from within a component body being built by
// vtree.Build — calling one outside a pass panics with
// *hooktree.ContextError.
package hooks
