package hooktree

import "fmt"

// ContextError is raised when a hook is called with no node entered,
// i.e. from outside a component render pass.
type ContextError struct {
	Op string
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("hooktree: %s called outside a component render", e.Op)
}

// HookOrderError is raised when a node's hook calls take a different
// path on a re-render than they did on its first render, which would
// desynchronize cell indices from the hooks that read them.
type HookOrderError struct {
	NodeID   NodeID
	Index    int
	Expected string
	Got      string
}

func (e *HookOrderError) Error() string {
	return fmt.Sprintf("hooktree: hook order changed at node %d, slot %d: expected %s, got %s",
		e.NodeID, e.Index, e.Expected, e.Got)
}
