package hooks

import "github.com/loomkit/loom/hooktree"

// newHarness activates a fresh tree for a test and returns a render
// function that runs one full pass (flush, enter node 1, fn, exit,
// end pass) the way the runtime would for a single top-level component.
func newHarness() (tree *hooktree.Tree, render func(fn func())) {
	tree = hooktree.NewTree()
	hooktree.Activate(tree)
	return tree, func(fn func()) {
		tree.Flush()
		tree.StartPass()
		tree.Enter(1)
		fn()
		tree.Exit()
		tree.EndPass()
	}
}
