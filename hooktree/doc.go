// Package hooktree holds the persistent state tree that backs every
// component instance across render passes: per-instance hook cells,
// per-node context values, and the pass lifecycle (StartPass, Flush,
// EndPass) that keeps them in sync with the component tree's shape.
//
// A Tree is addressed by NodeID, a value derived by the builder from the
// parent id, the component's identity, and its key/slot position so that
// the same logical component instance maps to the same node across
// renders. A keyed instance keeps its node when it moves among its
// parent's children; an unkeyed one is addressed by its index there.
package hooktree
