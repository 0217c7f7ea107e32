package hooktree

import (
	"sync"
	"sync/atomic"
)

const rootID NodeID = 0

// SuspenseBoundaryContext is the reserved ContextID a Suspense node
// publishes against itself so useResource can walk ancestors to tell
// whether any Suspense boundary encloses it, using the same
// SetContext/GetContext mechanism as ordinary user contexts. It is the
// maximum ContextID value so it never collides with one
// CreateContext assigns sequentially from 1.
const SuspenseBoundaryContext ContextID = ^ContextID(0)

// Tree is the persistent hook-state tree for one mounted application. It
// is not safe for concurrent passes; the runtime package enforces that
// at most one pass is in flight at a time.
type Tree struct {
	root     *Node
	stack    []*Node
	deferred []func()
}

// NewTree returns a Tree with an empty, already-active root node.
func NewTree() *Tree {
	root := newNode(rootID, nil)
	root.active = true
	return &Tree{root: root}
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node { return t.root }

// Enter descends into the child of the current node identified by id,
// pushing it onto the entered stack and resetting its cursor. It is
// called by the builder immediately before invoking a composite's
// component function.
func (t *Tree) Enter(id NodeID) *Node {
	parent := t.Current()
	child := parent.childFor(id)
	t.stack = append(t.stack, child)
	return child
}

// Exit pops the most recently entered node. Panics if called without a
// matching Enter, which would indicate a builder bug rather than a
// component author error.
func (t *Tree) Exit() {
	if len(t.stack) <= 1 {
		panic("hooktree: Exit called without a matching Enter")
	}
	t.stack = t.stack[:len(t.stack)-1]
}

// Current returns the innermost entered node. It fails with a
// *ContextError if called before StartPass or after EndPass, i.e. from
// outside a render pass, which is how hooks detect calls made from
// plain goroutines instead of component bodies.
func (t *Tree) Current() *Node {
	if len(t.stack) == 0 {
		panic(&ContextError{Op: "Current"})
	}
	return t.stack[len(t.stack)-1]
}

// StartPass prepares the tree for a new render: it clears every node's
// active flag except the root's (so EndPass can tell which nodes the
// builder revisits) and resets the entered stack to just the root.
func (t *Tree) StartPass() {
	for _, c := range t.root.children {
		c.clearActive()
	}
	t.root.active = true
	t.root.cursor = 0
	t.stack = t.stack[:0]
	t.stack = append(t.stack, t.root)
}

// EndPass removes every node the builder did not visit during the pass
// that just finished, recursively disposing their cells, contexts, and
// queues, and empties the entered stack so Current fails until the
// next StartPass.
func (t *Tree) EndPass() {
	sweep(t.root)
	t.stack = t.stack[:0]
}

func sweep(n *Node) {
	for id, c := range n.children {
		if !c.active {
			delete(n.children, id)
			c.dispose()
			continue
		}
		sweep(c)
	}
}

// Flush walks the tree depth-first, draining each node's pending thunk
// queue into its cells in FIFO order and resetting its cursor to 0. It
// runs before the builder starts a pass.
func (t *Tree) Flush() {
	flushNode(t.root)
}

func flushNode(n *Node) {
	n.flush()
	for _, c := range n.children {
		flushNode(c)
	}
}

// ApplyImmediate applies thunk to node's cell i synchronously, within
// the render pass currently in progress, writing the result back at
// once instead of deferring it to the next Flush the way Enqueue does.
// Hooks use this when a render needs to observe a cell's new value in
// the same pass it computed it — UseMemo's recomputed value, for
// instance — rather than a state update an event handler queues for
// the next pass.
func (t *Tree) ApplyImmediate(node *Node, i int, thunk Thunk) {
	node.WriteCell(i, thunk(node.ReadCell(i)))
}

// DeferEffect schedules fn to run once during RunDeferredEffects, after
// the current pass's reconcile step completes. Hooks use this so effect
// bodies see the DOM as it exists after the pass, not mid-build.
func (t *Tree) DeferEffect(fn func()) {
	t.deferred = append(t.deferred, fn)
}

// RunDeferredEffects runs and clears every effect deferred during the
// pass that just finished.
func (t *Tree) RunDeferredEffects() {
	pending := t.deferred
	t.deferred = nil
	for _, fn := range pending {
		fn()
	}
}

var (
	activeMu   sync.Mutex
	activeTree *Tree
)

// Activate installs t as the tree hooks operate against. The runtime
// calls this once per mounted application.
func Activate(t *Tree) {
	activeMu.Lock()
	activeTree = t
	activeMu.Unlock()
}

// Active returns the currently installed tree, or nil if none has been
// activated yet.
func Active() *Tree {
	activeMu.Lock()
	defer activeMu.Unlock()
	return activeTree
}

var rerenderNotifier atomic.Value // func()

// SetRerenderNotifier installs the callback NotifyRerender invokes. The
// runtime installs its own RequestRerender here on Mount, which keeps
// hooks and suspense from needing to import the runtime package.
func SetRerenderNotifier(fn func()) {
	rerenderNotifier.Store(fn)
}

// NotifyRerender tells the active runtime a state write or resolved
// resource needs a new pass. It is a no-op if no notifier is installed,
// which happens only in tests that drive the tree without a runtime.
func NotifyRerender() {
	if v := rerenderNotifier.Load(); v != nil {
		v.(func())()
	}
}
