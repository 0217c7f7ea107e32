package runtime

import (
	"log/slog"
	"sync"

	"github.com/loomkit/loom/dom"
	"github.com/loomkit/loom/element"
	"github.com/loomkit/loom/hooktree"
	"github.com/loomkit/loom/reconcile"
	"github.com/loomkit/loom/vtree"
)

// Runtime mounts one application root against one dom.Document and
// drives its render passes. It is safe to call RequestRerender from
// any goroutine (event handlers, resource fetches). Mount runs the
// first pass on the caller's goroutine and later passes run on a
// dedicated goroutine; a mutex keeps every pass one at a time, matching
// invariant 6 of the spec's single-flight requirement.
type Runtime struct {
	document dom.Document
	logger   *slog.Logger
	onError  func(error)

	mu        sync.Mutex
	tree      *hooktree.Tree
	container dom.Node
	root      element.Element
	prevVNode *vtree.VNode
	mounted   bool

	pending chan struct{}
	stop    chan struct{}
	done    chan struct{}
}

// New creates a Runtime over document. Call Mount to render a root
// into a container node.
func New(document dom.Document, config Config) *Runtime {
	return &Runtime{
		document: document,
		logger:   config.logger(),
		onError:  config.OnUserError,
		pending:  make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Mount renders root into container for the first time and starts the
// background goroutine that drains coalesced RequestRerender calls.
// Calling Mount twice on the same Runtime panics.
func (r *Runtime) Mount(container dom.Node, root element.Element) error {
	r.mu.Lock()
	if r.mounted {
		r.mu.Unlock()
		panic("runtime: Mount called twice on the same Runtime")
	}
	r.mounted = true
	r.container = container
	r.root = root
	r.tree = hooktree.NewTree()
	r.mu.Unlock()

	hooktree.Activate(r.tree)
	hooktree.SetRerenderNotifier(r.RequestRerender)

	go r.loop()

	return r.runPass()
}

// RequestRerender schedules another pass. Multiple requests that land
// before the scheduler gets to run are coalesced into one pass, the
// same way Batch coalesces signal notifications that arrive before the
// outermost batch completes.
func (r *Runtime) RequestRerender() {
	select {
	case r.pending <- struct{}{}:
	default:
	}
}

// Stop halts the background goroutine. The Runtime cannot be restarted.
func (r *Runtime) Stop() {
	close(r.stop)
	<-r.done
}

func (r *Runtime) loop() {
	defer close(r.done)
	for {
		select {
		case <-r.stop:
			return
		case <-r.pending:
			if err := r.runPass(); err != nil {
				r.reportError(err)
			}
		}
	}
}

// runPass drives one flush → startPass → build → reconcile → endPass →
// deferred-effects cycle, per §4.7.
func (r *Runtime) runPass() (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hooktree.Activate(r.tree)
	r.tree.Flush()
	r.tree.StartPass()

	vnode, buildErr := vtree.Build(r.tree, r.root)
	if buildErr != nil {
		r.tree.EndPass()
		return buildErr
	}

	r.prevVNode = reconcile.Reconcile(r.document, r.container, r.prevVNode, vnode)
	r.tree.EndPass()

	defer func() {
		if rec := recover(); rec != nil {
			err = &vtree.UserError{Cause: rec}
		}
	}()
	r.tree.RunDeferredEffects()

	r.logger.Debug("runtime: pass complete")
	return nil
}

func (r *Runtime) reportError(err error) {
	r.logger.Warn("runtime: pass failed", "error", err)
	if r.onError != nil {
		r.onError(err)
	}
}
