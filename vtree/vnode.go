package vtree

import (
	"github.com/loomkit/loom/dom"
	"github.com/loomkit/loom/element"
	"github.com/loomkit/loom/hooktree"
)

// Kind discriminates a built VNode's three possible shapes. Composites
// and Suspense elements never survive into a VNode: building resolves
// a composite to whatever it rendered, and resolves a Suspense to
// either its children or its fallback.
type Kind uint8

const (
	KindText Kind = iota
	KindElement
	KindFragment
)

// VNode is one built node: a concrete DOM shape (text or element) or a
// transparent grouping (fragment) that doesn't get a DOM node of its
// own. DOMHandle is nil until reconcile mounts it.
type VNode struct {
	Kind Kind

	Tag   string
	Text  string
	Props element.Props
	Key   string

	Children []*VNode

	// ComponentID is the NodeID of the composite or Suspense that
	// resolved to this VNode, zero for a node built directly from a
	// literal element or text value. Reconcile requires this to match
	// alongside Kind/Tag before reusing a DOM node: without it, two
	// different components rendering the same tag at the same tree
	// position (e.g. a ternary swapping between them) would have their
	// DOM node silently reused instead of torn down and remounted.
	ComponentID hooktree.NodeID

	// DOMHandle is the live dom.Node this VNode is mounted to, set by
	// reconcile and left nil on a freshly built VNode.
	DOMHandle dom.Node
}
