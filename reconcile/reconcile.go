package reconcile

import (
	"github.com/loomkit/loom/dom"
	"github.com/loomkit/loom/vtree"
)

// Reconcile applies the difference between prev and next to parentDOM
// and returns next, with every VNode in its subtree carrying the live
// dom.Node it now owns. prev nil mounts next fresh; next nil unmounts
// prev and returns nil.
func Reconcile(doc dom.Document, parentDOM dom.Node, prev, next *vtree.VNode) *vtree.VNode {
	switch {
	case prev == nil && next == nil:
		return nil
	case prev == nil:
		mountInto(doc, parentDOM, next, nil)
		return next
	case next == nil:
		unmountFrom(doc, parentDOM, prev)
		return nil
	default:
		patch(doc, parentDOM, prev, next)
		return next
	}
}

// patch updates prev's live DOM node(s) in place to match next, or
// replaces them outright when their kind, tag, or originating
// component differs.
func patch(doc dom.Document, parentDOM dom.Node, prev, next *vtree.VNode) {
	if !canReuse(prev, next) {
		replace(doc, parentDOM, prev, next)
		return
	}

	switch prev.Kind {
	case vtree.KindText:
		next.DOMHandle = prev.DOMHandle
		if prev.Text != next.Text {
			doc.SetText(next.DOMHandle, next.Text)
		}

	case vtree.KindElement:
		next.DOMHandle = prev.DOMHandle
		applyProps(doc, next.DOMHandle, prev.Props, next.Props)
		patchChildren(doc, next.DOMHandle, prev.Children, next.Children)

	case vtree.KindFragment:
		patchChildren(doc, parentDOM, prev.Children, next.Children)
	}
}

// canReuse reports whether next may reuse prev's live DOM node(s):
// both must be the same Kind, the same Tag if they're elements, and
// the same originating ComponentID, so a different component rendering
// the same tag at the same position is torn down rather than reused.
func canReuse(prev, next *vtree.VNode) bool {
	if prev.Kind != next.Kind {
		return false
	}
	if prev.Kind == vtree.KindElement && prev.Tag != next.Tag {
		return false
	}
	return prev.ComponentID == next.ComponentID
}

// replace mounts next in prev's place, preserving prev's sibling
// position, then tears prev down.
func replace(doc dom.Document, parentDOM dom.Node, prev, next *vtree.VNode) {
	before := firstRealNode(prev)
	mountInto(doc, parentDOM, next, before)
	unmountFrom(doc, parentDOM, prev)
}
