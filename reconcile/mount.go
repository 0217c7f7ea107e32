package reconcile

import (
	"github.com/loomkit/loom/dom"
	"github.com/loomkit/loom/vtree"
)

// mountInto creates vn's DOM representation (recursing through
// fragments, which contribute no node of their own) and inserts it into
// parentDOM immediately before the live node `before`, or at the end if
// before is nil.
func mountInto(doc dom.Document, parentDOM dom.Node, vn *vtree.VNode, before dom.Node) {
	switch vn.Kind {
	case vtree.KindText:
		vn.DOMHandle = doc.CreateText(vn.Text)
		insertAt(doc, parentDOM, vn.DOMHandle, before)

	case vtree.KindElement:
		n := doc.CreateElement(vn.Tag)
		vn.DOMHandle = n
		applyProps(doc, n, nil, vn.Props)
		// vn.Children is always empty for a void element; vtree.Build
		// never populates it (see vtree/build.go's KindIntrinsic case).
		for _, c := range vn.Children {
			mountInto(doc, n, c, nil)
		}
		insertAt(doc, parentDOM, n, before)

	case vtree.KindFragment:
		for _, c := range vn.Children {
			mountInto(doc, parentDOM, c, before)
		}
	}
}

func insertAt(doc dom.Document, parent, child, before dom.Node) {
	if before == nil {
		doc.Append(parent, child)
	} else {
		doc.InsertBefore(parent, child, before)
	}
}

// unmountFrom detaches vn's DOM representation from parentDOM and
// clears any ref it (or its descendants) published.
func unmountFrom(doc dom.Document, parentDOM dom.Node, vn *vtree.VNode) {
	switch vn.Kind {
	case vtree.KindText:
		doc.Remove(parentDOM, vn.DOMHandle)

	case vtree.KindElement:
		doc.Remove(parentDOM, vn.DOMHandle)
		clearRefs(vn)

	case vtree.KindFragment:
		for _, c := range vn.Children {
			unmountFrom(doc, parentDOM, c)
		}
	}
}

func clearRefs(vn *vtree.VNode) {
	if vn.Kind == vtree.KindElement {
		if r, ok := vn.Props["ref"]; ok {
			assignRef(r, nil)
		}
	}
	for _, c := range vn.Children {
		clearRefs(c)
	}
}

func assignRef(v any, node dom.Node) {
	if r, ok := v.(dom.Ref); ok {
		r.SetCurrent(node)
	}
}

// firstRealNode returns the first live DOM node vn's subtree mounts to,
// descending through fragments; nil if vn mounts no node at all (an
// empty fragment).
func firstRealNode(vn *vtree.VNode) dom.Node {
	switch vn.Kind {
	case vtree.KindText, vtree.KindElement:
		return vn.DOMHandle
	case vtree.KindFragment:
		for _, c := range vn.Children {
			if n := firstRealNode(c); n != nil {
				return n
			}
		}
	}
	return nil
}

