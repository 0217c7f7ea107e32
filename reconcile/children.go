package reconcile

import (
	"github.com/loomkit/loom/dom"
	"github.com/loomkit/loom/vtree"
)

func getKey(vn *vtree.VNode) string {
	if vn == nil {
		return ""
	}
	return vn.Key
}

func hasKeys(children []*vtree.VNode) bool {
	for _, c := range children {
		if getKey(c) != "" {
			return true
		}
	}
	return false
}

// patchChildren reconciles prev into next under parentDOM, choosing
// key-based matching as soon as either side has a key anywhere and
// falling back to positional matching otherwise. Both strategies walk
// next right-to-left, maintaining the already-positioned node
// immediately following the current slot as the insertion anchor — by
// the time a slot is processed, everything to its right is already in
// its final place, so the anchor is always valid.
func patchChildren(doc dom.Document, parentDOM dom.Node, prev, next []*vtree.VNode) {
	if hasKeys(prev) || hasKeys(next) {
		patchKeyedChildren(doc, parentDOM, prev, next)
		return
	}
	patchUnkeyedChildren(doc, parentDOM, prev, next)
}

func patchUnkeyedChildren(doc dom.Document, parentDOM dom.Node, prev, next []*vtree.VNode) {
	maxLen := len(prev)
	if len(next) > maxLen {
		maxLen = len(next)
	}

	var anchor dom.Node
	for i := maxLen - 1; i >= 0; i-- {
		var prevChild, nextChild *vtree.VNode
		if i < len(prev) {
			prevChild = prev[i]
		}
		if i < len(next) {
			nextChild = next[i]
		}

		switch {
		case prevChild == nil:
			mountInto(doc, parentDOM, nextChild, anchor)
		case nextChild == nil:
			unmountFrom(doc, parentDOM, prevChild)
			continue
		default:
			patch(doc, parentDOM, prevChild, nextChild)
		}

		if n := firstRealNode(nextChild); n != nil {
			anchor = n
		}
	}
}

func patchKeyedChildren(doc dom.Document, parentDOM dom.Node, prev, next []*vtree.VNode) {
	prevByKey := make(map[string]*vtree.VNode, len(prev))
	prevIndex := make(map[string]int, len(prev))
	for i, c := range prev {
		if k := getKey(c); k != "" {
			prevByKey[k] = c
			prevIndex[k] = i
		}
	}

	matched := make(map[string]bool, len(prev))

	var anchor dom.Node
	for i := len(next) - 1; i >= 0; i-- {
		nextChild := next[i]
		key := getKey(nextChild)

		switch prevChild, ok := prevByKey[key]; {
		case key == "" || !ok:
			mountInto(doc, parentDOM, nextChild, anchor)
		default:
			matched[key] = true
			patch(doc, parentDOM, prevChild, nextChild)
			if prevIndex[key] != i {
				moveNode(doc, parentDOM, nextChild, anchor)
			}
		}

		if n := firstRealNode(nextChild); n != nil {
			anchor = n
		}
	}

	for _, c := range prev {
		if k := getKey(c); k == "" || !matched[k] {
			unmountFrom(doc, parentDOM, c)
		}
	}
}

// moveNode relocates vn's already-mounted DOM node(s) to sit right
// before the `before` reference, without recreating them.
func moveNode(doc dom.Document, parentDOM dom.Node, vn *vtree.VNode, before dom.Node) {
	switch vn.Kind {
	case vtree.KindText, vtree.KindElement:
		doc.InsertBefore(parentDOM, vn.DOMHandle, before)
	case vtree.KindFragment:
		for _, c := range vn.Children {
			moveNode(doc, parentDOM, c, before)
		}
	}
}
