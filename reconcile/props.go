package reconcile

import (
	"reflect"
	"strings"

	"github.com/loomkit/loom/dom"
	"github.com/loomkit/loom/element"
)

// skipProp reports whether key is never routed to the document at all:
// "children"/"key" are vtree bookkeeping, and "__self"/"__source" are
// always ignored, kept only for parity with authoring tooling that the
// out-of-scope factory may emit.
func skipProp(key string) bool {
	switch key {
	case "children", "key", "__self", "__source":
		return true
	}
	return false
}

// applyProps reconciles node's attributes/events/ref from prev to next.
// prev is nil on first mount, in which case every next entry is applied
// and nothing is removed.
func applyProps(doc dom.Document, node dom.Node, prev, next element.Props) {
	for k, v := range next {
		if skipProp(k) {
			continue
		}
		old, existed := prev[k]
		if existed && propEqual(old, v) {
			continue
		}
		setProp(doc, node, k, v)
	}
	for k, old := range prev {
		if skipProp(k) {
			continue
		}
		if _, ok := next[k]; ok {
			continue
		}
		clearProp(doc, node, k, old)
	}
}

func setProp(doc dom.Document, node dom.Node, key string, value any) {
	switch {
	case key == "ref":
		assignRef(value, node)
	case key == "style":
		doc.SetStyle(node, value)
	case key == "className":
		doc.SetAttr(node, "class", value)
	case element.IsEventProp(key):
		addEvent(doc, node, key, value)
	default:
		doc.SetAttr(node, key, value)
	}
}

func clearProp(doc dom.Document, node dom.Node, key string, old any) {
	switch {
	case key == "ref":
		assignRef(old, nil)
	case key == "style":
		doc.RemoveAttr(node, "style")
	case key == "className":
		doc.RemoveAttr(node, "class")
	case element.IsEventProp(key):
		doc.RemoveEvent(node, eventName(key))
	default:
		doc.RemoveAttr(node, key)
	}
}

func addEvent(doc dom.Document, node dom.Node, key string, value any) {
	switch h := value.(type) {
	case dom.EventHandler:
		doc.AddEvent(node, eventName(key), h)
	case func(dom.Event):
		doc.AddEvent(node, eventName(key), dom.EventHandler(h))
	}
}

// eventName derives the DOM event type a prop key like "onClick"
// listens for: the remainder after "on", lower-cased, since a real
// browser only ever fires lowercase native event types.
func eventName(key string) string {
	return strings.ToLower(key[2:])
}

// propEqual compares prop values, fast-pathing the common concrete
// types and falling back to reflect.DeepEqual for everything else.
func propEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case nil:
		return b == nil
	default:
		return reflect.DeepEqual(a, b)
	}
}
