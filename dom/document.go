package dom

// Node is an opaque handle to a live node in the host document. The
// reconciler never inspects it; it only passes handles it received
// from Document back into Document.
type Node any

// Event is the payload delivered to an EventHandler when a listened-for
// DOM event fires.
type Event struct {
	Type   string
	Target Node
	Native any
}

// EventHandler is invoked when its event fires.
type EventHandler func(Event)

// Document is the full set of host operations the reconciler needs to
// mount, update, move, and unmount nodes (spec §4.1, §6).
type Document interface {
	// CreateText creates a new text node holding s.
	CreateText(s string) Node
	// CreateElement creates a new, empty element for the given tag.
	CreateElement(tag string) Node
	// SetText replaces a text node's content.
	SetText(n Node, s string)
	// SetAttr sets or replaces a non-event attribute.
	SetAttr(n Node, name string, value any)
	// RemoveAttr removes a previously set attribute.
	RemoveAttr(n Node, name string)
	// SetStyle sets n's style attribute from style, which may be a
	// literal CSS string or a map[string]string of property to value.
	SetStyle(n Node, style any)
	// AddEvent attaches handler for typ (e.g. "click") to n.
	AddEvent(n Node, typ string, handler EventHandler)
	// RemoveEvent detaches the handler previously attached for typ.
	RemoveEvent(n Node, typ string)
	// Append appends child as parent's last child.
	Append(parent, child Node)
	// InsertBefore inserts child into parent immediately before ref. A
	// nil ref means append at the end.
	InsertBefore(parent, child, ref Node)
	// Remove detaches child from parent.
	Remove(parent, child Node)
}
