// Package memdom is an in-memory dom.Document used by tests and by any
// host that doesn't need a real browser: it tracks the same tree,
// attributes, and listeners a real DOM would, so reconciler behavior
// can be asserted against directly.
package memdom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/loomkit/loom/dom"
)

// NodeKind discriminates the two concrete node shapes memdom tracks.
type NodeKind uint8

const (
	KindElement NodeKind = iota
	KindText
)

// Node is memdom's concrete dom.Node payload. Document methods return
// *Node values; callers reach them only through the dom.Node handle
// type, same as a real browser node would be.
type Node struct {
	Kind     NodeKind
	Tag      string
	Text     string
	Attrs    map[string]any
	Parent   *Node
	Children []*Node

	listeners map[string]dom.EventHandler
}

// Document is an in-memory dom.Document implementation. It holds no
// root of its own: callers create the container element (typically a
// body) with CreateElement and mount into it.
type Document struct {
	events []string // ordered log of "op target" entries, for assertions
}

// New returns an empty Document.
func New() *Document {
	return &Document{}
}

func (d *Document) log(format string, args ...any) {
	d.events = append(d.events, fmt.Sprintf(format, args...))
}

// Log returns every mutating operation applied so far, in order. Tests
// use it to assert the reconciler only touched what it needed to.
func (d *Document) Log() []string {
	out := make([]string, len(d.events))
	copy(out, d.events)
	return out
}

func asNode(n dom.Node) *Node {
	if n == nil {
		return nil
	}
	mn, ok := n.(*Node)
	if !ok {
		panic(fmt.Sprintf("memdom: expected *memdom.Node, got %T", n))
	}
	return mn
}

func (d *Document) CreateText(s string) dom.Node {
	d.log("create-text %q", s)
	return &Node{Kind: KindText, Text: s}
}

func (d *Document) CreateElement(tag string) dom.Node {
	d.log("create-element <%s>", tag)
	return &Node{Kind: KindElement, Tag: tag, Attrs: map[string]any{}}
}

func (d *Document) SetText(n dom.Node, s string) {
	mn := asNode(n)
	d.log("set-text <%s> %q", mn.describe(), s)
	mn.Text = s
}

func (d *Document) SetAttr(n dom.Node, name string, value any) {
	mn := asNode(n)
	d.log("set-attr <%s> %s=%v", mn.describe(), name, value)
	if mn.Attrs == nil {
		mn.Attrs = map[string]any{}
	}
	mn.Attrs[name] = value
}

func (d *Document) RemoveAttr(n dom.Node, name string) {
	mn := asNode(n)
	d.log("remove-attr <%s> %s", mn.describe(), name)
	delete(mn.Attrs, name)
}

// SetStyle sets n's style attribute, rendering a map[string]string into
// semicolon-separated "prop: value;" CSS text with keys sorted for
// deterministic output; a string style is stored verbatim.
func (d *Document) SetStyle(n dom.Node, style any) {
	mn := asNode(n)
	css := styleToCSS(style)
	d.log("set-style <%s> %q", mn.describe(), css)
	if mn.Attrs == nil {
		mn.Attrs = map[string]any{}
	}
	mn.Attrs["style"] = css
}

func styleToCSS(style any) string {
	switch v := style.(type) {
	case string:
		return v
	case map[string]string:
		names := make([]string, 0, len(v))
		for k := range v {
			names = append(names, k)
		}
		sort.Strings(names)
		var b strings.Builder
		for i, k := range names {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(k)
			b.WriteString(": ")
			b.WriteString(v[k])
			b.WriteString(";")
		}
		return b.String()
	default:
		return fmt.Sprint(style)
	}
}

func (d *Document) AddEvent(n dom.Node, typ string, handler dom.EventHandler) {
	mn := asNode(n)
	d.log("add-event <%s> %s", mn.describe(), typ)
	if mn.listeners == nil {
		mn.listeners = map[string]dom.EventHandler{}
	}
	mn.listeners[typ] = handler
}

func (d *Document) RemoveEvent(n dom.Node, typ string) {
	mn := asNode(n)
	d.log("remove-event <%s> %s", mn.describe(), typ)
	delete(mn.listeners, typ)
}

func (d *Document) Append(parent, child dom.Node) {
	mp, mc := asNode(parent), asNode(child)
	d.log("append <%s> -> <%s>", mc.describe(), mp.describe())
	if mc.Parent != nil {
		mc.Parent.detachIfAttached(mc)
	}
	mc.Parent = mp
	mp.Children = append(mp.Children, mc)
}

func (d *Document) InsertBefore(parent, child, ref dom.Node) {
	mp, mc := asNode(parent), asNode(child)
	mr := asNode(ref)
	if mr == nil {
		d.Append(parent, child)
		return
	}
	d.log("insert <%s> before <%s> in <%s>", mc.describe(), mr.describe(), mp.describe())
	mp.detachIfAttached(mc)
	mc.Parent = mp

	idx := mp.indexOf(mr)
	if idx < 0 {
		mp.Children = append(mp.Children, mc)
		return
	}
	mp.Children = append(mp.Children, nil)
	copy(mp.Children[idx+1:], mp.Children[idx:])
	mp.Children[idx] = mc
}

func (d *Document) Remove(parent, child dom.Node) {
	mp, mc := asNode(parent), asNode(child)
	d.log("remove <%s> from <%s>", mc.describe(), mp.describe())
	mp.detachIfAttached(mc)
	mc.Parent = nil
}

func (n *Node) indexOf(target *Node) int {
	for i, c := range n.Children {
		if c == target {
			return i
		}
	}
	return -1
}

func (n *Node) detachIfAttached(child *Node) {
	idx := n.indexOf(child)
	if idx < 0 {
		return
	}
	n.Children = append(n.Children[:idx], n.Children[idx+1:]...)
}

func (n *Node) describe() string {
	if n == nil {
		return "nil"
	}
	if n.Kind == KindText {
		return fmt.Sprintf("#text %q", n.Text)
	}
	return n.Tag
}

// Dispatch synthesizes an event of typ on n, invoking its listener if
// one is attached. It does not bubble; tests that need bubbling attach
// listeners directly to the nodes they expect to observe the event.
func (n *Node) Dispatch(typ string, native any) {
	h, ok := n.listeners[typ]
	if !ok {
		return
	}
	h(dom.Event{Type: typ, Target: n, Native: native})
}

// HTML renders n and its subtree as an HTML string, sorting attributes
// for deterministic test output.
func (n *Node) HTML() string {
	var b strings.Builder
	n.writeHTML(&b)
	return b.String()
}

func (n *Node) writeHTML(b *strings.Builder) {
	if n.Kind == KindText {
		b.WriteString(n.Text)
		return
	}
	b.WriteByte('<')
	b.WriteString(n.Tag)
	names := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(b, " %s=%q", k, fmt.Sprint(n.Attrs[k]))
	}
	b.WriteByte('>')
	for _, c := range n.Children {
		c.writeHTML(b)
	}
	fmt.Fprintf(b, "</%s>", n.Tag)
}
