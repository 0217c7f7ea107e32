package reactortest

import (
	"testing"

	"github.com/loomkit/loom/dom/memdom"
	"github.com/loomkit/loom/element"
	"github.com/loomkit/loom/runtime"
)

// Mounted bundles a mounted Runtime together with the memdom body it
// rendered into, so a test can both dispatch events and assert on
// resulting DOM state without re-deriving either.
type Mounted struct {
	Runtime *runtime.Runtime
	Body    *memdom.Node
	Doc     *memdom.Document
}

// Mount renders root into a fresh in-memory document's body and
// returns the mounted Runtime alongside that body, ready for
// assertions and event dispatch. It fails the test immediately if the
// first pass errors.
func Mount(t *testing.T, root element.Element) *Mounted {
	t.Helper()
	doc := memdom.New()
	body := doc.CreateElement("body").(*memdom.Node)

	rt := runtime.New(doc, runtime.Config{})
	if err := rt.Mount(body, root); err != nil {
		t.Fatalf("reactortest: Mount failed: %v", err)
	}
	t.Cleanup(rt.Stop)

	return &Mounted{Runtime: rt, Body: body, Doc: doc}
}

// ExpectHTML asserts the mounted body's serialized HTML matches
// expected exactly.
func ExpectHTML(t *testing.T, n *memdom.Node, expected string) {
	t.Helper()
	if got := n.HTML(); got != expected {
		t.Errorf("expected HTML %q, got %q", expected, truncate(got, 500))
	}
}

// ExpectText asserts n is a text node holding expected.
func ExpectText(t *testing.T, n *memdom.Node, expected string) {
	t.Helper()
	if n.Kind != memdom.KindText {
		t.Fatalf("expected a text node, got %s", n.HTML())
	}
	if n.Text != expected {
		t.Errorf("expected text %q, got %q", expected, truncate(n.Text, 500))
	}
}

// ExpectAttr asserts n carries attr set to value.
func ExpectAttr(t *testing.T, n *memdom.Node, attr, value string) {
	t.Helper()
	got, ok := n.Attrs[attr]
	if !ok {
		t.Errorf("expected attribute %s to be set, got:\n%s", attr, truncate(n.HTML(), 500))
		return
	}
	if s, ok := got.(string); !ok || s != value {
		t.Errorf("expected attribute %s=%q, got %v", attr, value, got)
	}
}

// ExpectChildCount asserts n has exactly count children.
func ExpectChildCount(t *testing.T, n *memdom.Node, count int) {
	t.Helper()
	if len(n.Children) != count {
		t.Errorf("expected %d children, got %d:\n%s", count, len(n.Children), truncate(n.HTML(), 500))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
