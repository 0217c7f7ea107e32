package vtree

import (
	"errors"
	"testing"

	"github.com/loomkit/loom/element"
	"github.com/loomkit/loom/hooks"
	"github.com/loomkit/loom/hooktree"
)

func newTestTree() *hooktree.Tree {
	tree := hooktree.NewTree()
	hooktree.Activate(tree)
	return tree
}

func TestBuildIntrinsicWithTextChild(t *testing.T) {
	tree := newTestTree()
	tree.StartPass()

	vn, err := Build(tree, element.CreateElement("div", nil, "hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vn.Kind != KindElement || vn.Tag != "div" {
		t.Fatalf("expected a div element, got %+v", vn)
	}
	if len(vn.Children) != 1 || vn.Children[0].Kind != KindText || vn.Children[0].Text != "hello" {
		t.Fatalf("expected one text child \"hello\", got %+v", vn.Children)
	}
}

func TestBuildOmitsChildrenForVoidElements(t *testing.T) {
	tree := newTestTree()
	tree.StartPass()

	vn, err := Build(tree, element.CreateElement("img", element.Props{"src": "a.png"}, "caption"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vn.Kind != KindElement || vn.Tag != "img" {
		t.Fatalf("expected an img element, got %+v", vn)
	}
	if len(vn.Children) != 0 {
		t.Fatalf("expected a void element to carry no children, got %+v", vn.Children)
	}
}

func counter(props element.Props) element.Element {
	count, set := hooks.UseState(0)
	_ = set
	return element.CreateElement("span", nil, count)
}

func TestBuildCompositeStableAcrossPasses(t *testing.T) {
	tree := newTestTree()

	tree.StartPass()
	root := element.CreateElement(element.ComponentFunc(counter), nil)
	first, err := Build(tree, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree.EndPass()

	tree.Flush()
	tree.StartPass()
	second, err := Build(tree, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree.EndPass()

	if first.Tag != "span" || second.Tag != "span" {
		t.Fatalf("expected both builds to produce a span, got %q and %q", first.Tag, second.Tag)
	}
}

func statefulList(props element.Props) element.Element {
	n, set := hooks.UseState(0)
	_ = set
	label := "seen"
	if n == 0 {
		label = "fresh"
	}
	return element.CreateElement("li", element.Props{"key": props["key"]}, label)
}

func TestKeyedSiblingsGetDistinctNodeIDs(t *testing.T) {
	tree := newTestTree()
	tree.StartPass()

	a := element.CreateElement(element.ComponentFunc(statefulList), element.Props{"key": "a"})
	b := element.CreateElement(element.ComponentFunc(statefulList), element.Props{"key": "b"})
	idA := nodeID(tree.Root().ID, discriminator(a), a.Key, 0)
	idB := nodeID(tree.Root().ID, discriminator(b), b.Key, 1)

	if idA == idB {
		t.Error("expected siblings with different keys to get different NodeIDs")
	}
	tree.EndPass()
}

func TestBuildRecoversHookOrderErrorAsTypedError(t *testing.T) {
	tree := newTestTree()
	var setFlag hooks.SetState[int]

	unstable := func(props element.Props) element.Element {
		n, set := hooks.UseState(0)
		setFlag = set
		if n > 0 {
			hooks.UseRef(0) // extra hook on a later pass: order mismatch
		}
		return element.CreateElement("div", nil)
	}

	root := element.CreateElement(element.ComponentFunc(unstable), nil)

	tree.StartPass()
	if _, err := Build(tree, root); err != nil {
		t.Fatalf("unexpected error on first build: %v", err)
	}
	tree.EndPass()

	setFlag(1)

	tree.Flush()
	tree.StartPass()
	_, err := Build(tree, root)
	tree.EndPass()

	var hookErr *hooktree.HookOrderError
	if !errors.As(err, &hookErr) {
		t.Fatalf("expected a *hooktree.HookOrderError, got %v", err)
	}
}
