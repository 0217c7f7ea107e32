package element

import "testing"

func TestCreateElementMergesChildren(t *testing.T) {
	el := CreateElement("div", Props{"class": "box"}, "hello", "world")

	if el.Kind != KindIntrinsic || el.Tag != "div" {
		t.Fatalf("expected an intrinsic div, got %+v", el)
	}
	kids := el.Props.Children()
	if len(kids) != 2 || kids[0] != "hello" || kids[1] != "world" {
		t.Errorf("expected children [hello world], got %v", kids)
	}
	if el.Props["class"] != "box" {
		t.Errorf("expected class prop preserved, got %v", el.Props["class"])
	}
}

func TestCreateElementLiftsKey(t *testing.T) {
	el := CreateElement("li", Props{"key": "row-3"})
	if el.Key != "row-3" {
		t.Errorf("expected key lifted onto Element.Key, got %q", el.Key)
	}
}

func TestCreateElementFragmentAndSuspense(t *testing.T) {
	frag := CreateElement(Fragment, nil, "a", "b")
	if frag.Kind != KindFragment {
		t.Errorf("expected KindFragment, got %v", frag.Kind)
	}

	susp := CreateElement(Suspense, Props{"fallback": "Loading..."}, "child")
	if susp.Kind != KindSuspense {
		t.Errorf("expected KindSuspense, got %v", susp.Kind)
	}
	if susp.Fallback != "Loading..." {
		t.Errorf("expected fallback preserved, got %v", susp.Fallback)
	}
}

func TestNewCompositeIdentityOverride(t *testing.T) {
	fn := func(props Props) Element { return Element{Kind: KindFragment} }
	a := NewComposite("context-1", fn, nil)
	b := NewComposite("context-2", fn, nil)

	if a.Identity == b.Identity {
		t.Error("expected distinct explicit identities to differ even with a shared ComponentFunc")
	}
}

func TestHDispatchesMixedArgs(t *testing.T) {
	clicked := func(any) {}
	el := H("button", Class("primary"), Key("submit"), OnClick(clicked), "Save")

	if el.Tag != "button" {
		t.Fatalf("expected button, got %q", el.Tag)
	}
	if el.Props["class"] != "primary" {
		t.Errorf("expected class attr merged, got %v", el.Props["class"])
	}
	if el.Key != "submit" {
		t.Errorf("expected key lifted, got %q", el.Key)
	}
	if _, ok := el.Props["onclick"]; !ok {
		t.Error("expected onclick handler merged into props")
	}
	if kids := el.Props.Children(); len(kids) != 1 || kids[0] != "Save" {
		t.Errorf("expected one text child, got %v", kids)
	}
}

func TestHIgnoresNilArgs(t *testing.T) {
	var noAttr Attr
	el := H("div", nil, noAttr)
	if len(el.Props) != 1 { // only children; the empty-key Attr is dropped
		t.Errorf("expected nil args ignored and zero-key Attr dropped, got props %v", el.Props)
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") {
		t.Error("expected br to be a void element")
	}
	if IsVoidElement("div") {
		t.Error("expected div not to be a void element")
	}
}

func TestIsEventProp(t *testing.T) {
	if !IsEventProp("onclick") {
		t.Error("expected onclick to be recognized as an event prop")
	}
	if IsEventProp("on") {
		t.Error("expected the bare prefix 'on' not to count as an event prop")
	}
	if IsEventProp("id") {
		t.Error("expected a plain attribute name not to be treated as an event prop")
	}
}

func TestIsEventPropCaseInsensitive(t *testing.T) {
	if !IsEventProp("onClick") {
		t.Error("expected the camelCase onClick to be recognized as an event prop")
	}
	if !IsEventProp("ONCLICK") {
		t.Error("expected the all-caps ONCLICK to be recognized as an event prop")
	}
}
