package vtree

import (
	"fmt"

	"github.com/loomkit/loom/element"
	"github.com/loomkit/loom/hooktree"
	"github.com/loomkit/loom/suspense"
)

// UserError wraps whatever value a component panicked with that was
// neither a *suspense.Pending (caught by the nearest Suspense) nor one
// of hooktree's own ContextError/HookOrderError (which already
// implement error and are returned as themselves). A UserError from
// Build aborts the whole pass: there is no partial tree to fall back
// to. The runtime also wraps a panic from a deferred effect in a
// UserError; by then that pass has already reconciled the DOM.
type UserError struct {
	Cause any
}

func (e *UserError) Error() string {
	if err, ok := e.Cause.(error); ok {
		return fmt.Sprintf("vtree: component panicked: %v", err)
	}
	return fmt.Sprintf("vtree: component panicked: %v", e.Cause)
}

func (e *UserError) Unwrap() error {
	err, _ := e.Cause.(error)
	return err
}

// Build turns root into a VNode tree, entering and invoking every
// composite it contains through tree, which must already have had
// StartPass called on it for this render. The top level recovers any
// panic a component raises: ContextError and HookOrderError propagate
// as themselves, a stray *suspense.Pending (one with no enclosing
// Suspense to catch it — normally impossible, since useResource checks
// for a boundary itself before panicking) is reported as a UserError,
// and anything else is wrapped in UserError.
func Build(tree *hooktree.Tree, root any) (vnode *VNode, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch v := r.(type) {
		case *hooktree.ContextError, *hooktree.HookOrderError:
			err = v.(error)
		default:
			err = &UserError{Cause: r}
		}
		vnode = nil
	}()
	return build(tree, root, 0), nil
}

// build is the recursive worker. slot is this value's index among all
// of its siblings, used only to derive a composite or Suspense child's
// NodeID when it has no explicit key.
func build(tree *hooktree.Tree, input any, slot int) *VNode {
	switch v := input.(type) {
	case nil:
		return &VNode{Kind: KindFragment}

	case string:
		return &VNode{Kind: KindText, Text: v}

	case []any:
		return &VNode{Kind: KindFragment, Children: buildChildren(tree, v)}

	case element.Element:
		return buildElement(tree, v, slot)

	default:
		return &VNode{Kind: KindText, Text: fmt.Sprint(v)}
	}
}

func buildChildren(tree *hooktree.Tree, items []any) []*VNode {
	out := make([]*VNode, 0, len(items))
	for i, item := range items {
		out = append(out, build(tree, item, i))
	}
	return out
}

func buildElement(tree *hooktree.Tree, el element.Element, slot int) *VNode {
	switch el.Kind {
	case element.KindIntrinsic:
		vn := &VNode{Kind: KindElement, Tag: el.Tag, Props: el.Props, Key: el.Key}
		if !element.IsVoidElement(el.Tag) {
			vn.Children = buildChildren(tree, el.Props.Children())
		}
		return vn

	case element.KindFragment:
		return &VNode{Kind: KindFragment, Key: el.Key, Children: buildChildren(tree, el.Props.Children())}

	case element.KindComposite:
		return buildComposite(tree, el, slot)

	case element.KindSuspense:
		return buildSuspense(tree, el, slot)

	default:
		panic(fmt.Sprintf("vtree: unknown element kind %v", el.Kind))
	}
}

func buildComposite(tree *hooktree.Tree, el element.Element, slot int) *VNode {
	parent := tree.Current().ID
	id := nodeID(parent, discriminator(el), el.Key, slot)

	tree.Enter(id)
	defer tree.Exit()

	rendered := el.Component(el.Props)
	vnode := build(tree, rendered, 0)
	vnode.ComponentID = id
	return vnode
}

func buildSuspense(tree *hooktree.Tree, el element.Element, slot int) *VNode {
	parent := tree.Current().ID
	id := nodeID(parent, suspenseDiscriminator, el.Key, slot)

	tree.Enter(id)
	defer tree.Exit()
	tree.Current().SetContext(hooktree.SuspenseBoundaryContext, true)

	vnode, pending := suspense.Catch(func() *VNode {
		return &VNode{Kind: KindFragment, Children: buildChildren(tree, el.Props.Children())}
	})
	if !pending {
		vnode.ComponentID = id
		return vnode
	}
	fallback := build(tree, el.Fallback, 0)
	fallback.ComponentID = id
	return fallback
}

// suspenseDiscriminator is a fixed, arbitrary value distinguishing
// Suspense nodes from composite nodes in the NodeID hash; Suspense
// elements have no ComponentFunc to derive one from.
const suspenseDiscriminator = ^uint64(0)
