// Package vtree builds an element.Element tree into a VNode tree: it
// resolves every composite by invoking its ComponentFunc inside its own
// hooktree node, substitutes a Suspense's fallback for any subtree
// still waiting on a resource, and flattens fragments and raw
// slices/primitives into a tree of only text, element, and fragment
// nodes. The result is what reconcile diffs against the live DOM.
package vtree
