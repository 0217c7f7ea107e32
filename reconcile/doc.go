// Package reconcile diffs two vtree.VNode trees and applies the
// difference directly to a dom.Document: unlike a patch-list design,
// there is no intermediate wire format — Reconcile mutates the live
// document as it walks both trees and leaves next's VNodes holding the
// dom.Node handles the document now has mounted.
package reconcile
