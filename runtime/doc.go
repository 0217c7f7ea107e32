// Package runtime owns the render pipeline end to end: it holds the
// hook-state tree and the previously reconciled VNode tree for one
// mounted application, and drives the flush → build → reconcile pass
// in response to Mount and RequestRerender calls, coalescing concurrent
// requests into a single-flight queue the way pkg/vango/batch.go
// coalesces signal notifications.
package runtime
