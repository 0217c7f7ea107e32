// Package dom defines the narrow interface the reconciler drives to
// keep a live document in sync with a built virtual tree. Any
// conforming implementation — dom/memdom's in-memory model for tests,
// or a syscall/js adapter over a browser document — can stand in
// behind it.
package dom
