// Package suspense defines the panic/recover protocol the builder uses
// to render a fallback in place of a subtree that is still waiting on
// an asynchronous resource. It has no knowledge of hooks or the tree;
// hooks.Use panics with a *Pending value, and vtree's Suspense builder
// case catches it with Catch.
package suspense

import "errors"

// ErrNoSuspenseBoundary is the error hooks.Use panics with when called
// with no ancestor Suspense element to catch a pending resource.
var ErrNoSuspenseBoundary = errors.New("suspense: use() called with no ancestor Suspense boundary")

// Pending is the panic value a resource hook raises while its factory
// is still running. Key, when set, identifies which resource is
// pending, for diagnostics only.
type Pending struct {
	Key string
}

func (p *Pending) Error() string {
	if p.Key == "" {
		return "suspense: resource pending"
	}
	return "suspense: resource pending: " + p.Key
}

// Catch runs fn and recovers a *Pending panic raised anywhere inside
// it, reporting whether one was caught. Any other panic propagates
// unchanged, since only a Suspense boundary is equipped to handle a
// pending resource.
func Catch[T any](fn func() T) (result T, pending bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*Pending); ok {
				pending = true
				return
			}
			panic(r)
		}
	}()
	result = fn()
	return result, false
}
