package vtree

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/loomkit/loom/element"
	"github.com/loomkit/loom/hooktree"
)

var (
	funcIDs   sync.Map // uintptr -> uint64
	funcIDSeq uint64
)

// funcID assigns a process-unique, stable integer to a ComponentFunc's
// code pointer, memoized so the same function always maps to the same
// id across every render.
func funcID(fn element.ComponentFunc) uint64 {
	ptr := reflect.ValueOf(fn).Pointer()
	if v, ok := funcIDs.Load(ptr); ok {
		return v.(uint64)
	}
	id := atomic.AddUint64(&funcIDSeq, 1)
	actual, _ := funcIDs.LoadOrStore(ptr, id)
	return actual.(uint64)
}

// discriminator returns the value that distinguishes this composite's
// "kind" from any other composite at the same position: Identity when
// the element set one explicitly (Context.Provider does, since every
// instantiation of Context[T].Provider shares one compiled closure),
// otherwise the component function's own code pointer.
func discriminator(el element.Element) uint64 {
	if el.Identity != nil {
		h := fnv.New64a()
		fmt.Fprintf(h, "%#v", el.Identity)
		return h.Sum64()
	}
	return funcID(el.Component)
}

// nodeID combines the enclosing component's node id, this composite's
// discriminator, and either its explicit key or its position among
// unkeyed siblings, into the NodeID that addresses its hook state.
// Using the same three inputs on every render is what makes a
// component instance keep its state across reorders (via key) or,
// with no key, for as long as its index among its siblings is
// unchanged; inserting or removing a sibling before it gives it a new
// NodeID.
func nodeID(parent hooktree.NodeID, disc uint64, key string, slot int) hooktree.NodeID {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(parent))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], disc)
	h.Write(buf[:])
	if key != "" {
		h.Write([]byte{1})
		h.Write([]byte(key))
	} else {
		h.Write([]byte{0})
		binary.LittleEndian.PutUint64(buf[:], uint64(slot))
		h.Write(buf[:])
	}
	return hooktree.NodeID(h.Sum64())
}
