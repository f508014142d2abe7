package headervec

import (
	"fmt"
	"slices"
	"unsafe"
)

// Clone returns an independent copy of v holding the same header and
// elements, with capacity max(len, 1). Mutating the clone never
// affects the source and vice versa. Because layout validation only
// admits pointer-free types, the copy is a plain byte copy.
func (v *HeaderVec[H, T]) Clone() HeaderVec[H, T] {
	h := v.header()
	newCap := max(h.len, 1)
	c := HeaderVec[H, T]{ptr: allocBytes(capacityToBytes[H, T](newCap))}
	copy(
		unsafe.Slice((*byte)(c.ptr), capacityToBytes[H, T](newCap)),
		unsafe.Slice((*byte)(v.ptr), capacityToBytes[H, T](h.len)),
	)
	c.header().cap = newCap
	return c
}

// Equal reports whether a and b hold equal header values and equal
// element runs. A top-level function because methods cannot introduce
// the comparable constraints.
func Equal[H, T comparable](a, b *HeaderVec[H, T]) bool {
	if a.header().head != b.header().head {
		return false
	}
	return slices.Equal(a.Slice(), b.Slice())
}

// String formats the header and elements for debugging.
func (v *HeaderVec[H, T]) String() string {
	if v.ptr == nil {
		return "HeaderVec(released)"
	}
	return fmt.Sprintf("HeaderVec{head: %v, slice: %v}", v.header().head, v.Slice())
}
