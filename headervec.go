package headervec

import (
	"sync/atomic"
	"unsafe"
)

// HeaderVec stores a header value of type H and a run of elements of
// type T in a single allocation. The struct itself is one machine word:
// a pointer to the start of that allocation. Exactly one HeaderVec per
// allocation is the owner and is responsible for calling Release.
//
// H and T must not contain Go pointers and T must not be zero-sized;
// WithCapacity panics otherwise.
type HeaderVec[H, T any] struct {
	ptr unsafe.Pointer
}

// New creates a HeaderVec holding head, with capacity for one element.
func New[H, T any](head H) HeaderVec[H, T] {
	return WithCapacity[H, T](1, head)
}

// WithCapacity creates a HeaderVec holding head, with room for capacity
// elements before the first reallocation. Panics if capacity is not
// positive or if H or T fail layout validation.
func WithCapacity[H, T any](capacity int, head H) HeaderVec[H, T] {
	if capacity <= 0 {
		panic("headervec: capacity cannot be 0")
	}
	validateLayout[H, T]()
	v := HeaderVec[H, T]{ptr: allocBytes(capacityToBytes[H, T](uintptr(capacity)))}
	h := v.header()
	h.head = head
	h.cap = uintptr(capacity)
	h.len = 0
	return v
}

// header returns the record at the start of the allocation.
func (v *HeaderVec[H, T]) header() *hdr[H] {
	v.panicIfReleased()
	return (*hdr[H])(v.ptr)
}

// start returns the address of element 0.
func (v *HeaderVec[H, T]) start() unsafe.Pointer {
	return startPtr[H, T](v.ptr)
}

// panicIfReleased panics if the owning handle has been released.
func (v *HeaderVec[H, T]) panicIfReleased() {
	if v.ptr == nil {
		panic("headervec: use after Release()")
	}
}

// Head returns a pointer to the header value. The container "is" its
// header for callers that only care about their own payload; reads and
// writes go through this pointer.
func (v *HeaderVec[H, T]) Head() *H {
	return &v.header().head
}

// Len returns the number of live elements. Safe to call concurrently
// with a single PushAtomic writer; the count may lag the writer.
func (v *HeaderVec[H, T]) Len() int {
	return int(atomic.LoadUintptr(&v.header().len))
}

// LenExact returns the number of live elements via a plain read. Only
// the owner may call it, and not concurrently with PushAtomic.
func (v *HeaderVec[H, T]) LenExact() int {
	return int(v.header().len)
}

// IsEmpty reports whether the vector holds no elements.
func (v *HeaderVec[H, T]) IsEmpty() bool {
	return v.Len() == 0
}

// Cap returns the element capacity of the current allocation.
func (v *HeaderVec[H, T]) Cap() int {
	return int(v.header().cap)
}

// Slice returns the live element run [0, len) as a slice aliasing the
// allocation. The slice is invalidated by any operation that reports a
// move. Owner-only; concurrent readers use SliceStrict.
func (v *HeaderVec[H, T]) Slice() []T {
	return unsafe.Slice((*T)(v.start()), v.LenExact())
}

// At returns the element at index i. Panics if i is out of range, with
// ordinary slice indexing semantics.
func (v *HeaderVec[H, T]) At(i int) T {
	return v.Slice()[i]
}

// SetAt replaces the element at index i. Panics if i is out of range.
func (v *HeaderVec[H, T]) SetAt(i int, item T) {
	v.Slice()[i] = item
}

// Clear destroys all elements but keeps the allocation and header.
func (v *HeaderVec[H, T]) Clear() {
	h := v.header()
	clear(unsafe.Slice((*T)(v.start()), h.len))
	h.len = 0
}

// Release destroys the header and all live elements and detaches the
// handle from the allocation. The handle is unusable afterwards; any
// subsequent operation panics. Weak handles captured earlier still pin
// the (wiped) allocation until they are dropped.
func (v *HeaderVec[H, T]) Release() {
	h := v.header()
	clear(unsafe.Slice((*byte)(v.ptr), capacityToBytes[H, T](h.cap)))
	v.ptr = nil
}
