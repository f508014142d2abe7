package headervec

import (
	"sync/atomic"
	"unsafe"
)

// Weak is a non-owning alias of a HeaderVec's allocation: a byte copy
// of the owner's pointer. Creating one performs no allocation and no
// synchronization, and dropping one never releases anything.
//
// A Weak is valid only while the owning handle is alive and no
// operation reporting moved=true has run since the Weak was captured
// or last resynchronized. The owner must call Update on every
// outstanding Weak after such an operation; using a stale Weak reads
// the abandoned pre-move allocation. Appropriate for structures where
// the owner can enumerate every weak holder, e.g. graph nodes fixing
// up their edge lists after a reallocating append.
type Weak[H, T any] struct {
	ptr unsafe.Pointer
}

// Weak returns a non-owning handle aliasing the same allocation.
func (v *HeaderVec[H, T]) Weak() Weak[H, T] {
	v.panicIfReleased()
	return Weak[H, T]{ptr: v.ptr}
}

// Update resynchronizes w to the owner's current allocation. Call it
// for every outstanding Weak after an operation reported moved=true.
func (w *Weak[H, T]) Update(owner *HeaderVec[H, T]) {
	owner.panicIfReleased()
	w.ptr = owner.ptr
}

// IsStale reports whether w no longer points at owner's current
// allocation.
func (w *Weak[H, T]) IsStale(owner *HeaderVec[H, T]) bool {
	owner.panicIfReleased()
	return w.ptr != owner.ptr
}

func (w *Weak[H, T]) header() *hdr[H] {
	if w.ptr == nil {
		panic("headervec: use of zero Weak")
	}
	return (*hdr[H])(w.ptr)
}

// Head returns a pointer to the header value through the alias.
func (w *Weak[H, T]) Head() *H {
	return &w.header().head
}

// Len returns the element count through the alias. Safe to call
// concurrently with a single PushAtomic writer.
func (w *Weak[H, T]) Len() int {
	return int(atomic.LoadUintptr(&w.header().len))
}

// Slice returns the live element run through the alias.
func (w *Weak[H, T]) Slice() []T {
	return unsafe.Slice((*T)(startPtr[H, T](w.ptr)), w.Len())
}

// At returns the element at index i through the alias. Panics if i is
// out of range.
func (w *Weak[H, T]) At(i int) T {
	return w.Slice()[i]
}
