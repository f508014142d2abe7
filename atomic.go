package headervec

import (
	"errors"
	"sync/atomic"
	"unsafe"
)

// ErrFull is returned by PushAtomic when the vector has no spare
// capacity. The caller may grow through the exclusive Push or Reserve
// path and retry.
var ErrFull = errors.New("headervec: capacity exhausted")

// PushAtomic appends item without growing, publishing it to concurrent
// readers. At most one goroutine may call PushAtomic at a time; any
// number of goroutines may concurrently call Len, LenStrict or
// SliceStrict. The element is written into the free slot first and the
// length incremented after, so a reader that observes the new length
// also observes the fully initialized element.
//
// Returns ErrFull when len == cap, leaving the vector untouched.
// Growth is categorically excluded here: reallocating while a reader
// dereferences the old buffer is unsound, so expanding capacity always
// requires the exclusive path.
func (v *HeaderVec[H, T]) PushAtomic(item T) error {
	h := v.header()
	n := atomic.LoadUintptr(&h.len)
	if n >= h.cap {
		return ErrFull
	}
	*(*T)(unsafe.Add(v.start(), n*elemSize[T]())) = item
	if !atomic.CompareAndSwapUintptr(&h.len, n, n+1) {
		// Only a second concurrent writer can change len between the
		// load and the publish.
		panic("headervec: concurrent writers detected in PushAtomic")
	}
	return nil
}

// LenStrict returns the element count with a synchronizing read: every
// element below the returned count is fully initialized and visible to
// the calling goroutine.
func (v *HeaderVec[H, T]) LenStrict() int {
	return int(atomic.LoadUintptr(&v.header().len))
}

// SliceStrict returns the element run visible to a concurrent reader,
// bounded by a synchronizing length read. The slice never contains a
// partially initialized element. The no-reallocation rules of Slice
// apply unchanged.
func (v *HeaderVec[H, T]) SliceStrict() []T {
	return unsafe.Slice((*T)(v.start()), v.LenStrict())
}
