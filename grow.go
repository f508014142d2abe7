package headervec

import "unsafe"

// Push appends item to the end of the vector, doubling capacity when
// the allocation is full.
//
// If the append grew the buffer, the allocation moved: the previous
// address is returned with moved=true and every Weak captured before
// the call is stale until resynchronized with Update. moved=false
// means the address is unchanged and all weak handles remain valid.
func (v *HeaderVec[H, T]) Push(item T) (prev unsafe.Pointer, moved bool) {
	h := v.header()
	if h.len+1 > h.cap {
		prev, moved = v.realloc(h.cap * 2)
		h = v.header()
	}
	*(*T)(unsafe.Add(v.start(), h.len*elemSize[T]())) = item
	h.len++
	return prev, moved
}

// Reserve ensures capacity for at least additional more elements.
//
// Sizing policy: if the required capacity is at most twice the current
// one, capacity doubles, amortizing future appends; otherwise capacity
// becomes the smallest multiple of the current capacity that fits the
// request, giving bulk insertions headroom without doubling memory
// unnecessarily. Returns the previous address exactly as Push does.
func (v *HeaderVec[H, T]) Reserve(additional int) (prev unsafe.Pointer, moved bool) {
	h := v.header()
	if additional <= 0 {
		return nil, false
	}
	need := h.len + uintptr(additional)
	if need <= h.cap {
		return nil, false
	}
	newCap := h.cap * 2
	if need > newCap {
		newCap = (need + h.cap - 1) / h.cap * h.cap
	}
	return v.realloc(newCap)
}

// ReserveExact grows to exactly len+additional elements of capacity,
// with no amortization headroom. No-op if the spare capacity already
// suffices. Returns the previous address exactly as Push does.
func (v *HeaderVec[H, T]) ReserveExact(additional int) (prev unsafe.Pointer, moved bool) {
	h := v.header()
	if additional <= 0 {
		return nil, false
	}
	need := h.len + uintptr(additional)
	if need <= h.cap {
		return nil, false
	}
	return v.realloc(need)
}

// ShrinkTo reduces capacity to max(len, minCapacity), exact sizing.
// Capacity never drops below the current length, and never below 1.
// Returns the previous address exactly as Push does.
func (v *HeaderVec[H, T]) ShrinkTo(minCapacity int) (prev unsafe.Pointer, moved bool) {
	h := v.header()
	if minCapacity < 0 {
		minCapacity = 0
	}
	newCap := max(h.len, uintptr(minCapacity), 1)
	if newCap >= h.cap {
		return nil, false
	}
	return v.realloc(newCap)
}

// ShrinkToFit reduces capacity to the current length (at least 1).
func (v *HeaderVec[H, T]) ShrinkToFit() (prev unsafe.Pointer, moved bool) {
	return v.ShrinkTo(0)
}

// Retain keeps only the elements for which keep returns true.
//
// Single left-to-right pass: every element is visited exactly once,
// survivors are compacted toward the front preserving their relative
// order, and each failing element is destroyed in place. O(n).
func (v *HeaderVec[H, T]) Retain(keep func(T) bool) {
	h := v.header()
	s := unsafe.Slice((*T)(v.start()), h.len)
	head := 0
	for i := range s {
		if keep(s[i]) {
			if head != i {
				s[head] = s[i]
			}
			head++
		}
	}
	clear(s[head:])
	h.len = uintptr(head)
}

// realloc moves header and live elements into a fresh allocation of
// newCap elements and returns the old address. The caller is
// responsible for newCap >= len.
func (v *HeaderVec[H, T]) realloc(newCap uintptr) (prev unsafe.Pointer, moved bool) {
	h := v.header()
	oldBytes := capacityToBytes[H, T](h.cap)
	newBytes := capacityToBytes[H, T](newCap)
	next := allocBytes(newBytes)
	copy(
		unsafe.Slice((*byte)(next), newBytes),
		unsafe.Slice((*byte)(v.ptr), min(oldBytes, newBytes)),
	)
	prev = v.ptr
	v.ptr = next
	v.header().cap = newCap
	return prev, true
}
