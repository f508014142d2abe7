package headervec

// SizeInUse returns the number of bytes currently holding live data:
// the header slots plus the live elements. This includes internal
// fragmentation due to padding between the header record and element 0.
func (v *HeaderVec[H, T]) SizeInUse() int {
	if v.ptr == nil {
		return 0
	}
	return int(capacityToBytes[H, T](v.header().len))
}

// TotalBytes returns the size of the whole allocation in bytes.
func (v *HeaderVec[H, T]) TotalBytes() int {
	if v.ptr == nil {
		return 0
	}
	return int(capacityToBytes[H, T](v.header().cap))
}

// Spare returns the number of elements that can be appended before the
// next reallocation.
func (v *HeaderVec[H, T]) Spare() int {
	if v.ptr == nil {
		return 0
	}
	h := v.header()
	return int(h.cap - h.len)
}

// Utilization returns the ratio of bytes in use to allocation size
// (0.0 to 1.0). Returns 0.0 for a released handle.
func (v *HeaderVec[H, T]) Utilization() float64 {
	total := v.TotalBytes()
	if total == 0 {
		return 0
	}
	return float64(v.SizeInUse()) / float64(total)
}

// Metrics returns a snapshot of allocation statistics.
func (v *HeaderVec[H, T]) Metrics() Metrics {
	if v.ptr == nil {
		return Metrics{}
	}
	return Metrics{
		Len:         v.LenExact(),
		Capacity:    v.Cap(),
		HeaderBytes: int(elemOffset[H, T]() * elemSize[T]()),
		SizeInUse:   v.SizeInUse(),
		TotalBytes:  v.TotalBytes(),
		Utilization: v.Utilization(),
	}
}

// Metrics contains statistical information about a HeaderVec
// allocation.
type Metrics struct {
	Len         int     // Live element count
	Capacity    int     // Element capacity
	HeaderBytes int     // Bytes consumed by the header slots, padding included
	SizeInUse   int     // Bytes holding live data
	TotalBytes  int     // Size of the whole allocation
	Utilization float64 // Ratio of used to total bytes (0.0-1.0)
}
