package headervec

import (
	"fmt"
	"reflect"
	"unsafe"
)

// hdr is the record stored at offset 0 of every allocation. The element
// run begins elemOffset[H, T]() units of T after the allocation start,
// so the header, the bookkeeping fields and the elements are all
// reachable from one pointer.
//
// cap is fixed between reallocations. len is a plain word; the atomic
// append path accesses it through sync/atomic, everything else reads
// and writes it directly under exclusive access.
type hdr[H any] struct {
	head H
	cap  uintptr
	len  uintptr
}

// headerSize returns the size of the header record for header type H,
// including any trailing padding of the struct itself.
func headerSize[H any]() uintptr {
	return unsafe.Sizeof(hdr[H]{})
}

// elemSize returns the size of one element.
func elemSize[T any]() uintptr {
	return unsafe.Sizeof(*new(T))
}

// elemOffset returns the number of T-sized slots the header record
// consumes: the smallest multiple of sizeof(T) that covers the header,
// expressed in units of T. Element 0 lives at this offset.
//
// Go guarantees sizeof(T) is a multiple of alignof(T), and the backing
// allocation is aligned for any Go type, so a whole-slot offset is
// always correctly aligned for T.
func elemOffset[H, T any]() uintptr {
	size := elemSize[T]()
	return (headerSize[H]() + size - 1) / size
}

// capacityToBytes returns the total allocation size in bytes for the
// given element capacity: header slots plus capacity element slots.
func capacityToBytes[H, T any](capacity uintptr) uintptr {
	return (elemOffset[H, T]() + capacity) * elemSize[T]()
}

// startPtr returns the address of element 0 inside the allocation at p.
func startPtr[H, T any](p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Add(p, elemOffset[H, T]()*elemSize[T]())
}

// validateLayout rejects type parameters the layout cannot support.
// It panics, matching the fatal-error class of zero-capacity
// construction: these are programming errors, not runtime conditions.
//
//   - Zero-sized element types are rejected because the offset
//     arithmetic divides by sizeof(T).
//   - Types containing Go pointers are rejected because the backing
//     allocation is untyped memory the garbage collector does not
//     scan; heap pointers stored there would not keep their referents
//     alive.
func validateLayout[H, T any]() {
	if elemSize[T]() == 0 {
		panic("headervec: zero-sized element types are not supported")
	}
	if tp := reflect.TypeOf((*H)(nil)).Elem(); containsPointers(tp) {
		panic(fmt.Sprintf("headervec: header type %v contains Go pointers", tp))
	}
	if tp := reflect.TypeOf((*T)(nil)).Elem(); containsPointers(tp) {
		panic(fmt.Sprintf("headervec: element type %v contains Go pointers", tp))
	}
}

// containsPointers reports whether values of type t may hold pointers
// the garbage collector needs to see.
func containsPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return containsPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if containsPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointer, String, Slice, Map, Chan, Func, Interface,
		// UnsafePointer.
		return true
	}
}

// allocBytes returns a pointer to a fresh zeroed allocation of n bytes.
// The interior pointer keeps the backing array live; no other reference
// to it is retained.
func allocBytes(n uintptr) unsafe.Pointer {
	buf := make([]byte, n)
	return unsafe.Pointer(unsafe.SliceData(buf))
}
