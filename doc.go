// Package headervec implements a growable vector that colocates a
// caller-chosen header value with its elements in one contiguous
// allocation, reachable through a single pointer-sized handle.
//
// # Overview
//
// A normal "header struct plus element buffer" design costs two
// allocations and an extra indirection to reach the elements. A
// HeaderVec[H, T] stores the header record and the element run behind
// one pointer instead. This is particularly useful for:
//
//   - Graph and tree nodes whose payload and outgoing edge list should
//     share one cache-friendly allocation
//   - Pointer-heavy structures where handle size matters (the handle
//     is one machine word)
//   - Append-mostly element runs with a fixed per-container header
//
// # Basic Usage
//
//	type Node struct{ ID uint64 }
//
//	hv := headervec.New[Node, uint32](Node{ID: 7})
//	defer hv.Release() // Clean up when done
//
//	hv.Push(10)
//	hv.Push(20)
//
//	hv.Head().ID = 8      // header access
//	edges := hv.Slice()   // element access, [10 20]
//
// # Growth and Weak Handles
//
// Growing operations (Push, Reserve, ReserveExact) and shrinking ones
// (ShrinkTo, ShrinkToFit) may move the allocation. They report the
// previous address when they do:
//
//	prev, moved := hv.Push(30)
//	if moved {
//		// every Weak captured before this call is stale
//		w.Update(&hv)
//		_ = prev
//	}
//
// A Weak is a non-owning byte copy of the handle, intended for
// traversing owner-managed structures without re-deriving the owning
// handle. Validity is a caller contract: the owner must resynchronize
// every outstanding Weak after any operation that reported a move.
// There is no reference counting and no automatic invalidation.
//
// # Concurrency
//
// The vector has no internal locking. All mutating operations require
// exclusive access, with one exception: PushAtomic supports a single
// writer appending concurrently with any number of readers using
// LenStrict or SliceStrict. PushAtomic never grows; when capacity is
// exhausted it returns ErrFull and the caller grows through the
// exclusive path.
//
// # Important Notes
//
//   - H and T must not contain Go pointers (the allocation is untyped
//     memory the garbage collector does not scan); T must not be
//     zero-sized. Construction panics otherwise.
//   - Capacity is always at least 1; constructing with capacity 0
//     panics.
//   - A HeaderVec must be passed by pointer or via Weak, never copied:
//     two copies would both believe they own the allocation.
//   - Release makes the handle unusable; subsequent operations panic.
package headervec
