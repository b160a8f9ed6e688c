// Package vector implements a generic growable array for Go.
//
// # Overview
//
// A Vector owns a single contiguous Buffer and tracks a logical size separate
// from the allocated capacity. Appending is amortized O(1): when the buffer
// is full its capacity doubles (a zero-capacity vector grows to 1). Inserting
// and erasing at arbitrary positions shift the tail and cost O(n).
//
// # Basic Usage
//
//	v := vector.New[int]()
//	v.PushBack(1)
//	v.PushBack(2)
//	v.PushBack(3)           // [1 2 3], capacity 4
//
//	v.Insert(1, 9)          // [1 9 2 3]
//	v.Erase(2)              // [1 9 3]
//	v.PopBack()             // [1 9]
//
//	if _, err := v.At(5); errors.Is(err, vector.ErrOutOfRange) {
//		// handle bad index
//	}
//
// # Construction
//
//	vector.WithSize[int](5)                 // five zeros, capacity 5
//	vector.Filled(3, "x")                   // [x x x]
//	vector.Of(1, 2, 3)                      // [1 2 3]
//	vector.WithReserve[int](vector.Reserve(10)) // empty, capacity 10
//
// Clone makes a deep copy. Move hands the storage to a new vector and leaves
// the source empty. Assign and AssignMove build the replacement first and then
// swap it in, so a failure never leaves the receiver half-updated.
//
// # Capacity
//
// Reserve grows the capacity to an exact value and never shrinks it. Resize
// changes the logical size: shrinking only forgets elements, growing sets the
// new elements to the zero value. Clear and PopBack keep the capacity and the
// stored values.
//
// # Preconditions
//
// Get, Set, Ref, Front, Back and PopBack do not validate their input in
// release builds. Built without the release tag they panic on a violated
// precondition. At and AtRef are the checked accessors and return a
// *RangeError matching ErrOutOfRange.
//
// # Thread Safety
//
// Vector is not safe for concurrent use.
//
// # Invalidation
//
// Any operation that reallocates (Reserve, Resize past capacity, ShrinkToFit,
// or PushBack/Append/Insert on a full vector) invalidates every slice and
// pointer obtained from the vector. Insert and Erase invalidate pointers at or
// after the affected position.
package vector
