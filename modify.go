package vector

import "github.com/pavanmanishd/vector/internal/assert"

// PushBack appends value, doubling the capacity first when the vector is full
// (an empty, zero-capacity vector grows to 1).
func (v *Vector[T]) PushBack(value T) {
	if v.size == v.Capacity() {
		v.growTo(v.nextCapacity())
	}
	v.buf.data[v.size] = value
	v.size++
}

// Append pushes values in order, applying the same growth policy as PushBack.
func (v *Vector[T]) Append(values ...T) {
	need := v.size + len(values)
	if need > v.Capacity() {
		c := v.nextCapacity()
		for c < need {
			c *= 2
		}
		v.growTo(c)
	}
	copy(v.buf.data[v.size:need], values)
	v.size = need
}

// Insert places value at index pos, shifting [pos, Size) one slot right,
// and returns the index of the inserted element. pos == Size appends.
//
// Insert invalidates pointers to elements at or after pos, and every
// slice and pointer into v when it reallocates. Panics with a *RangeError
// if pos is outside [0, Size].
func (v *Vector[T]) Insert(pos int, value T) int {
	if pos < 0 || pos > v.size {
		panic(&RangeError{Op: "Insert", Index: pos, Size: v.size})
	}
	if v.size == v.Capacity() {
		v.growTo(v.nextCapacity())
	}
	copy(v.buf.data[pos+1:v.size+1], v.buf.data[pos:v.size])
	v.buf.data[pos] = value
	v.size++
	return pos
}

// Erase removes the element at pos by shifting (pos, Size) one slot left.
// It returns the index of the element that now occupies pos, which equals
// Size when the last element was removed. Capacity is unchanged.
// Panics with a *RangeError if pos is outside [0, Size).
func (v *Vector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.size {
		panic(&RangeError{Op: "Erase", Index: pos, Size: v.size})
	}
	copy(v.buf.data[pos:v.size-1], v.buf.data[pos+1:v.size])
	v.size--
	return pos
}

// PopBack drops the last element. The vector must not be empty.
// The slot keeps its value; only the size changes.
func (v *Vector[T]) PopBack() {
	assert.Assert(v.size > 0, "PopBack on empty vector")
	v.size--
}

// Clear sets the size to 0. Capacity and stored values are kept for reuse,
// so anything the old elements point to stays reachable until overwritten.
func (v *Vector[T]) Clear() {
	v.size = 0
}
