package vector

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pavanmanishd/vector/internal/assert"
)

// Get returns the element at i without a bounds check against Size.
// The caller guarantees 0 <= i < Size; debug builds assert it.
func (v *Vector[T]) Get(i int) T {
	v.checkIndex(i)
	return v.buf.data[i]
}

// Set stores value at i. Same precondition as Get.
func (v *Vector[T]) Set(i int, value T) {
	v.checkIndex(i)
	v.buf.data[i] = value
}

// Ref returns a pointer to the element at i. Same precondition as Get.
// The pointer is invalidated by any reallocation.
func (v *Vector[T]) Ref(i int) *T {
	v.checkIndex(i)
	return &v.buf.data[i]
}

// At returns the element at i, or a *RangeError matching ErrOutOfRange
// when i is not in [0, Size).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, &RangeError{Op: "At", Index: i, Size: v.size}
	}
	return v.buf.data[i], nil
}

// AtRef is the pointer form of At.
func (v *Vector[T]) AtRef(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, &RangeError{Op: "AtRef", Index: i, Size: v.size}
	}
	return &v.buf.data[i], nil
}

// Front returns the first element. The vector must not be empty.
func (v *Vector[T]) Front() T {
	assert.Assert(v.size > 0, "Front on empty vector")
	return v.buf.data[0]
}

// Back returns the last element. The vector must not be empty.
func (v *Vector[T]) Back() T {
	assert.Assert(v.size > 0, "Back on empty vector")
	return v.buf.data[v.size-1]
}

func (v *Vector[T]) checkIndex(i int) {
	assert.Assert(i >= 0 && i < v.size, "index %d out of range [0:%d)", i, v.size)
}

// Slice returns the logical elements as a slice sharing v's storage.
// It is valid until the next reallocation; its capacity is capped at Size
// so appending to it never writes into v.
func (v *Vector[T]) Slice() []T {
	return v.buf.data[:v.size:v.size]
}

// All returns an iterator over index/value pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.data[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf.data[i]) {
				return
			}
		}
	}
}

// String formats the logical elements like a slice: [1 2 3].
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v.buf.data[i])
	}
	sb.WriteByte(']')
	return sb.String()
}
