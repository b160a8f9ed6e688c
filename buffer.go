package vector

import "github.com/pavanmanishd/vector/internal/assert"

// noCopy may be embedded into structs which must not be copied
// after first use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer owns exactly one contiguous block of slots of type T.
// It knows its capacity but has no notion of logical size.
//
// A Buffer must not be copied by value: two copies would both claim the same
// storage. Ownership moves only through Swap.
type Buffer[T any] struct {
	_    noCopy
	data []T // len(data) == capacity; nil when capacity is 0
}

// NewBuffer allocates a buffer with room for capacity elements.
// A zero capacity allocates nothing. Panics if capacity is negative.
func NewBuffer[T any](capacity int) *Buffer[T] {
	b := &Buffer[T]{}
	b.alloc(capacity)
	return b
}

func (b *Buffer[T]) alloc(capacity int) {
	if capacity < 0 {
		panic("vector: negative buffer capacity")
	}
	if capacity == 0 {
		b.data = nil
		return
	}
	b.data = make([]T, capacity)
}

// Get returns the whole storage, or nil when the capacity is 0.
func (b *Buffer[T]) Get() []T {
	return b.data
}

// Ref returns a pointer to slot i. The caller guarantees i < Cap();
// only debug builds check it.
func (b *Buffer[T]) Ref(i int) *T {
	assert.Assert(i >= 0 && i < len(b.data), "buffer index %d out of range [0:%d)", i, len(b.data))
	return &b.data[i]
}

// Cap returns the number of slots the buffer was allocated with.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Swap exchanges storage with other. No allocation, no copy.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
}

// Release drops the storage. Releasing an empty buffer is a no-op.
func (b *Buffer[T]) Release() {
	b.data = nil
}
