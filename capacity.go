package vector

// Reserve ensures room for at least n elements. If n exceeds the current
// capacity the vector reallocates to exactly n; otherwise it does nothing.
// Reserve never shrinks. Reallocation invalidates slices and pointers
// obtained from v.
func (v *Vector[T]) Reserve(n int) {
	if n > v.Capacity() {
		v.growTo(n)
	}
}

// Resize changes the logical size to n.
//
// Shrinking only forgets elements; their slots keep their values and the
// capacity is unchanged. Growing within capacity sets the new slots to the
// zero value. Growing beyond capacity reallocates to exactly n.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic("vector: negative size")
	}
	switch {
	case n <= v.size:
	case n <= v.Capacity():
		clear(v.buf.data[v.size:n])
	default:
		v.growTo(n)
	}
	v.size = n
}

// ShrinkToFit reallocates so that capacity equals size.
func (v *Vector[T]) ShrinkToFit() {
	if v.Capacity() > v.size {
		v.growTo(v.size)
	}
}

// nextCapacity is the capacity implicit growth moves to.
func (v *Vector[T]) nextCapacity() int {
	return max(1, v.Capacity()*2)
}

// growTo moves the logical elements into a fresh buffer of exactly n slots
// and drops the old one. Slots past size are zero in the new buffer.
func (v *Vector[T]) growTo(n int) {
	next := NewBuffer[T](n)
	copy(next.data, v.buf.data[:v.size])
	v.buf.Swap(next)
	next.Release()
	v.reallocs++
}
