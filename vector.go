package vector

// Vector is a growable array over a single owned Buffer.
// The zero value is an empty vector ready to use. Not goroutine-safe.
//
// A Vector must not be copied by value; use Clone or Move.
type Vector[T any] struct {
	buf      Buffer[T]
	size     int
	reallocs int
}

// ReserveProxy asks a constructor for capacity without creating elements.
// Obtain one with Reserve.
type ReserveProxy struct {
	capacity int
}

// Reserve returns a capacity hint for WithReserve.
func Reserve(capacity int) ReserveProxy {
	return ReserveProxy{capacity: capacity}
}

// Capacity returns the requested capacity.
func (p ReserveProxy) Capacity() int {
	return p.capacity
}

// New returns an empty vector with zero capacity.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithSize returns a vector of n zero-valued elements with capacity n.
func WithSize[T any](n int) *Vector[T] {
	v := &Vector[T]{}
	v.buf.alloc(n)
	v.size = n
	return v
}

// Filled returns a vector of n copies of value with capacity n.
func Filled[T any](n int, value T) *Vector[T] {
	v := WithSize[T](n)
	for i := range v.buf.data {
		v.buf.data[i] = value
	}
	return v
}

// Of returns a vector holding values in order; size and capacity equal len(values).
func Of[T any](values ...T) *Vector[T] {
	return FromSlice(values)
}

// FromSlice returns a vector holding a copy of s.
func FromSlice[T any](s []T) *Vector[T] {
	v := WithSize[T](len(s))
	copy(v.buf.data, s)
	return v
}

// WithReserve returns an empty vector whose capacity is p.Capacity().
func WithReserve[T any](p ReserveProxy) *Vector[T] {
	v := &Vector[T]{}
	v.buf.alloc(p.capacity)
	return v
}

// Clone returns a deep copy of v with the same size and capacity.
// Slots past Size are not copied.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{}
	c.buf.alloc(v.Capacity())
	copy(c.buf.data, v.Slice())
	c.size = v.size
	return c
}

// Move transfers v's storage, size and capacity to a new vector.
// v is left empty with zero capacity.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{}
	m.Swap(v)
	return m
}

// Assign replaces v's contents with a copy of src.
// The copy is built before v is touched, so a panic while copying leaves v unchanged.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Clone()
	v.Swap(tmp)
	tmp.buf.Release()
}

// AssignMove replaces v's contents with src's storage, leaving src empty.
func (v *Vector[T]) AssignMove(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Move()
	v.Swap(tmp)
	tmp.buf.Release()
}

// Swap exchanges the contents of v and other in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
}
