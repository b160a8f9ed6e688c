package vector

// Size returns the number of logical elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return v.buf.Cap()
}

// IsEmpty reports whether Size is 0.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Utilization returns the ratio of size to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Reallocations returns how many times the storage has been replaced.
// The count travels with the storage on Move and Swap.
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:          v.Size(),
		Capacity:      v.Capacity(),
		Reallocations: v.Reallocations(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size          int     // Logical elements
	Capacity      int     // Allocated slots
	Reallocations int     // Storage replacements so far
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
}
