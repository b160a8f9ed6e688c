package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b are the same vector, or hold the same
// number of elements with equal values in order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return a == b || slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return a == b || slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare compares a and b lexicographically and returns -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is like Compare but compares elements with compare.
func CompareFunc[T any](a, b *Vector[T], compare func(T, T) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), compare)
}

// Less reports whether a sorts before b lexicographically.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports !(b < a).
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater reports b < a.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual reports !(a < b).
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
