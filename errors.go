package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every error reporting an index outside
// the logical elements of a vector.
var ErrOutOfRange = errors.New("vector: index out of range")

// RangeError reports an index that is not within [0, Size).
type RangeError struct {
	Op    string // operation that rejected the index
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vector: %s: index %d out of range [0:%d)", e.Op, e.Index, e.Size)
}

// Is makes errors.Is(err, ErrOutOfRange) report true for any RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
