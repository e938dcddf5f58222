package powerset

import (
	"errors"
	"fmt"
)

// MaxLen is the largest container length New accepts. Masks are counted
// in a uint64, so the powerset size 2^n must be representable in it.
const MaxLen = 63

// ErrOverflow is reported when a container holds more than MaxLen
// elements. Enumerators for longer containers can be constructed with
// NewWide.
var ErrOverflow = errors.New("OverflowError")

// Enumerator produces every subset of a container exactly once, in
// ascending mask order: the empty subset first (mask 0), the full
// container last (mask 2^n - 1). It is single-pass; to re-enumerate,
// construct a fresh enumerator over the same container.
type Enumerator[T any] struct {
	src  Container[T]
	n    int
	mask uint64
}

// New constructs an enumerator over the full powerset of src. It fails
// with ErrOverflow if src holds more than MaxLen elements; no subsets
// are produced in that case.
func New[T any](src Container[T]) (*Enumerator[T], error) {
	n := src.Len()
	if n > MaxLen {
		return nil, fmt.Errorf("%w: container of length %d exceeds the %d element limit", ErrOverflow, n, MaxLen)
	}
	return &Enumerator[T]{src: src, n: n}, nil
}

// Of constructs an enumerator over the powerset of the given elements.
func Of[T any](xs ...T) (*Enumerator[T], error) {
	return New[T](Slice[T](xs))
}

// Next produces the subset encoded by the current mask and advances the
// mask by one. It reports false once all 2^n subsets have been
// produced, and keeps reporting false on every later call.
func (e *Enumerator[T]) Next() (Subset[T], bool) {
	if e.mask >= 1<<uint(e.n) {
		return Subset[T]{}, false
	}

	s := Subset[T]{src: e.src, n: e.n, mask: e.mask}
	e.mask++
	return s, true
}

// ForEach drains the enumerator, calling do once per remaining subset.
func (e *Enumerator[T]) ForEach(do func(Subset[T])) {
	for s, ok := e.Next(); ok; s, ok = e.Next() {
		do(s)
	}
}
