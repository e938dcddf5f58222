package powerset

import (
	"fmt"
	"strings"

	"github.com/willf/bitset"
)

// WideEnumerator counts masks in a bit set instead of a uint64, lifting
// the MaxLen limit on container length. Construction cannot overflow;
// draining the full powerset of a long container is of course still
// 2^n steps.
type WideEnumerator[T any] struct {
	src  Container[T]
	n    uint
	mask *bitset.BitSet
	done bool
}

// NewWide constructs a wide enumerator over the full powerset of src.
// The produced sequence is identical to that of an enumerator built
// with New, whenever both support the container's length.
func NewWide[T any](src Container[T]) *WideEnumerator[T] {
	n := uint(src.Len())
	return &WideEnumerator[T]{src: src, n: n, mask: bitset.New(n)}
}

// Next produces the subset encoded by the current mask and advances the
// mask by one, rippling the carry through the bit set. It reports false
// once the carry runs off bit n-1, and keeps reporting false on every
// later call.
func (e *WideEnumerator[T]) Next() (WideSubset[T], bool) {
	if e.done {
		return WideSubset[T]{}, false
	}

	// The counter keeps incrementing underneath, so the produced subset
	// snapshots it.
	s := WideSubset[T]{src: e.src, n: e.n, mask: e.mask.Clone()}

	var i uint
	for i < e.n && e.mask.Test(i) {
		e.mask.Clear(i)
		i++
	}
	if i == e.n {
		e.done = true
	} else {
		e.mask.Set(i)
	}

	return s, true
}

// ForEach drains the enumerator, calling do once per remaining subset.
func (e *WideEnumerator[T]) ForEach(do func(WideSubset[T])) {
	for s, ok := e.Next(); ok; s, ok = e.Next() {
		do(s)
	}
}

// WideSubset is the wide counterpart of Subset: a lazy view of the
// elements of a container selected by a bit set snapshot.
type WideSubset[T any] struct {
	src  Container[T]
	n    uint
	mask *bitset.BitSet
}

// Len returns the number of elements in the subset.
func (s WideSubset[T]) Len() int {
	return int(s.mask.Count())
}

// Has checks whether the element at position i of the source container
// belongs to the subset.
func (s WideSubset[T]) Has(i int) bool {
	return 0 <= i && uint(i) < s.n && s.mask.Test(uint(i))
}

// ForEach calls do with the position and value of every member of the
// subset, in increasing position order.
func (s WideSubset[T]) ForEach(do func(i int, x T)) {
	for i, ok := s.mask.NextSet(0); ok && i < s.n; i, ok = s.mask.NextSet(i + 1) {
		do(int(i), s.src.At(int(i)))
	}
}

// Elements collects the members of the subset, in increasing position
// order.
func (s WideSubset[T]) Elements() []T {
	res := make([]T, 0, s.Len())
	s.ForEach(func(_ int, x T) {
		res = append(res, x)
	})
	return res
}

func (s WideSubset[T]) String() string {
	strs := []string{}
	s.ForEach(func(_ int, x T) {
		strs = append(strs, fmt.Sprintf("%v", x))
	})

	if len(strs) == 0 {
		return colorize.Empty("∅")
	}
	return "{ " + strings.Join(strs, ", ") + " }"
}
