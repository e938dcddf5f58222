package powerset

import (
	"fmt"
	"math/bits"
	"strings"
)

// Subset is a lazy view of the elements of a container selected by a
// mask: bit i of the mask is set iff the element at position i belongs
// to the subset. Elements are read from the container on demand.
type Subset[T any] struct {
	src  Container[T]
	n    int
	mask uint64
}

// Mask retrieves the membership mask encoding the subset.
func (s Subset[T]) Mask() uint64 {
	return s.mask
}

// Len returns the number of elements in the subset.
func (s Subset[T]) Len() int {
	return bits.OnesCount64(s.mask)
}

// Has checks whether the element at position i of the source container
// belongs to the subset.
func (s Subset[T]) Has(i int) bool {
	return 0 <= i && i < s.n && s.mask>>uint(i)&1 == 1
}

// ForEach calls do with the position and value of every member of the
// subset, in increasing position order.
func (s Subset[T]) ForEach(do func(i int, x T)) {
	for i := 0; i < s.n; i++ {
		if s.mask>>uint(i)&1 == 1 {
			do(i, s.src.At(i))
		}
	}
}

// Elements collects the members of the subset, in increasing position
// order.
func (s Subset[T]) Elements() []T {
	res := make([]T, 0, s.Len())
	s.ForEach(func(_ int, x T) {
		res = append(res, x)
	})
	return res
}

func (s Subset[T]) String() string {
	strs := []string{}
	s.ForEach(func(_ int, x T) {
		strs = append(strs, fmt.Sprintf("%v", x))
	})

	if len(strs) == 0 {
		return colorize.Empty("∅")
	}
	return "{ " + strings.Join(strs, ", ") + " }"
}
