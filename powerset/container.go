package powerset

import (
	"github.com/benbjohnson/immutable"
)

// Container is the capability contract required of an enumeration
// source: a length that is fixed for the container's lifetime, and
// random access to the element at each position.
//
// Elements are read lazily, as subsets are consumed, so the container
// must not be mutated while an enumerator borrows it. Enumerators never
// mutate the container themselves.
type Container[T any] interface {
	Len() int
	At(i int) T
}

// Slice adapts a Go slice to the Container contract.
type Slice[T any] []T

func (s Slice[T]) Len() int   { return len(s) }
func (s Slice[T]) At(i int) T { return s[i] }

// FromList adapts an immutable list to the Container contract without
// copying its elements.
func FromList[T any](list *immutable.List[T]) Container[T] {
	return immutableList[T]{list}
}

type immutableList[T any] struct {
	list *immutable.List[T]
}

func (l immutableList[T]) Len() int   { return l.list.Len() }
func (l immutableList[T]) At(i int) T { return l.list.Get(i) }
