package ast

import "fortio.org/safecast"

// Arena is a generic 1-based-index store, the same shape the rest of the
// pipeline uses for entities, MIR blocks, and locals: append-only, indices
// never reused, index 0 reserved as "nothing allocated here".
type Arena[T any] struct {
	data []*T
}

func NewArena[T any](capHint int) *Arena[T] {
	return &Arena[T]{data: make([]*T, 0, capHint)}
}

// Allocate stores value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, &value)
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(err)
	}
	return n
}

// Get returns a pointer to the stored value, or nil for index 0 or an
// out-of-range index.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 || int(index) > len(a.data) {
		return nil
	}
	return a.data[index-1]
}

func (a *Arena[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(err)
	}
	return n
}
