package stockroom

import "fmt"

var _ componentStore = &store[struct{}]{}

// store owns every value of one component type. Positions handed out by add are
// permanent: the store only grows.
type store[T any] struct {
	entries []entry[T]
	guard   guard
}

type entry[T any] struct {
	owner int
	value T
}

// guard tracks the checkouts of one store: any number of readers, or a single
// writer.
type guard struct {
	readers int
	writing bool
}

func newStore[T any](capacity int) *store[T] {
	return &store[T]{
		entries: make([]entry[T], 0, capacity),
	}
}

func (s *store[T]) add(value T, owner int) int {
	s.entries = append(s.entries, entry[T]{owner: owner, value: value})
	return len(s.entries) - 1
}

func (s *store[T]) get(slot int) T {
	return s.at(slot).value
}

func (s *store[T]) getMut(slot int) *T {
	return &s.at(slot).value
}

func (s *store[T]) at(slot int) *entry[T] {
	if slot < 0 || slot >= len(s.entries) {
		panic(fmt.Sprintf("slot %d out of range for %T store of length %d", slot, *new(T), len(s.entries)))
	}
	return &s.entries[slot]
}

func (s *store[T]) accepts(c Component) bool {
	_, ok := c.(AccessibleComponent[T])
	return ok
}

func (s *store[T]) len() int {
	return len(s.entries)
}

func (s *store[T]) checkout(c Component, mode AccessMode) {
	switch {
	case s.guard.writing:
		panic(AliasingError{Component: c, Held: ReadWrite, Requested: mode})
	case mode == ReadWrite && s.guard.readers > 0:
		panic(AliasingError{Component: c, Held: ReadOnly, Requested: mode})
	}
	if mode == ReadWrite {
		s.guard.writing = true
		return
	}
	s.guard.readers++
}

func (s *store[T]) release(mode AccessMode) {
	if mode == ReadWrite {
		s.guard.writing = false
		return
	}
	if s.guard.readers > 0 {
		s.guard.readers--
	}
}
