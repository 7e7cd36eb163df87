package stockroom

import (
	"iter"

	"github.com/TheBitDrifter/table"
)

var _ Component = AccessibleComponent[struct{}]{}

// AccessibleComponent is the typed handle for component type T. It binds T to its
// store and to its slot on every entity, so generic code can reach both without
// runtime type tags.
type AccessibleComponent[T any] struct {
	table.ElementType
}

func (c AccessibleComponent[T]) newStore(capacity int) componentStore {
	return newStore[T](capacity)
}

// With packages v for Builder.Add.
func (c AccessibleComponent[T]) With(v T) Value {
	return componentValue[T]{comp: c, value: v}
}

// Read is the read-only query term for this component.
func (c AccessibleComponent[T]) Read() Term {
	return Read(c)
}

// Write is the exclusive-mutable query term for this component.
func (c AccessibleComponent[T]) Write() Term {
	return Write(c)
}

// GetFromCursor returns a mutable pointer to the component of the entity at the
// cursor position. The cursor must have been opened with write access to T.
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor) *T {
	row := cursor.requireAccess(c, ReadWrite)
	s := cursor.manager.storeFor(row).(*store[T])
	slot, _ := cursor.current().slot(row)
	return s.getMut(slot)
}

// ReadFromCursor returns a copy of the component of the entity at the cursor
// position. The cursor must hold T in either mode.
func (c AccessibleComponent[T]) ReadFromCursor(cursor *Cursor) T {
	row := cursor.requireAccess(c, ReadOnly)
	s := cursor.manager.storeFor(row).(*store[T])
	slot, _ := cursor.current().slot(row)
	return s.get(slot)
}

// GetFromEntity returns a copy of the entity's component, or false when the
// entity does not hold T. It panics if another cursor is writing T.
func (c AccessibleComponent[T]) GetFromEntity(e Entity) (T, bool) {
	s := typedStore[T](e.manager, c)
	slot, ok := e.Slot(c)
	if !ok {
		var zero T
		return zero, false
	}
	s.checkout(c, ReadOnly)
	defer s.release(ReadOnly)
	return s.get(slot), true
}

// Modify calls fn with a mutable pointer to the entity's component, holding an
// exclusive checkout on T's store and locking the manager until fn returns. It
// returns false without calling fn when the entity does not hold T.
func (c AccessibleComponent[T]) Modify(e Entity, fn func(*T)) bool {
	s := typedStore[T](e.manager, c)
	slot, ok := e.Slot(c)
	if !ok {
		return false
	}
	s.checkout(c, ReadWrite)
	e.manager.lock()
	defer func() {
		s.release(ReadWrite)
		e.manager.unlock()
	}()
	fn(s.getMut(slot))
	return true
}

// SlotOf reports the store position the entity's T component lives at.
func (c AccessibleComponent[T]) SlotOf(e Entity) (int, bool) {
	return e.Slot(c)
}

// Scan yields (owner, value) for every entry ever appended to T's store, in
// insertion order. Entries orphaned by a second Add on the same entity are
// included. The store is checked out read-only while the sequence runs.
func (c AccessibleComponent[T]) Scan(m *Manager) iter.Seq2[int, T] {
	s := typedStore[T](m, c)
	return func(yield func(int, T) bool) {
		s.checkout(c, ReadOnly)
		m.lock()
		defer func() {
			s.release(ReadOnly)
			m.unlock()
		}()
		for i := range s.entries {
			if !yield(s.entries[i].owner, s.entries[i].value) {
				return
			}
		}
	}
}

type componentValue[T any] struct {
	comp  AccessibleComponent[T]
	value T
}

func (v componentValue[T]) component() Component {
	return v.comp
}

func (v componentValue[T]) attach(m *Manager, id int) {
	if m.Locked() {
		panic(LockedStorageError{})
	}
	row := m.rowFor(v.comp)
	s := m.storeFor(row).(*store[T])
	m.entities[id].setSlot(row, s.add(v.value, id))
}

func typedStore[T any](m *Manager, c AccessibleComponent[T]) *store[T] {
	return m.storeFor(m.rowFor(c)).(*store[T])
}
