package stockroom

import (
	"iter"

	"github.com/TheBitDrifter/table"
)

// Component identifies one registered component type. Handles are created with
// FactoryNewComponent and passed to Factory.NewManager to declare the schema.
type Component interface {
	table.ElementType
	newStore(capacity int) componentStore
}

// Value is a component value bound to its handle, ready for Builder.Add.
type Value interface {
	component() Component
	attach(m *Manager, id int)
}

// Term is one required component of a query together with its access mode.
type Term interface {
	component() Component
	mode() AccessMode
}

type iCursor interface {
	Entities() iter.Seq[Entity]
	Next() bool
	Reset()
}

type componentStore interface {
	accepts(c Component) bool
	len() int
	checkout(c Component, mode AccessMode)
	release(mode AccessMode)
}

// AccessMode selects read-only or exclusive-mutable access for a query term.
type AccessMode int

const (
	ReadOnly AccessMode = iota
	ReadWrite
)

func (m AccessMode) String() string {
	if m == ReadWrite {
		return "read-write"
	}
	return "read-only"
}
