package stockroom

import "github.com/TheBitDrifter/table"

type factory struct{}

// Factory constructs managers, queries and cursors.
var Factory factory

// NewManager declares the closed set of components and returns an empty
// manager. Each component is also registered with schema; rows inside the
// manager follow the order of components.
func (f factory) NewManager(schema table.Schema, components ...Component) (*Manager, error) {
	return newManager(schema, components...)
}

// NewQuery returns an empty query.
func (f factory) NewQuery() *Query {
	return newQuery()
}

// NewCursor binds query to manager. No checkouts are taken until the first
// call to Next.
func (f factory) NewCursor(query *Query, manager *Manager) *Cursor {
	return newCursor(query, manager)
}

// FactoryNewComponent creates a new handle for T. Every call yields a distinct
// component, so handles are normally created once and shared.
func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{
		ElementType: table.FactoryNewElementType[T](),
	}
}
