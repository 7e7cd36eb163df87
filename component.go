package stockroom

var _ Term = term{}

type term struct {
	comp   Component
	access AccessMode
}

func (t term) component() Component { return t.comp }
func (t term) mode() AccessMode     { return t.access }

// Read requests read-only access to c. A bare Component passed to Query.And
// means the same thing.
func Read(c Component) Term {
	return term{comp: c, access: ReadOnly}
}

// Write requests exclusive-mutable access to c for the lifetime of a cursor.
func Write(c Component) Term {
	return term{comp: c, access: ReadWrite}
}
