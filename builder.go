package stockroom

// Builder attaches components to one freshly created entity.
type Builder struct {
	manager *Manager
	id      int
}

// Add appends each value to its component's store and points the entity's slot
// for that component at the new entry. Adding the same component twice keeps
// only the latest value reachable from the entity; the earlier entry stays in
// the store.
func (b *Builder) Add(values ...Value) *Builder {
	for _, v := range values {
		v.attach(b.manager, b.id)
	}
	return b
}

// ID returns the id of the entity being built.
func (b *Builder) ID() int {
	return b.id
}

// Entity returns a view of the entity being built.
func (b *Builder) Entity() Entity {
	return Entity{manager: b.manager, id: b.id}
}
