/*
Package stockroom provides a small entity-component store with typed, join-style queries.

Every component type gets its own dense, append-only store of (owner, value) pairs. An entity is a
sequential id plus one optional slot per registered component pointing into that component's store.
The set of component types is closed: it is declared once, when the Manager is created.

Core Concepts:

  - Entity: a sequential id that is also the entity's index. Ids are never reused.
  - Component: a typed handle created with FactoryNewComponent, bound to one store.
  - Builder: attaches a chain of differently typed components to a new entity.
  - Query: the components an entity must hold, each read-only or exclusive-mutable.
  - Cursor: walks matching entities in creation order.

Basic Usage:

	state := stockroom.FactoryNewComponent[State]()
	mass := stockroom.FactoryNewComponent[Mass]()

	schema := table.Factory.NewSchema()
	manager, _ := stockroom.Factory.NewManager(schema, state, mass)

	manager.AddEntity().
		Add(state.With(State{X: 0, Y: 10, VX: 1})).
		Add(mass.With(Mass{M: 10}))

	query := stockroom.Factory.NewQuery().And(state.Write(), mass)
	cursor := stockroom.Factory.NewCursor(query, manager)

	for cursor.Next() {
		s := state.GetFromCursor(cursor)
		m := mass.ReadFromCursor(cursor)
		s.VY -= 9.8 / m.M
	}

Access is checked at runtime. A cursor checks out each required store when it starts: any number of
read-only checkouts may coexist, but a write checkout excludes every other checkout of that store.
Violations panic with an AliasingError rather than hand out aliased references. While a cursor or scan
is open the manager is locked; use EnqueueEntity and EnqueueAdd to defer structural changes.

Adding the same component twice to one entity repoints the entity's slot at the new value. The earlier
value stays in the store, unreachable from the entity but still visible to Scan.
*/
package stockroom
