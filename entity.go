package stockroom

import (
	"github.com/TheBitDrifter/mask"
)

// entity records, per registered row, whether a component is present and at
// which store position. id doubles as the entity's index in Manager.entities.
type entity struct {
	id    int
	mask  mask.Mask
	slots []int
}

func newEntity(id, width int) entity {
	return entity{
		id:    id,
		slots: make([]int, width),
	}
}

func (e *entity) slot(row uint32) (int, bool) {
	if !e.has(row) {
		return 0, false
	}
	return e.slots[row], true
}

// setSlot overwrites unconditionally. A previous slot for the same row is
// forgotten, leaving its store entry orphaned.
func (e *entity) setSlot(row uint32, i int) {
	e.mask.Mark(row)
	e.slots[row] = i
}

func (e *entity) resetSlot(row uint32) (int, bool) {
	prev, ok := e.slot(row)
	e.mask.Unmark(row)
	e.slots[row] = 0
	return prev, ok
}

func (e *entity) has(row uint32) bool {
	var bit mask.Mask
	bit.Mark(row)
	return e.mask.ContainsAll(bit)
}

// Entity is a read-only view of one entity owned by a Manager.
type Entity struct {
	manager *Manager
	id      int
}

// ID returns the entity's creation index.
func (e Entity) ID() int {
	return e.id
}

// Has reports whether the entity currently holds component c.
func (e Entity) Has(c Component) bool {
	return e.record().has(e.manager.rowFor(c))
}

// Slot returns the position of the entity's c component in c's store.
func (e Entity) Slot(c Component) (int, bool) {
	return e.record().slot(e.manager.rowFor(c))
}

// Valid reports whether the view refers to an entity.
func (e Entity) Valid() bool {
	return e.manager != nil && e.id >= 0 && e.id < len(e.manager.entities)
}

func (e Entity) record() *entity {
	return &e.manager.entities[e.id]
}
