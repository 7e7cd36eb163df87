package stockroom

import (
	"iter"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
)

var _ iCursor = &Cursor{}

// Cursor walks a manager's entities in creation order, stopping on each entity
// that matches its query. While positioned, the cursor holds a checkout on every
// required store and the manager rejects structural changes.
type Cursor struct {
	query   *Query
	manager *Manager

	required mask.Mask
	excluded mask.Mask
	grants   []grant

	index     int
	currentID int

	initialized bool
}

func newCursor(query *Query, manager *Manager) *Cursor {
	return &Cursor{
		query:   query,
		manager: manager,
	}
}

// Next advances to the next matching entity. It returns false, and releases the
// cursor's checkouts, once every entity has been examined.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	for c.index < len(c.manager.entities) {
		e := &c.manager.entities[c.index]
		c.index++
		if c.matches(e) {
			c.currentID = e.id
			return true
		}
	}
	c.Reset()
	return false
}

// Entities yields every matching entity. Breaking out of the loop releases the
// cursor.
func (c *Cursor) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		defer c.Reset()
		for c.Next() {
			if !yield(c.Entity()) {
				return
			}
		}
	}
}

// Each calls visit once per matching entity.
func (c *Cursor) Each(visit func(Entity)) {
	for e := range c.Entities() {
		visit(e)
	}
}

// Matched collects every matching entity.
func (c *Cursor) Matched() []Entity {
	return iter_util.Collect(c.Entities())
}

// Entity returns the entity the cursor is positioned on.
func (c *Cursor) Entity() Entity {
	return Entity{manager: c.manager, id: c.currentID}
}

// TotalMatched counts matching entities without taking any checkouts.
func (c *Cursor) TotalMatched() int {
	required, excluded := c.masks(c.query.grants(c.manager))
	total := 0
	for i := range c.manager.entities {
		if matchesMasks(&c.manager.entities[i], required, excluded) {
			total++
		}
	}
	return total
}

// Reset returns the cursor's checkouts and rewinds it to the first entity.
func (c *Cursor) Reset() {
	if !c.initialized {
		return
	}
	for _, g := range c.grants {
		c.manager.storeFor(g.row).release(g.mode)
	}
	c.grants = nil
	c.index = 0
	c.currentID = 0
	c.initialized = false
	c.manager.unlock()
}

func (c *Cursor) initialize() {
	grants := c.query.grants(c.manager)
	required, excluded := c.masks(grants)
	acquired := 0
	defer func() {
		if acquired == len(grants) {
			return
		}
		for _, g := range grants[:acquired] {
			c.manager.storeFor(g.row).release(g.mode)
		}
	}()
	for _, g := range grants {
		c.manager.storeFor(g.row).checkout(g.comp, g.mode)
		acquired++
	}
	c.grants = grants
	c.required, c.excluded = required, excluded
	c.index = 0
	c.initialized = true
	c.manager.lock()
}

func (c *Cursor) masks(grants []grant) (required, excluded mask.Mask) {
	for _, g := range grants {
		required.Mark(g.row)
	}
	for _, comp := range c.query.excluded {
		excluded.Mark(c.manager.rowFor(comp))
	}
	return required, excluded
}

func (c *Cursor) matches(e *entity) bool {
	return matchesMasks(e, c.required, c.excluded)
}

func matchesMasks(e *entity, required, excluded mask.Mask) bool {
	return e.mask.ContainsAll(required) && (excluded.IsEmpty() || e.mask.ContainsNone(excluded))
}

func (c *Cursor) current() *entity {
	return &c.manager.entities[c.currentID]
}

// requireAccess returns the row for comp if the positioned cursor was granted
// at least the requested mode on it.
func (c *Cursor) requireAccess(comp Component, mode AccessMode) uint32 {
	row := c.manager.rowFor(comp)
	if c.initialized {
		for _, g := range c.grants {
			if g.row == row && g.mode >= mode {
				return row
			}
		}
	}
	panic(AccessModeError{Component: comp, Requested: mode})
}
