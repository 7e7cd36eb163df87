package physics

import (
	"github.com/TheBitDrifter/stockroom"
)

// Integrate advances the position of every entity with State by its velocity.
// It returns how many entities moved.
func Integrate(m *stockroom.Manager, c Components, dt float64) int {
	query := stockroom.Factory.NewQuery().And(c.State.Write())
	cursor := stockroom.Factory.NewCursor(query, m)
	moved := 0
	for cursor.Next() {
		s := c.State.GetFromCursor(cursor)
		s.X += s.VX * dt
		s.Y += s.VY * dt
		moved++
	}
	return moved
}

// ApplyForces accelerates every entity with State and Mass by every value in
// the Force store, whichever entity owns it. Cost is bodies x forces per call.
func ApplyForces(m *stockroom.Manager, c Components, dt float64) int {
	query := stockroom.Factory.NewQuery().And(c.State.Write(), c.Mass)
	cursor := stockroom.Factory.NewCursor(query, m)
	accelerated := 0
	for cursor.Next() {
		s := c.State.GetFromCursor(cursor)
		mass := c.Mass.ReadFromCursor(cursor)
		for _, f := range c.Force.Scan(m) {
			s.VX += dt * f.FX / mass.M
			s.VY += dt * f.FY / mass.M
		}
		accelerated++
	}
	return accelerated
}

// Step runs Integrate then ApplyForces.
func Step(m *stockroom.Manager, c Components, dt float64) (moved, accelerated int) {
	moved = Integrate(m, c, dt)
	accelerated = ApplyForces(m, c, dt)
	return moved, accelerated
}

// Body is a snapshot of one entity with State.
type Body struct {
	ID      int
	State   State
	Mass    float64
	HasMass bool
}

// Bodies snapshots every entity with State in creation order.
func Bodies(m *stockroom.Manager, c Components) []Body {
	cursor := stockroom.Factory.NewCursor(stockroom.Factory.NewQuery().And(c.State), m)
	var bodies []Body
	cursor.Each(func(e stockroom.Entity) {
		b := Body{ID: e.ID(), State: c.State.ReadFromCursor(cursor)}
		if mass, ok := c.Mass.GetFromEntity(e); ok {
			b.Mass, b.HasMass = mass.M, true
		}
		bodies = append(bodies, b)
	})
	return bodies
}
