package stockroom_test

import (
	"fmt"

	"github.com/TheBitDrifter/stockroom"
	"github.com/TheBitDrifter/table"
)

// State is a position and velocity in 2D.
type State struct {
	X, Y, VX, VY float64
}

// Mass is a body's inertial mass.
type Mass struct {
	M float64
}

// Force is a constant force applied to every massive body.
type Force struct {
	FX, FY float64
}

// Example_basic shows entity construction and a two-component join.
func Example_basic() {
	state := stockroom.FactoryNewComponent[State]()
	mass := stockroom.FactoryNewComponent[Mass]()
	force := stockroom.FactoryNewComponent[Force]()

	schema := table.Factory.NewSchema()
	manager, err := stockroom.Factory.NewManager(schema, state, mass, force)
	if err != nil {
		panic(err)
	}

	manager.AddEntity().
		Add(state.With(State{X: 0, Y: 10, VX: 1, VY: 0})).
		Add(mass.With(Mass{M: 10}))
	manager.AddEntity().Add(state.With(State{X: 100, Y: 100, VX: 100, VY: 100}))
	manager.AddEntity().Add(force.With(Force{FX: 0, FY: -1}))

	query := stockroom.Factory.NewQuery().And(state, mass)
	cursor := stockroom.Factory.NewCursor(query, manager)
	for cursor.Next() {
		s := state.ReadFromCursor(cursor)
		m := mass.ReadFromCursor(cursor)
		fmt.Printf("id:%d x=%.0f y=%.0f m=%.0f\n", cursor.Entity().ID(), s.X, s.Y, m.M)
	}

	// Output:
	// id:0 x=0 y=10 m=10
}

// Example_update advances every state, then applies every recorded force to
// every body with mass.
func Example_update() {
	state := stockroom.FactoryNewComponent[State]()
	mass := stockroom.FactoryNewComponent[Mass]()
	force := stockroom.FactoryNewComponent[Force]()

	schema := table.Factory.NewSchema()
	manager, _ := stockroom.Factory.NewManager(schema, state, mass, force)

	manager.AddEntity().
		Add(state.With(State{X: 0, Y: 10, VX: 1, VY: 0})).
		Add(mass.With(Mass{M: 10}))
	manager.AddEntity().Add(state.With(State{X: 100, Y: 100, VX: 100, VY: 100}))
	manager.AddEntity().Add(force.With(Force{FX: 0, FY: -1}))

	const dt = 1.0

	moving := stockroom.Factory.NewCursor(stockroom.Factory.NewQuery().And(state.Write()), manager)
	for moving.Next() {
		s := state.GetFromCursor(moving)
		s.X += s.VX * dt
		s.Y += s.VY * dt
	}

	massive := stockroom.Factory.NewCursor(stockroom.Factory.NewQuery().And(state.Write(), mass), manager)
	for massive.Next() {
		s := state.GetFromCursor(massive)
		m := mass.ReadFromCursor(massive)
		for _, f := range force.Scan(manager) {
			s.VX += dt * f.FX / m.M
			s.VY += dt * f.FY / m.M
		}
	}

	all := stockroom.Factory.NewCursor(stockroom.Factory.NewQuery().And(state), manager)
	all.Each(func(e stockroom.Entity) {
		s := state.ReadFromCursor(all)
		fmt.Printf("id:%d pos=(%.1f, %.1f) vel=(%.1f, %.1f)\n", e.ID(), s.X, s.Y, s.VX, s.VY)
	})

	// Output:
	// id:0 pos=(1.0, 10.0) vel=(1.0, -0.1)
	// id:1 pos=(200.0, 200.0) vel=(100.0, 100.0)
}
