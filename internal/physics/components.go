// Package physics is a small point-mass simulation built on stockroom. It
// supplies the component payloads and the per-tick systems.
package physics

import (
	"github.com/TheBitDrifter/stockroom"
	"github.com/TheBitDrifter/table"
)

// State is a body's position and velocity.
type State struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	VX float64 `yaml:"vx"`
	VY float64 `yaml:"vy"`
}

// Mass is a body's inertial mass. Bodies without it are never accelerated.
type Mass struct {
	M float64 `yaml:"m"`
}

// Force is applied to every body that has both State and Mass.
type Force struct {
	FX float64 `yaml:"fx"`
	FY float64 `yaml:"fy"`
}

// Components bundles the handles of the simulation's schema.
type Components struct {
	State stockroom.AccessibleComponent[State]
	Mass  stockroom.AccessibleComponent[Mass]
	Force stockroom.AccessibleComponent[Force]
}

// Handles are the simulation's component handles, shared by every manager
// NewManager creates.
var Handles = Components{
	State: stockroom.FactoryNewComponent[State](),
	Mass:  stockroom.FactoryNewComponent[Mass](),
	Force: stockroom.FactoryNewComponent[Force](),
}

// NewManager returns an empty manager registered with exactly the simulation's
// components.
func NewManager() (*stockroom.Manager, Components, error) {
	c := Handles
	schema := table.Factory.NewSchema()
	m, err := stockroom.Factory.NewManager(schema, c.State, c.Mass, c.Force)
	if err != nil {
		return nil, Components{}, err
	}
	return m, c, nil
}
