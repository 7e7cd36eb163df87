// Package scenario loads spawn lists for the physics simulation from YAML.
package scenario

import (
	"fmt"
	"os"

	"github.com/TheBitDrifter/stockroom"
	"github.com/TheBitDrifter/stockroom/internal/physics"
	"gopkg.in/yaml.v3"
)

// Spawn describes Count identical entities. Nil components are left off.
type Spawn struct {
	Count int            `yaml:"count"`
	State *physics.State `yaml:"state"`
	Mass  *physics.Mass  `yaml:"mass"`
	Force *physics.Force `yaml:"force"`
}

// File is a parsed scenario: the spawns applied in order.
type File struct {
	Entities []Spawn `yaml:"entities"`
}

// Load reads a scenario from a YAML file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a YAML scenario and rejects negative counts and zero masses.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	for i, s := range f.Entities {
		if s.Count < 0 {
			return nil, fmt.Errorf("entities[%d]: negative count %d", i, s.Count)
		}
		if s.Mass != nil && s.Mass.M == 0 {
			return nil, fmt.Errorf("entities[%d]: mass must be non-zero", i)
		}
	}
	return &f, nil
}

// Default is one massive body, one massless body and one downward force.
func Default() *File {
	return &File{Entities: []Spawn{
		{
			State: &physics.State{X: 0, Y: 10, VX: 1, VY: 0},
			Mass:  &physics.Mass{M: 10},
		},
		{
			State: &physics.State{X: 100, Y: 100, VX: 100, VY: 100},
		},
		{
			Force: &physics.Force{FX: 0, FY: -1},
		},
	}}
}

// Spawn creates the scenario's entities in file order and returns their ids.
func (f *File) Spawn(m *stockroom.Manager, c physics.Components) []int {
	var ids []int
	for _, s := range f.Entities {
		for n := max(s.Count, 1); n > 0; n-- {
			ids = append(ids, m.AddEntity().Add(s.values(c)...).ID())
		}
	}
	return ids
}

func (s Spawn) values(c physics.Components) []stockroom.Value {
	var values []stockroom.Value
	if s.State != nil {
		values = append(values, c.State.With(*s.State))
	}
	if s.Mass != nil {
		values = append(values, c.Mass.With(*s.Mass))
	}
	if s.Force != nil {
		values = append(values, c.Force.With(*s.Force))
	}
	return values
}
