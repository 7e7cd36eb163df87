package physics

import (
	"github.com/TheBitDrifter/stockroom"
	"go.uber.org/zap"
)

// Simulation steps one manager of point masses and logs each tick.
type Simulation struct {
	Manager    *stockroom.Manager
	Components Components

	log  *zap.Logger
	tick int
}

// NewSimulation creates a simulation over an empty manager. A nil logger
// disables logging.
func NewSimulation(log *zap.Logger) (*Simulation, error) {
	if log == nil {
		log = zap.NewNop()
	}
	m, c, err := NewManager()
	if err != nil {
		return nil, err
	}
	return &Simulation{
		Manager:    m,
		Components: c,
		log:        log,
	}, nil
}

// Tick integrates positions then applies every force over dt.
func (s *Simulation) Tick(dt float64) {
	moved, accelerated := Step(s.Manager, s.Components, dt)
	s.tick++
	s.log.Debug("tick",
		zap.Int("tick", s.tick),
		zap.Float64("dt", dt),
		zap.Int("moved", moved),
		zap.Int("accelerated", accelerated),
		zap.Int("forces", s.Manager.StoreLen(s.Components.Force)),
	)
}

// Run calls Tick the given number of times.
func (s *Simulation) Run(ticks int, dt float64) {
	for i := 0; i < ticks; i++ {
		s.Tick(dt)
	}
}

// Ticks returns how many ticks have run.
func (s *Simulation) Ticks() int {
	return s.tick
}

// Bodies reports every entity holding State, in id order.
func (s *Simulation) Bodies() []Body {
	return Bodies(s.Manager, s.Components)
}
