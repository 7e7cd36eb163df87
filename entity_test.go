package stockroom

import (
	"testing"

	"github.com/TheBitDrifter/table"
)

// Test component types
type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max int
}

func newTestManager(t *testing.T, components ...Component) *Manager {
	t.Helper()
	schema := table.Factory.NewSchema()
	m, err := Factory.NewManager(schema, components...)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	return m
}

func expectPanic[E any](t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %T, got none", *new(E))
		}
		if _, ok := r.(E); !ok {
			t.Fatalf("panic = %v (%T), want %T", r, r, *new(E))
		}
	}()
	fn()
}

func TestEntityCreation(t *testing.T) {
	posComp := FactoryNewComponent[Position]()

	tests := []struct {
		name        string
		entityCount int
	}{
		{"Single entity", 1},
		{"Small batch", 10},
		{"Large batch", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t, posComp)
			for i := 0; i < tt.entityCount; i++ {
				b := m.AddEntity()
				if b.ID() != i {
					t.Fatalf("Entity %d got id %d", i, b.ID())
				}
			}
			if m.Len() != tt.entityCount {
				t.Errorf("Manager has %d entities, want %d", m.Len(), tt.entityCount)
			}
			for i := 0; i < tt.entityCount; i++ {
				e, err := m.Entity(i)
				if err != nil {
					t.Fatalf("Entity(%d) error = %v", i, err)
				}
				if !e.Valid() || e.ID() != i {
					t.Errorf("Entity(%d) = %+v, want valid entity with id %d", i, e.ID(), i)
				}
				if e.Has(posComp) {
					t.Errorf("Entity %d has position without adding it", i)
				}
			}
		})
	}
}

func TestEntityLookupOutOfRange(t *testing.T) {
	m := newTestManager(t, FactoryNewComponent[Position]())
	m.AddEntity()

	for _, id := range []int{-1, 1, 42} {
		_, err := m.Entity(id)
		if _, ok := err.(EntityNotFoundError); !ok {
			t.Errorf("Entity(%d) error = %v, want EntityNotFoundError", id, err)
		}
	}
}

func TestEntitySlots(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()

	m := newTestManager(t, posComp, velComp, healthComp)

	// Entity 0: position, velocity
	m.AddEntity().
		Add(posComp.With(Position{X: 1, Y: 2})).
		Add(velComp.With(Velocity{X: 3, Y: 4}))
	// Entity 1: health only
	m.AddEntity().Add(healthComp.With(Health{Current: 5, Max: 10}))
	// Entity 2: velocity, position (reversed order)
	m.AddEntity().Add(velComp.With(Velocity{X: 7}), posComp.With(Position{X: 8}))

	tests := []struct {
		name     string
		id       int
		comp     Component
		wantSlot int
		wantHas  bool
	}{
		{"first position", 0, posComp, 0, true},
		{"first velocity", 0, velComp, 0, true},
		{"first health absent", 0, healthComp, 0, false},
		{"health", 1, healthComp, 0, true},
		{"position absent", 1, posComp, 0, false},
		{"second velocity", 2, velComp, 1, true},
		{"second position", 2, posComp, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := m.Entity(tt.id)
			if err != nil {
				t.Fatalf("Entity(%d) error = %v", tt.id, err)
			}
			if got := e.Has(tt.comp); got != tt.wantHas {
				t.Errorf("Has() = %v, want %v", got, tt.wantHas)
			}
			slot, ok := e.Slot(tt.comp)
			if ok != tt.wantHas {
				t.Fatalf("Slot() present = %v, want %v", ok, tt.wantHas)
			}
			if ok && slot != tt.wantSlot {
				t.Errorf("Slot() = %d, want %d", slot, tt.wantSlot)
			}
		})
	}

	e, _ := m.Entity(2)
	pos, ok := posComp.GetFromEntity(e)
	if !ok || pos.X != 8 {
		t.Errorf("GetFromEntity() = %+v, %v, want X=8", pos, ok)
	}
	if _, ok := healthComp.GetFromEntity(e); ok {
		t.Error("GetFromEntity() found health on entity without it")
	}
}

func TestEntityResetSlot(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	m := newTestManager(t, posComp)
	m.AddEntity().Add(posComp.With(Position{X: 1}))

	row := m.rowFor(posComp)
	record := &m.entities[0]

	prev, ok := record.resetSlot(row)
	if !ok || prev != 0 {
		t.Fatalf("resetSlot() = %d, %v, want 0, true", prev, ok)
	}
	if _, ok := record.slot(row); ok {
		t.Error("slot still present after reset")
	}
	if _, ok := record.resetSlot(row); ok {
		t.Error("second resetSlot() reported a previous slot")
	}

	record.setSlot(row, 0)
	if slot, ok := record.slot(row); !ok || slot != 0 {
		t.Errorf("slot() after setSlot = %d, %v, want 0, true", slot, ok)
	}
}

// Adding a component twice orphans the first value: it stays in the store but
// the entity only reaches the second one.
func TestEntityDoubleAdd(t *testing.T) {
	healthComp := FactoryNewComponent[Health]()
	m := newTestManager(t, healthComp)

	b := m.AddEntity().
		Add(healthComp.With(Health{Current: 1})).
		Add(healthComp.With(Health{Current: 2}))

	got, ok := healthComp.GetFromEntity(b.Entity())
	if !ok || got.Current != 2 {
		t.Errorf("GetFromEntity() = %+v, %v, want Current=2", got, ok)
	}
	if slot, _ := healthComp.SlotOf(b.Entity()); slot != 1 {
		t.Errorf("SlotOf() = %d, want 1", slot)
	}
	if n := m.StoreLen(healthComp); n != 2 {
		t.Errorf("StoreLen() = %d, want 2", n)
	}

	var scanned []int
	for owner, h := range healthComp.Scan(m) {
		if owner != b.ID() {
			t.Errorf("Scan() owner = %d, want %d", owner, b.ID())
		}
		scanned = append(scanned, h.Current)
	}
	if len(scanned) != 2 || scanned[0] != 1 || scanned[1] != 2 {
		t.Errorf("Scan() values = %v, want [1 2]", scanned)
	}
}
