package stockroom

import (
	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

// MaxComponents is the number of component types one manager can register.
const MaxComponents = mask.MaxBits

// Manager owns the entity sequence and one store per registered component. The
// set of components is fixed when the manager is created.
type Manager struct {
	schema   table.Schema
	rows     map[table.ElementTypeID]uint32
	stores   []componentStore
	entities []entity
	locks    int
	opQueue  opQueue
}

func newManager(schema table.Schema, components ...Component) (*Manager, error) {
	if len(components) == 0 {
		return nil, EmptySchemaError{}
	}
	if len(components) > MaxComponents {
		return nil, TooManyComponentsError{Count: len(components)}
	}
	m := &Manager{
		schema:  schema,
		rows:    make(map[table.ElementTypeID]uint32, len(components)),
		stores:  make([]componentStore, 0, len(components)),
		opQueue: newOpQueue(),
	}
	// Rows are positions in components, independent of the schema's own row
	// assignment.
	for _, c := range components {
		if _, ok := m.rows[c.ID()]; ok {
			return nil, ComponentExistsError{Component: c}
		}
		schema.Register(c)
		m.rows[c.ID()] = uint32(len(m.stores))
		m.stores = append(m.stores, c.newStore(Config.initialCapacity))
	}
	m.entities = make([]entity, 0, Config.initialCapacity)
	return m, nil
}

// AddEntity appends a new entity and returns a builder bound to it. Ids are
// assigned in creation order starting at zero.
func (m *Manager) AddEntity() *Builder {
	if m.Locked() {
		panic(LockedStorageError{})
	}
	return m.addEntity()
}

func (m *Manager) addEntity() *Builder {
	id := len(m.entities)
	m.entities = append(m.entities, newEntity(id, len(m.stores)))
	return &Builder{manager: m, id: id}
}

// Entity returns a view of the entity with the given id.
func (m *Manager) Entity(id int) (Entity, error) {
	if id < 0 || id >= len(m.entities) {
		return Entity{}, EntityNotFoundError{ID: id}
	}
	return Entity{manager: m, id: id}, nil
}

// Len returns the number of entities created so far.
func (m *Manager) Len() int {
	return len(m.entities)
}

// StoreLen returns how many values were ever appended to c's store, orphaned
// entries included.
func (m *Manager) StoreLen(c Component) int {
	return m.storeFor(m.rowFor(c)).len()
}

// Locked reports whether a cursor or scan is currently open on the manager.
func (m *Manager) Locked() bool {
	return m.locks > 0
}

func (m *Manager) lock() {
	m.locks++
}

func (m *Manager) unlock() {
	if m.locks == 0 {
		return
	}
	m.locks--
	if m.locks == 0 {
		m.processOperationQueue()
	}
}

// rowFor resolves c to its row in this manager, panicking if c was not part
// of the manager's schema.
func (m *Manager) rowFor(c Component) uint32 {
	row, ok := m.rows[c.ID()]
	if !ok || !m.stores[row].accepts(c) {
		panic(UnregisteredComponentError{Component: c})
	}
	return row
}

func (m *Manager) storeFor(row uint32) componentStore {
	return m.stores[row]
}
