package stockroom

type operation struct {
	typ    operationType
	id     int
	values []Value
}

type operationType int

const (
	opCreate operationType = iota
	opAdd
)

// opQueue holds structural changes requested while the manager is locked.
type opQueue struct {
	createOps []operation
	addOps    []operation
}

func newOpQueue() opQueue {
	return opQueue{}
}

func (q *opQueue) enqueueOp(op operation) {
	switch op.typ {
	case opCreate:
		q.createOps = append(q.createOps, op)
	case opAdd:
		q.addOps = append(q.addOps, op)
	}
}

func (q *opQueue) pending() int {
	return len(q.createOps) + len(q.addOps)
}

// EnqueueEntity creates an entity holding values, immediately when the manager
// is unlocked, otherwise once the last open cursor or scan releases it.
func (m *Manager) EnqueueEntity(values ...Value) {
	m.validate(values)
	if !m.Locked() {
		m.addEntity().Add(values...)
		return
	}
	m.opQueue.enqueueOp(operation{typ: opCreate, values: values})
}

// EnqueueAdd attaches values to an existing entity, deferring the work while
// the manager is locked.
func (m *Manager) EnqueueAdd(id int, values ...Value) error {
	if id < 0 || id >= len(m.entities) {
		return EntityNotFoundError{ID: id}
	}
	m.validate(values)
	if !m.Locked() {
		(&Builder{manager: m, id: id}).Add(values...)
		return nil
	}
	m.opQueue.enqueueOp(operation{typ: opAdd, id: id, values: values})
	return nil
}

// Pending returns the number of queued operations.
func (m *Manager) Pending() int {
	return m.opQueue.pending()
}

func (m *Manager) validate(values []Value) {
	for _, v := range values {
		m.rowFor(v.component())
	}
}

func (m *Manager) processOperationQueue() {
	if m.opQueue.pending() == 0 {
		return
	}
	// Creates first so ids follow enqueue order.
	for _, op := range m.opQueue.createOps {
		m.addEntity().Add(op.values...)
	}
	for _, op := range m.opQueue.addOps {
		(&Builder{manager: m, id: op.id}).Add(op.values...)
	}
	m.opQueue.createOps = m.opQueue.createOps[:0]
	m.opQueue.addOps = m.opQueue.addOps[:0]
}
