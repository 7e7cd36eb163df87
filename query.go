package stockroom

// Query describes the components an entity must hold (And) and must not hold
// (Without) to be visited by a cursor.
type Query struct {
	terms    []Term
	excluded []Component
}

func newQuery() *Query {
	return &Query{}
}

// And adds required components. Items may be a Component (read-only), a Term
// built with Read or Write, or a slice of either. Any other item panics with
// InvalidQueryItemError.
func (q *Query) And(items ...interface{}) *Query {
	q.terms = append(q.terms, q.processItems(items...)...)
	return q
}

// Without excludes entities holding any of the given components.
func (q *Query) Without(components ...Component) *Query {
	q.excluded = append(q.excluded, components...)
	return q
}

// Terms returns the required terms in the order they were added.
func (q *Query) Terms() []Term {
	return q.terms
}

func (q *Query) processItems(items ...interface{}) []Term {
	terms := make([]Term, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case Term:
			terms = append(terms, v)
		case Component:
			terms = append(terms, Read(v))
		case []Term:
			terms = append(terms, v...)
		case []Component:
			for _, c := range v {
				terms = append(terms, Read(c))
			}
		default:
			panic(InvalidQueryItemError{Item: item})
		}
	}
	return terms
}

type grant struct {
	row  uint32
	comp Component
	mode AccessMode
}

// grants resolves the query against m's schema. A component named more than
// once is granted once, with write access if any term asked for it.
func (q *Query) grants(m *Manager) []grant {
	grants := make([]grant, 0, len(q.terms))
	for _, t := range q.terms {
		row := m.rowFor(t.component())
		merged := false
		for i := range grants {
			if grants[i].row == row {
				grants[i].mode = max(grants[i].mode, t.mode())
				merged = true
				break
			}
		}
		if !merged {
			grants = append(grants, grant{row: row, comp: t.component(), mode: t.mode()})
		}
	}
	return grants
}
