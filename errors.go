package stockroom

import "fmt"

// LockedStorageError is raised when entities or components are added while a
// cursor or scan is open on the manager.
type LockedStorageError struct{}

func (e LockedStorageError) Error() string {
	return "storage is currently locked"
}

// AliasingError is raised when a checkout would let a writer coexist with
// another reader or writer of the same store.
type AliasingError struct {
	Component       Component
	Held, Requested AccessMode
}

func (e AliasingError) Error() string {
	return fmt.Sprintf("cannot check out %T %s: store already held %s", e.Component, e.Requested, e.Held)
}

// UnregisteredComponentError is raised when a component that was not passed to
// NewManager is used with that manager.
type UnregisteredComponentError struct {
	Component Component
}

func (e UnregisteredComponentError) Error() string {
	return fmt.Sprintf("component is not registered with this manager: %T", e.Component)
}

// ComponentExistsError is returned by NewManager when the same component is
// listed twice.
type ComponentExistsError struct {
	Component Component
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component already registered: %T", e.Component)
}

// TooManyComponentsError is returned by NewManager when more than
// MaxComponents components are listed.
type TooManyComponentsError struct {
	Count int
}

func (e TooManyComponentsError) Error() string {
	return fmt.Sprintf("manager supports at most %d components, got %d", MaxComponents, e.Count)
}

// EntityNotFoundError is returned for an id the manager never handed out.
type EntityNotFoundError struct {
	ID int
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %d does not exist", e.ID)
}

// AccessModeError is raised when a cursor accessor asks for more access than
// the cursor's query granted, or when the cursor is not positioned.
type AccessModeError struct {
	Component Component
	Requested AccessMode
}

func (e AccessModeError) Error() string {
	return fmt.Sprintf("cursor does not hold %s access to %T", e.Requested, e.Component)
}

// InvalidQueryItemError is raised when Query.And is given something other than
// a Component, a Term, or a slice of either.
type InvalidQueryItemError struct {
	Item interface{}
}

func (e InvalidQueryItemError) Error() string {
	return fmt.Sprintf("unsupported query item of type %T", e.Item)
}

// EmptySchemaError is returned by NewManager when no components are listed.
type EmptySchemaError struct{}

func (e EmptySchemaError) Error() string {
	return "manager requires at least one component"
}
