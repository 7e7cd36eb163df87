package stockroom

// Config holds global configuration for new managers.
var Config config = config{initialCapacity: 64}

type config struct {
	initialCapacity int
}

// SetInitialCapacity sets how many entities, and values per store, new managers
// preallocate room for.
func (c *config) SetInitialCapacity(n int) {
	c.initialCapacity = max(n, 0)
}

// InitialCapacity returns the current preallocation size.
func (c *config) InitialCapacity() int {
	return c.initialCapacity
}
