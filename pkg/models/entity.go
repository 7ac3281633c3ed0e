package models

// Entity is implemented by anything with a stable numeric identity and a
// subtype-specific update behavior. The interface defines no default update
// and no contract for when or how often Update is invoked.
type Entity interface {
	// ID returns the identity assigned at construction; pure query.
	ID() int64

	// Update applies the implementation's own update behavior.
	Update()
}

// Base carries the identity shared by every entity implementation, along
// with the counter for the entity family it belongs to. Embed it in a
// concrete entity and supply Update to satisfy Entity.
type Base struct {
	id     int64
	family *Counter
}

// NewBase creates a Base with the given identity and family counter.
// The identity is fixed for the life of the value; no validation is
// applied to it. family may be nil for entities with no shared state.
func NewBase(id int64, family *Counter) Base {
	return Base{id: id, family: family}
}

// ID returns the identity assigned at construction.
func (b *Base) ID() int64 {
	return b.id
}

// Family returns the counter shared by this entity's family, or nil.
func (b *Base) Family() *Counter {
	return b.family
}

// Counter is state associated with an entity family as a whole rather than
// any single instance; pass the same Counter to NewBase across a family to
// share it. The package itself never writes to it; whether and when to
// call Add is the owning code's decision.
//
// Counter carries no locking and offers no guarantees under concurrent use.
type Counter struct {
	n int64
}

// NewCounter creates a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Add adjusts the counter by delta.
func (c *Counter) Add(delta int64) {
	c.n += delta
}

// Value returns the current count; pure query.
func (c *Counter) Value() int64 {
	return c.n
}
