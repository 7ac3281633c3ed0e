// Package container provides a generic growable sequence supporting append
// and count. Elements are owned exclusively by the container; there is no
// removal, positional access, or iteration.
package container

// Container is an ordered sequence of T, preserving insertion order.
// The zero value is an empty container ready for use. Container carries
// no locking and offers no guarantees under concurrent use.
type Container[T any] struct {
	items []T
}

// Add appends item to the end of the sequence.
func (c *Container[T]) Add(item T) {
	c.items = append(c.items, item)
}

// Size returns the current element count; pure query.
func (c *Container[T]) Size() int {
	return len(c.items)
}
