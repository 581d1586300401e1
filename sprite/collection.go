package sprite

import "fmt"

// Collection is an insertion-ordered, index-addressable sequence of
// sprites. It is a deliberate wrapper rather than a bare slice so the
// only ways to reorder or alias elements are the methods below. The
// caller owns it exclusively; no locking is done.
type Collection struct {
	items []*Sprite
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// WithCapacity creates an empty collection with room for cap sprites
// before reallocating.
func WithCapacity(cap int) *Collection {
	return &Collection{items: make([]*Sprite, 0, cap)}
}

// Push appends s to the end of the collection.
func (c *Collection) Push(s *Sprite) {
	c.items = append(c.items, s)
}

// Insert places s at position index, shifting later elements right.
// Panics if index is out of range.
func (c *Collection) Insert(s *Sprite, index int) {
	if index < 0 || index > len(c.items) {
		panic(fmt.Sprintf("sprite: insert index %d out of range [0,%d]", index, len(c.items)))
	}
	c.items = append(c.items, nil)
	copy(c.items[index+1:], c.items[index:])
	c.items[index] = s
}

// Pop removes and returns the last sprite, or nil if the collection is
// empty.
func (c *Collection) Pop() *Sprite {
	if len(c.items) == 0 {
		return nil
	}
	s := c.items[len(c.items)-1]
	c.items[len(c.items)-1] = nil
	c.items = c.items[:len(c.items)-1]
	return s
}

// Remove removes and returns the sprite at index, shifting later
// elements left. An out-of-range index is a caller bug; it panics rather
// than silently corrupting ordering.
func (c *Collection) Remove(index int) *Sprite {
	if index < 0 || index >= len(c.items) {
		panic(fmt.Sprintf("sprite: remove index %d out of range [0,%d)", index, len(c.items)))
	}
	s := c.items[index]
	copy(c.items[index:], c.items[index+1:])
	c.items[len(c.items)-1] = nil
	c.items = c.items[:len(c.items)-1]
	return s
}

// Get returns the sprite at index, or nil if it doesn't exist.
func (c *Collection) Get(index int) *Sprite {
	if index < 0 || index >= len(c.items) {
		return nil
	}
	return c.items[index]
}

// Each calls fn for every sprite in insertion order. Use it to mutate
// the sprites themselves, for example to set position or angle.
func (c *Collection) Each(fn func(*Sprite)) {
	for _, s := range c.items {
		fn(s)
	}
}

// Concat moves all elements of other to the end of c, leaving other
// empty.
func (c *Collection) Concat(other *Collection) {
	c.items = append(c.items, other.items...)
	other.items = other.items[:0]
}

// Clear removes every sprite, keeping the allocated capacity.
func (c *Collection) Clear() {
	for i := range c.items {
		c.items[i] = nil
	}
	c.items = c.items[:0]
}

// Len returns the number of sprites in the collection.
func (c *Collection) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the collection has no sprites.
func (c *Collection) IsEmpty() bool {
	return len(c.items) == 0
}

// Draw renders every sprite in insertion order. Must be called inside
// the frame loop.
func (c *Collection) Draw() {
	for _, s := range c.items {
		s.Draw()
	}
}

// Unload releases the image and texture of every sprite.
func (c *Collection) Unload() {
	for _, s := range c.items {
		s.Unload()
	}
}
