package sprite

import "github.com/pthm-cable/catbox/vec"

// Collision checks use a two-stage test: a cheap bounding-circle reject
// followed by the exact rectangle intersection. The circle radius is
// max(width, height), an over-approximation of the true half-diagonal,
// so the pre-filter never rejects a pair whose rectangles overlap.

// collisionRadius returns the broad-phase radius for a sprite.
func collisionRadius(s *Sprite) int32 {
	if s.rect.W > s.rect.H {
		return s.rect.W
	}
	return s.rect.H
}

// Collides reports whether the two sprites' bounding rectangles are
// touching or overlapping.
func Collides(a, b *Sprite) bool {
	threshold := collisionRadius(a) + collisionRadius(b)
	threshold *= threshold

	diffX := a.Position().X - b.Position().X
	if diffX*diffX > threshold {
		return false
	}

	diffY := a.Position().Y - b.Position().Y
	if diffY*diffY > threshold {
		return false
	}

	return a.rect.Intersects(b.rect)
}

// CollidesWithPoint reports whether point lies within the sprite's
// bounding circle. Only the per-axis radius test runs; there is no exact
// point-in-rectangle check, so points near the corners of a wide sprite
// can report a collision outside the rectangle. Callers depend on this
// approximation.
func CollidesWithPoint(s *Sprite, point vec.Vec2Int) bool {
	threshold := collisionRadius(s)
	threshold *= threshold

	diffX := s.Position().X - point.X
	if diffX*diffX > threshold {
		return false
	}

	diffY := s.Position().Y - point.Y
	if diffY*diffY > threshold {
		return false
	}

	return true
}

// CollidesWithAny returns the sprites in coll that collide with s, in
// collection order. The result is empty when nothing collides. If s
// itself is an element of coll it is checked like any other sprite.
func CollidesWithAny(s *Sprite, coll *Collection) []*Sprite {
	var hits []*Sprite
	for _, other := range coll.items {
		if Collides(s, other) {
			hits = append(hits, other)
		}
	}
	return hits
}
