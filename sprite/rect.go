// Package sprite provides positioned, drawable 2D entities, an ordered
// collection type for managing them, and axis-aligned collision checks.
package sprite

import "github.com/pthm-cable/catbox/vec"

// Rect is an integer axis-aligned rectangle in screen space. X and Y are
// the top-left origin; the semantic position of a sprite is the center.
type Rect struct {
	X, Y, W, H int32
}

// RectFromCenter builds a Rect of the given size centered on c.
func RectFromCenter(c vec.Vec2Int, w, h int32) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() vec.Vec2Int {
	return vec.Vec2Int{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// CenterOn returns the rectangle re-centered on p.
func (r Rect) CenterOn(p vec.Vec2Int) Rect {
	return RectFromCenter(p, r.W, r.H)
}

// Intersects reports whether the two rectangles overlap. Edge contact
// counts as an intersection.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X+o.W && o.X <= r.X+r.W &&
		r.Y <= o.Y+o.H && o.Y <= r.Y+r.H
}
