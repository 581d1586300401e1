// Package input exposes per-frame keyboard and mouse snapshots. Mapping
// keys to movement offsets is left to the caller.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/catbox/sprite"
	"github.com/pthm-cable/catbox/vec"
)

// Keyboard is a view of the keyboard state for the current frame. Keys
// are raylib key codes (rl.KeyW, rl.KeyEscape, ...).
type Keyboard struct{}

// KeyboardState returns the keyboard view for the current frame.
func KeyboardState() Keyboard {
	return Keyboard{}
}

// Down reports whether the key is currently held.
func (Keyboard) Down(key int32) bool {
	return rl.IsKeyDown(key)
}

// Pressed reports whether the key went down this frame.
func (Keyboard) Pressed(key int32) bool {
	return rl.IsKeyPressed(key)
}

// Released reports whether the key went up this frame.
func (Keyboard) Released(key int32) bool {
	return rl.IsKeyReleased(key)
}

// Mouse is a snapshot of the mouse taken once per frame.
type Mouse struct {
	// X and Y are the cursor position in screen pixels.
	X, Y int32
	// Button states, true while held.
	Left, Right, Middle bool
	// Press edges, true only on the frame the button went down.
	LeftPressed, RightPressed bool
	// Wheel is the scroll movement this frame.
	Wheel float32
}

// MouseState captures the mouse state for the current frame.
func MouseState() Mouse {
	pos := rl.GetMousePosition()
	return Mouse{
		X:            int32(pos.X),
		Y:            int32(pos.Y),
		Left:         rl.IsMouseButtonDown(rl.MouseLeftButton),
		Right:        rl.IsMouseButtonDown(rl.MouseRightButton),
		Middle:       rl.IsMouseButtonDown(rl.MouseMiddleButton),
		LeftPressed:  rl.IsMouseButtonPressed(rl.MouseLeftButton),
		RightPressed: rl.IsMouseButtonPressed(rl.MouseRightButton),
		Wheel:        rl.GetMouseWheelMove(),
	}
}

// Pos returns the cursor position as a vector.
func (m Mouse) Pos() vec.Vec2Int {
	return vec.Vec2Int{X: m.X, Y: m.Y}
}

// CollidesWith reports whether the cursor is over the sprite, using the
// sprite point-collision check.
func (m Mouse) CollidesWith(s *sprite.Sprite) bool {
	return sprite.CollidesWithPoint(s, m.Pos())
}
