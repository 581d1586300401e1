// Package ui provides sprite-backed interface widgets.
package ui

import (
	"github.com/pthm-cable/catbox/input"
	"github.com/pthm-cable/catbox/sprite"
	"github.com/pthm-cable/catbox/vec"
)

// Action is a pending interaction recorded on a button.
type Action int

const (
	// ActionNone means no interaction.
	ActionNone Action = iota
	// ActionPressed means the button was clicked.
	ActionPressed
	// ActionHover means the cursor is over the button.
	ActionHover
)

// Button is a clickable sprite at a fixed position. Interactions queue
// as actions; Clicked drains one per call so a press registered on one
// frame can fire on the next.
type Button struct {
	Sprite *sprite.Sprite
	pos    vec.Vec2Int

	actions []Action
}

// New creates a button from the image at path, centered on (x, y).
func New(path string, x, y int32) (*Button, error) {
	s, err := sprite.New(path, x, y)
	if err != nil {
		return nil, err
	}
	return FromSprite(s, x, y), nil
}

// FromSprite creates a button around an existing sprite, centered on
// (x, y).
func FromSprite(s *sprite.Sprite, x, y int32) *Button {
	return &Button{Sprite: s, pos: vec.Vec2Int{X: x, Y: y}}
}

// Draw pins the sprite to the button position and renders it.
func (b *Button) Draw() {
	b.Sprite.SetPosition(b.pos)
	b.Sprite.Draw()
}

// Clicked processes one queued action, calling fn if it was a press,
// then records the current frame's interaction from m.
func (b *Button) Clicked(m input.Mouse, fn func()) {
	if a := b.pop(); a == ActionPressed {
		fn()
	}

	over := m.CollidesWith(b.Sprite)
	switch {
	case m.Left && over:
		b.actions = append(b.actions, ActionPressed)
	case over:
		b.actions = append(b.actions, ActionHover)
	default:
		b.pop()
	}
}

// Hovered reports whether the most recent interaction is a hover.
func (b *Button) Hovered() bool {
	if len(b.actions) == 0 {
		return false
	}
	return b.actions[len(b.actions)-1] == ActionHover
}

// pop removes and returns the most recent action, or ActionNone.
func (b *Button) pop() Action {
	if len(b.actions) == 0 {
		return ActionNone
	}
	a := b.actions[len(b.actions)-1]
	b.actions = b.actions[:len(b.actions)-1]
	return a
}
