package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/catbox/input"
	"github.com/pthm-cable/catbox/sprite"
)

func testButton(t *testing.T, cx, cy int32) *Button {
	t.Helper()
	img := rl.GenImageColor(20, 20, rl.White)
	if img == nil {
		t.Fatal("GenImageColor returned nil")
	}
	return FromSprite(sprite.FromImage(img, cx, cy), cx, cy)
}

func TestButtonClickFiresNextCall(t *testing.T) {
	b := testButton(t, 100, 100)

	press := input.Mouse{X: 100, Y: 100, Left: true}
	release := input.Mouse{X: 100, Y: 100}

	fired := 0
	b.Clicked(press, func() { fired++ })
	if fired != 0 {
		t.Fatalf("press fired on the same call, want deferred")
	}
	b.Clicked(release, func() { fired++ })
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
}

func TestButtonClickMissesOutside(t *testing.T) {
	b := testButton(t, 100, 100)

	away := input.Mouse{X: 500, Y: 500, Left: true}
	fired := 0
	b.Clicked(away, func() { fired++ })
	b.Clicked(away, func() { fired++ })
	if fired != 0 {
		t.Fatalf("fired = %d, want 0", fired)
	}
}

func TestButtonHovered(t *testing.T) {
	b := testButton(t, 100, 100)

	over := input.Mouse{X: 105, Y: 95}
	b.Clicked(over, func() {})
	if !b.Hovered() {
		t.Fatal("Hovered() = false with cursor over the button")
	}

	away := input.Mouse{X: 500, Y: 500}
	b.Clicked(away, func() {})
	if b.Hovered() {
		t.Fatal("Hovered() = true with cursor away")
	}
}
