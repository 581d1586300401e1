// Package engine owns the window and the blocking frame loop, and exposes
// the per-frame drawing context. One Game per process; raylib keeps the
// window state globally, so the loop must stay on the main goroutine.
package engine

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/catbox/config"
)

// Game describes the window to open and carries the loop's stop flag.
type Game struct {
	// Title is shown in the window title bar.
	Title string
	// Width and Height are the window dimensions in pixels.
	Width, Height int32

	targetFPS int32
	stopped   bool
	tick      *Timer
}

// New creates a game with the given window title and size. Call Run to
// open the window and start the loop.
func New(title string, width, height int32) *Game {
	return &Game{
		Title:     title,
		Width:     width,
		Height:    height,
		targetFPS: 60,
		tick:      NewTimer(),
	}
}

// NewFromConfig creates a game from the window section of cfg.
func NewFromConfig(cfg *config.Config) *Game {
	g := New(cfg.Window.Title, int32(cfg.Window.Width), int32(cfg.Window.Height))
	if cfg.Window.TargetFPS > 0 {
		g.targetFPS = int32(cfg.Window.TargetFPS)
	}
	return g
}

// SetTargetFPS sets the frame rate cap applied when Run opens the window.
func (g *Game) SetTargetFPS(fps int32) {
	g.targetFPS = fps
}

// Run opens the window and blocks in the frame loop: clear, callback,
// present, once per frame, until Terminate is called or the window is
// closed. Resources created by the context (fonts, audio) are released
// when the loop exits.
func (g *Game) Run(frame func(*Context)) {
	rl.InitWindow(g.Width, g.Height, g.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(g.targetFPS)

	slog.Info("window opened",
		"title", g.Title,
		"width", g.Width,
		"height", g.Height,
		"target_fps", g.targetFPS,
	)

	ctx := newContext()
	defer ctx.unload()

	for !g.stopped {
		if rl.WindowShouldClose() {
			break
		}

		ctx.updateMusic()

		rl.BeginDrawing()
		rl.ClearBackground(ctx.background)
		frame(ctx)
		rl.EndDrawing()
	}

	slog.Info("frame loop stopped", "title", g.Title)
}

// Terminate asks the frame loop to stop. Call it from inside the Run
// callback; the loop checks the flag once per iteration.
func (g *Game) Terminate() {
	g.stopped = true
}

// Stopped reports whether Terminate has been called.
func (g *Game) Stopped() bool {
	return g.stopped
}

// SinceTick returns the time elapsed since the last ResetTick, for
// caller-side frame pacing.
func (g *Game) SinceTick() float64 {
	return g.tick.Elapsed().Seconds()
}

// ResetTick restarts the pacing timer.
func (g *Game) ResetTick() {
	g.tick.Reset()
}
