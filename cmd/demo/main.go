// Demo opens a window, fills it with a grid of sprites, and moves a
// player sprite with the keyboard while tracking the mouse with its
// rotation. Collisions against the grid are logged as they happen.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/catbox/config"
	"github.com/pthm-cable/catbox/engine"
	"github.com/pthm-cable/catbox/input"
	"github.com/pthm-cable/catbox/sprite"
	"github.com/pthm-cable/catbox/telemetry"
	"github.com/pthm-cable/catbox/vec"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	spritePath := flag.String("sprite", "duck.png", "Sprite image, relative to the assets dir")
	fontPath := flag.String("font", "", "TTF font for the overlay text (empty = no text)")
	musicPath := flag.String("music", "", "Music file to stream (empty = silent)")
	outputDir := flag.String("output-dir", "", "Directory for frame-stats CSV output")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	asset := func(p string) string { return filepath.Join(cfg.Assets.Dir, p) }

	player, err := sprite.New(asset(*spritePath), 500, 400)
	if err != nil {
		slog.Error("failed to load player sprite", "error", err)
		os.Exit(1)
	}
	target, err := sprite.New(asset(*spritePath), 400, 500)
	if err != nil {
		slog.Error("failed to load target sprite", "error", err)
		os.Exit(1)
	}

	grid := sprite.WithCapacity(80)
	for n := int32(0); n < 10; n++ {
		for o := int32(0); o < 8; o++ {
			s, err := sprite.New(asset(*spritePath), n*100, o*100)
			if err != nil {
				slog.Error("failed to load grid sprite", "error", err)
				os.Exit(1)
			}
			grid.Push(s)
		}
	}

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to open output dir", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to snapshot config", "error", err)
	}

	frames := telemetry.NewFrameCollector(cfg.Window.TargetFPS)
	runSec := 0.0

	g := engine.NewFromConfig(cfg)

	var hue uint8
	musicStarted := false
	frameTimer := engine.NewTimer()
	statsTimer := engine.NewTimer()

	g.Run(func(ctx *engine.Context) {
		frames.Record(frameTimer.Elapsed())
		frameTimer.Reset()

		if !musicStarted && *musicPath != "" && cfg.Audio.Enabled {
			musicStarted = true
			if _, err := ctx.PlayMusic(asset(*musicPath), float32(cfg.Audio.Volume)); err != nil {
				slog.Error("failed to play music", "error", err)
			}
		}

		hue++
		ctx.SetBackgroundColour(hue, 64, 255)

		// The player looks at the cursor.
		m := input.MouseState()
		diff := m.Pos().Sub(player.Position()).ToVec2()
		player.SetAngle(angleDeg(diff))

		grid.Each(func(s *sprite.Sprite) {
			d := m.Pos().Sub(s.Position()).ToVec2()
			s.SetAngle(angleDeg(d))
		})

		// Keyboard movement; y is positive-up for Translate.
		kb := input.KeyboardState()
		if kb.Pressed(rl.KeyEscape) {
			g.Terminate()
		}
		var offset vec.Vec2Int
		switch {
		case kb.Down(rl.KeyW), kb.Down(rl.KeyUp):
			offset = vec.V2i(0, 5)
		case kb.Down(rl.KeyS), kb.Down(rl.KeyDown):
			offset = vec.V2i(0, -5)
		case kb.Down(rl.KeyA), kb.Down(rl.KeyLeft):
			offset = vec.V2i(-5, 0)
		case kb.Down(rl.KeyD), kb.Down(rl.KeyRight):
			offset = vec.V2i(5, 0)
		}
		player.Translate(offset)

		if hits := sprite.CollidesWithAny(target, grid); len(hits) > 0 {
			slog.Info("sprites collided", "count", len(hits), "target", target.Position())
		}

		target.Draw()
		player.Draw()
		grid.Draw()

		if *fontPath != "" {
			w, _ := ctx.Screen()
			label := fmt.Sprintf("hue is %d", hue)
			err := ctx.DrawText(label, asset(*fontPath), 36, vec.V2i(w/2, 40),
				engine.Shaded(rl.White, rl.Black))
			if err != nil {
				slog.Error("failed to draw text", "error", err)
			}
		}

		// Flush stats once per telemetry window.
		if statsTimer.Elapsed().Seconds() >= cfg.Telemetry.WindowSec {
			runSec += statsTimer.Elapsed().Seconds()
			statsTimer.Reset()
			if err := out.WriteFrames(telemetry.Record(runSec, frames.Stats())); err != nil {
				slog.Error("failed to write frame stats", "error", err)
			}
		}
	})

	s := frames.Stats()
	slog.Info("run finished", "frames", s.Frames, "mean_ms", s.MeanMs, "fps", s.FPS)

	player.Unload()
	target.Unload()
	grid.Unload()
}

// angleDeg returns the clockwise screen-space angle in degrees from the
// origin to v.
func angleDeg(v vec.Vec2) float64 {
	return math.Atan2(float64(v.Y), float64(v.X)) * 180 / math.Pi
}
