// Boids runs a small flocking simulation on top of the engine. Entities
// live in an ECS world, steering weights are tuned live with sliders,
// and the camera pans with the right mouse button and zooms with the
// wheel.
package main

import (
	"flag"
	"log/slog"
	"math"
	"math/rand"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/catbox/camera"
	"github.com/pthm-cable/catbox/config"
	"github.com/pthm-cable/catbox/engine"
	"github.com/pthm-cable/catbox/input"
	"github.com/pthm-cable/catbox/vec"
)

const (
	worldWidth   = 2000
	worldHeight  = 2000
	neighborDist = 80
	maxSpeed     = 160 // world units per second
)

// Position is a boid's location in world space.
type Position struct {
	vec.Vec2
}

// Velocity is a boid's current heading and speed.
type Velocity struct {
	vec.Vec2
}

type params struct {
	Cohesion   float32
	Separation float32
	Alignment  float32
	Count      int
}

type flock struct {
	world  *ecs.World
	mapper *ecs.Map2[Position, Velocity]
	filter *ecs.Filter2[Position, Velocity]
	rng    *rand.Rand
	count  int
}

func newFlock(n int) *flock {
	world := ecs.NewWorld()
	f := &flock{
		world:  world,
		mapper: ecs.NewMap2[Position, Velocity](world),
		filter: ecs.NewFilter2[Position, Velocity](world),
		rng:    rand.New(rand.NewSource(42)),
	}
	f.spawn(n)
	return f
}

func (f *flock) spawn(n int) {
	for i := 0; i < n; i++ {
		pos := Position{vec.V2(f.rng.Float32()*worldWidth, f.rng.Float32()*worldHeight)}
		heading := f.rng.Float64() * 2 * math.Pi
		vel := Velocity{vec.V2(float32(math.Cos(heading)), float32(math.Sin(heading))).Mul(maxSpeed / 2)}
		f.mapper.NewEntity(&pos, &vel)
	}
	f.count += n
}

// step advances every boid by dt seconds using the classic three rules.
func (f *flock) step(dt float32, p params) {
	type boid struct {
		pos vec.Vec2
		vel vec.Vec2
	}
	snapshot := make([]boid, 0, f.count)
	query := f.filter.Query()
	for query.Next() {
		pos, vel := query.Get()
		snapshot = append(snapshot, boid{pos.Vec2, vel.Vec2})
	}

	query = f.filter.Query()
	for query.Next() {
		pos, vel := query.Get()

		var center, repel, heading vec.Vec2
		neighbors := 0
		for _, other := range snapshot {
			d := pos.Vec2.SqDist(other.pos)
			if d == 0 || d > neighborDist*neighborDist {
				continue
			}
			neighbors++
			center = center.Add(other.pos)
			heading = heading.Add(other.vel)
			if d < (neighborDist/4)*(neighborDist/4) {
				repel = repel.Add(pos.Vec2.Sub(other.pos))
			}
		}
		if neighbors > 0 {
			inv := 1 / float32(neighbors)
			cohere := center.Mul(inv).Sub(pos.Vec2).Mul(p.Cohesion)
			align := heading.Mul(inv).Sub(vel.Vec2).Mul(p.Alignment)
			steer := cohere.Add(align).Add(repel.Mul(p.Separation))
			vel.Vec2 = vel.Vec2.Add(steer.Mul(dt))
		}
		if sp := vel.Vec2.Magnitude(); sp > maxSpeed {
			vel.Vec2 = vel.Vec2.Normalized().Mul(maxSpeed)
		}

		pos.Vec2 = pos.Vec2.Add(vel.Vec2.Mul(dt))
		pos.X = wrap(pos.X, worldWidth)
		pos.Y = wrap(pos.Y, worldHeight)
	}
}

func wrap(v, max float32) float32 {
	if v < 0 {
		return v + max
	}
	if v >= max {
		return v - max
	}
	return v
}

func (f *flock) draw() {
	query := f.filter.Query()
	for query.Next() {
		pos, vel := query.Get()
		dir := vel.Vec2
		if m := dir.Magnitude(); m > 0 {
			dir = dir.Mul(1 / m)
		}
		tip := pos.Vec2.Add(dir.Mul(10))
		left := pos.Vec2.Add(vec.V2(-dir.Y, dir.X).Mul(4)).Sub(dir.Mul(4))
		right := pos.Vec2.Add(vec.V2(dir.Y, -dir.X).Mul(4)).Sub(dir.Mul(4))
		rl.DrawTriangle(
			rl.NewVector2(tip.X, tip.Y),
			rl.NewVector2(left.X, left.Y),
			rl.NewVector2(right.X, right.Y),
			rl.SkyBlue,
		)
	}
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	count := flag.Int("count", 300, "Initial number of boids")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	cfg.Window.Title = "catbox boids"

	f := newFlock(*count)
	p := params{Cohesion: 1.0, Separation: 1.5, Alignment: 1.0, Count: *count}
	paused := false

	cam := camera.New(
		float32(cfg.Window.Width), float32(cfg.Window.Height),
		worldWidth, worldHeight,
	)

	g := engine.NewFromConfig(cfg)
	slog.Info("starting flock", "boids", *count)

	g.Run(func(ctx *engine.Context) {
		dt := rl.GetFrameTime()

		kb := input.KeyboardState()
		if kb.Pressed(rl.KeyEscape) {
			g.Terminate()
		}
		if kb.Pressed(rl.KeySpace) {
			paused = !paused
		}

		m := input.MouseState()
		if m.Right {
			delta := rl.GetMouseDelta()
			cam.Pan(-delta.X/cam.Zoom, -delta.Y/cam.Zoom)
		}
		if m.Wheel != 0 {
			cam.ZoomAt(float32(m.X), float32(m.Y), 1+m.Wheel*0.1)
		}

		if !paused {
			f.step(dt, p)
		}

		ctx.SetBackgroundColour(12, 16, 24)
		ctx.Begin2D(cam)
		rl.DrawRectangleLines(0, 0, worldWidth, worldHeight, rl.DarkGray)
		f.draw()
		ctx.End2D()

		drawPanel(&p, f, &paused)
	})
}

func drawPanel(p *params, f *flock, paused *bool) {
	panelX := float32(10)
	panelY := float32(10)

	rl.DrawRectangle(0, 0, 220, 190, rl.Fade(rl.Black, 0.6))
	rl.DrawText("Flocking", int32(panelX), int32(panelY), 20, rl.RayWhite)
	panelY += 30

	rl.DrawText("Cohesion", int32(panelX), int32(panelY), 14, rl.LightGray)
	panelY += 16
	p.Cohesion = gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: 180, Height: 16},
		"0", "4", p.Cohesion, 0, 4,
	)
	panelY += 24

	rl.DrawText("Separation", int32(panelX), int32(panelY), 14, rl.LightGray)
	panelY += 16
	p.Separation = gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: 180, Height: 16},
		"0", "4", p.Separation, 0, 4,
	)
	panelY += 24

	rl.DrawText("Alignment", int32(panelX), int32(panelY), 14, rl.LightGray)
	panelY += 16
	p.Alignment = gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: 180, Height: 16},
		"0", "4", p.Alignment, 0, 4,
	)
	panelY += 24

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 85, Height: 24}, pauseLabel(*paused)) {
		*paused = !*paused
	}
	if gui.Button(rl.Rectangle{X: panelX + 95, Y: panelY, Width: 85, Height: 24}, "+100") {
		f.spawn(100)
	}
}

func pauseLabel(paused bool) string {
	if paused {
		return "Resume"
	}
	return "Pause"
}
