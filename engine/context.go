package engine

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/catbox/camera"
	"github.com/pthm-cable/catbox/vec"
)

// Context is the per-frame drawing surface handed to the Run callback.
// It owns the background colour, the font cache, and any playing music.
type Context struct {
	background rl.Color
	fonts      map[fontKey]rl.Font
	music      []*Music
	audioOpen  bool
}

type fontKey struct {
	path string
	size int32
}

func newContext() *Context {
	return &Context{
		background: rl.Black,
		fonts:      make(map[fontKey]rl.Font),
	}
}

// SetBackgroundColour sets the colour the frame is cleared to.
func (ctx *Context) SetBackgroundColour(r, g, b uint8) {
	ctx.background = rl.NewColor(r, g, b, 255)
}

// Screen returns the current window size in pixels.
func (ctx *Context) Screen() (int32, int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

// Begin2D switches drawing into world space through cam. Must be paired
// with End2D within the same frame.
func (ctx *Context) Begin2D(cam *camera.Camera) {
	rl.BeginMode2D(cam.Raylib())
}

// End2D switches drawing back to screen space.
func (ctx *Context) End2D() {
	rl.EndMode2D()
}

// TextMode selects how text is rendered: bare glyphs over whatever is
// behind them, or glyphs on a filled background box.
type TextMode struct {
	fg     rl.Color
	bg     rl.Color
	shaded bool
}

// Transparent renders text in the given colour with no background.
func Transparent(colour rl.Color) TextMode {
	return TextMode{fg: colour}
}

// Shaded renders text in fg on a filled bg box.
func Shaded(fg, bg rl.Color) TextMode {
	return TextMode{fg: fg, bg: bg, shaded: true}
}

// DrawText renders text centered on pos using the font at fontPath,
// loaded at the given pixel size. Fonts are cached per (path, size) for
// the lifetime of the loop.
func (ctx *Context) DrawText(text, fontPath string, size int32, pos vec.Vec2Int, mode TextMode) error {
	font, err := ctx.font(fontPath, size)
	if err != nil {
		return err
	}

	spacing := float32(size) / 10
	measure := rl.MeasureTextEx(font, text, float32(size), spacing)
	topLeft := rl.NewVector2(float32(pos.X)-measure.X/2, float32(pos.Y)-measure.Y/2)

	if mode.shaded {
		rl.DrawRectangle(int32(topLeft.X), int32(topLeft.Y), int32(measure.X), int32(measure.Y), mode.bg)
	}
	rl.DrawTextEx(font, text, topLeft, float32(size), spacing, mode.fg)
	return nil
}

func (ctx *Context) font(path string, size int32) (rl.Font, error) {
	key := fontKey{path: path, size: size}
	if f, ok := ctx.fonts[key]; ok {
		return f, nil
	}

	f := rl.LoadFontEx(path, size, nil)
	if f.Texture.ID == 0 {
		return rl.Font{}, fmt.Errorf("loading font %q at size %d: decode failed", path, size)
	}
	ctx.fonts[key] = f
	slog.Debug("font loaded", "path", path, "size", size)
	return f, nil
}

func (ctx *Context) unload() {
	for _, f := range ctx.fonts {
		rl.UnloadFont(f)
	}
	for _, m := range ctx.music {
		m.unload()
	}
	if ctx.audioOpen {
		rl.CloseAudioDevice()
	}
}
