package sprite

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/catbox/vec"
)

// Sprite is a drawable entity: a bounding rectangle sized from its image
// at load time, plus a rotation angle used only when drawing. The size
// never changes after creation; the center is the sprite's position.
type Sprite struct {
	rect  Rect
	angle float64

	img       *rl.Image
	tex       rl.Texture2D
	texLoaded bool
}

// New loads the image at path and creates a sprite centered on (x, y).
// The rectangle takes its size from the decoded image.
func New(path string, x, y int32) (*Sprite, error) {
	img := rl.LoadImage(path)
	if img == nil || img.Width == 0 || img.Height == 0 {
		return nil, fmt.Errorf("loading image %q: decode failed", path)
	}
	return FromImage(img, x, y), nil
}

// FromBytes creates a sprite from an in-memory image buffer, like what
// go:embed provides. ext is the image format extension (".png").
func FromBytes(data []byte, ext string, x, y int32) (*Sprite, error) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	img := rl.LoadImageFromMemory(ext, data, int32(len(data)))
	if img == nil || img.Width == 0 || img.Height == 0 {
		return nil, fmt.Errorf("loading %s image from %d bytes: decode failed", ext, len(data))
	}
	return FromImage(img, x, y), nil
}

// FromImage creates a sprite from an already decoded image, centered on
// (x, y). The sprite takes ownership of the image.
func FromImage(img *rl.Image, x, y int32) *Sprite {
	return &Sprite{
		rect: RectFromCenter(vec.Vec2Int{X: x, Y: y}, img.Width, img.Height),
		img:  img,
	}
}

// Draw renders the sprite. Must be called inside the frame loop; the GPU
// texture is created from the image on first use.
func (s *Sprite) Draw() {
	if !s.texLoaded {
		s.tex = rl.LoadTextureFromImage(s.img)
		s.texLoaded = true
	}

	src := rl.NewRectangle(0, 0, float32(s.rect.W), float32(s.rect.H))
	c := s.rect.Center()
	dst := rl.NewRectangle(float32(c.X), float32(c.Y), float32(s.rect.W), float32(s.rect.H))
	// Rotation pivots around origin, which DrawTexturePro also treats as
	// the dst anchor point, so dst sits at the center.
	origin := rl.NewVector2(float32(s.rect.W)/2, float32(s.rect.H)/2)

	rl.DrawTexturePro(s.tex, src, dst, origin, float32(s.angle), rl.White)
}

// Translate moves the sprite by delta. The y component is negated: a
// positive delta.Y moves the sprite up on screen, while the rectangle is
// stored in y-down screen space. Callers relying on y-up movement depend
// on this inversion.
func (s *Sprite) Translate(delta vec.Vec2Int) {
	s.rect.X += delta.X
	s.rect.Y -= delta.Y
}

// Up moves the sprite up by v pixels.
func (s *Sprite) Up(v int32) {
	s.Translate(vec.Vec2Int{X: 0, Y: v})
}

// Down moves the sprite down by v pixels.
func (s *Sprite) Down(v int32) {
	s.Translate(vec.Vec2Int{X: 0, Y: -v})
}

// Left moves the sprite left by v pixels.
func (s *Sprite) Left(v int32) {
	s.Translate(vec.Vec2Int{X: -v, Y: 0})
}

// Right moves the sprite right by v pixels.
func (s *Sprite) Right(v int32) {
	s.Translate(vec.Vec2Int{X: v, Y: 0})
}

// SetPosition re-centers the sprite on p. Unlike Translate there is no
// sign inversion; p is a screen-space point.
func (s *Sprite) SetPosition(p vec.Vec2Int) {
	s.rect = s.rect.CenterOn(p)
}

// Position returns the center of the sprite.
func (s *Sprite) Position() vec.Vec2Int {
	return s.rect.Center()
}

// SetAngle sets the rotation in degrees of clockwise rotation. The angle
// affects drawing only; collision stays axis-aligned.
func (s *Sprite) SetAngle(angle float64) {
	s.angle = angle
}

// Angle returns the rotation in degrees of clockwise rotation.
func (s *Sprite) Angle() float64 {
	return s.angle
}

// Bounds returns the sprite's bounding rectangle.
func (s *Sprite) Bounds() Rect {
	return s.rect
}

// Unload releases the sprite's image and texture.
func (s *Sprite) Unload() {
	if s.texLoaded {
		rl.UnloadTexture(s.tex)
		s.texLoaded = false
	}
	if s.img != nil {
		rl.UnloadImage(s.img)
		s.img = nil
	}
}
