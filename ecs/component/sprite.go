package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws an image (or one frame of a sheet) at the owning Transform.
// Origin is in source pixels; FlipX mirrors around the frame's vertical axis.
type Sprite struct {
	Image     *ebiten.Image
	Source    image.Rectangle
	UseSource bool
	OriginX   float64
	OriginY   float64
	FlipX     bool
	Hidden    bool

	// Frames holds the sliced frames of a sprite sheet; Frame indexes it.
	Frames []*ebiten.Image
	Frame  int
}

// SetFrame switches a sheet sprite to frame i. Out-of-range frames are
// ignored.
func (s *Sprite) SetFrame(i int) {
	if s == nil || i < 0 || i >= len(s.Frames) {
		return
	}
	s.Frame = i
	s.Image = s.Frames[i]
	s.UseSource = false
}

// Size returns the size of the image currently drawn.
func (s *Sprite) Size() (float64, float64) {
	if s == nil || s.Image == nil {
		return 0, 0
	}
	if s.UseSource {
		return float64(s.Source.Dx()), float64(s.Source.Dy())
	}
	b := s.Image.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

var SpriteComponent = NewComponent[Sprite]()
