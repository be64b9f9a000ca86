package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"golang.org/x/image/font/basicfont"
)

var (
	uiFace       text.Face = text.NewGoXFace(basicfont.Face7x13)
	uiLineHeight           = float64(basicfont.Face7x13.Height)
)

// RenderSystem draws sprites, tile sprites and screen-space labels in
// RenderLayer order. World entities go through the camera.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	camX, camY, zoom := debugCameraTransform(w)

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	entities = append(entities, w.Query(component.TextComponent.Kind())...)
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := renderLayer(w, entities[i]), renderLayer(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		if label, ok := ecs.Get(w, e, component.TextComponent); ok {
			drawText(screen, label)
			continue
		}

		t, _ := ecs.Get(w, e, component.TransformComponent)
		s, _ := ecs.Get(w, e, component.SpriteComponent)
		if s.Hidden || s.Image == nil {
			continue
		}

		img := s.Image
		if s.UseSource {
			if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		cx, cy, cz := camX, camY, zoom
		if ecs.Has(w, e, component.ScreenSpaceComponent) {
			cx, cy, cz = 0, 0, 1
		}

		count := 1
		if ts, ok := ecs.Get(w, e, component.TileSpriteComponent); ok && ts.Count > 1 {
			count = ts.Count
		}
		tileW := float64(img.Bounds().Dx())
		for i := 0; i < count; i++ {
			op := spriteGeoM(t, s, img, float64(i)*tileW)
			op.GeoM.Scale(cz, cz)
			op.GeoM.Translate(math.Round((t.X-cx)*cz), math.Round((t.Y-cy)*cz))
			screen.DrawImage(img, op)
		}
	}
}

func renderLayer(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent); ok {
		return layer.Index
	}
	return 0
}

// spriteGeoM places img relative to the entity's origin point. Flipping
// mirrors around the frame center.
func spriteGeoM(t *component.Transform, s *component.Sprite, img *ebiten.Image, offsetX float64) *ebiten.DrawImageOptions {
	imgW := float64(img.Bounds().Dx())
	imgH := float64(img.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-imgW/2, -imgH/2)
	if s.FlipX {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Translate(imgW/2-s.OriginX+offsetX, imgH/2-s.OriginY)

	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(t.Rotation)
	return op
}

func drawText(screen *ebiten.Image, label *component.Text) {
	if label.Hidden || label.Value == "" || label.Alpha <= 0 {
		return
	}
	scale := label.Scale
	if scale <= 0 {
		scale = 1
	}
	tw, th := text.Measure(label.Value, uiFace, uiLineHeight)
	x := label.X - tw*scale*label.OriginX
	y := label.Y - th*scale*label.OriginY

	if label.Stroke != nil && label.StrokeWidth > 0 {
		r := label.StrokeWidth / 2
		steps := int(math.Ceil(r))
		for dy := -steps; dy <= steps; dy++ {
			for dx := -steps; dx <= steps; dx++ {
				if (dx == 0 && dy == 0) || math.Hypot(float64(dx), float64(dy)) > r+0.5 {
					continue
				}
				drawTextAt(screen, label.Value, x+float64(dx), y+float64(dy), scale, label.Stroke, label.Alpha)
			}
		}
	}
	fill := label.Color
	if fill == nil {
		fill = color.White
	}
	drawTextAt(screen, label.Value, x, y, scale, fill, label.Alpha)
}

func drawTextAt(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color, alpha float64) {
	op := &text.DrawOptions{}
	op.LineSpacing = uiLineHeight
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(math.Round(x), math.Round(y))
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, uiFace, op)
}

// DrawTouchControls draws the virtual stick and jump button once touch
// input has been seen.
func DrawTouchControls(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(w, component.TouchControlsComponent, func(e ecs.Entity, tc *component.TouchControls) {
		if !tc.Enabled {
			return
		}
		base := color.NRGBA{A: 64}
		knob := color.NRGBA{R: 255, G: 255, B: 255, A: 89}

		st := tc.Stick
		vector.FillCircle(screen, float32(st.CenterX), float32(st.CenterY), float32(st.Radius), base, true)
		kx := st.CenterX + st.X*st.Radius
		ky := st.CenterY + st.Y*st.Radius
		vector.FillCircle(screen, float32(kx), float32(ky), float32(tc.KnobRadius), knob, true)

		scale := 1.0
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok && t.ScaleX > 0 {
			scale = t.ScaleX
		}
		vector.FillCircle(screen, float32(tc.JumpX), float32(tc.JumpY), float32(tc.JumpRadius*scale), base, true)
		drawText(screen, &component.Text{
			Value:       "J",
			X:           tc.JumpX,
			Y:           tc.JumpY,
			OriginX:     0.5,
			OriginY:     0.5,
			Scale:       18.0 / uiLineHeight,
			Color:       color.White,
			Stroke:      color.Black,
			StrokeWidth: 4,
			Alpha:       1,
		})
	})
}

// DrawFade covers the screen with black at the current fade alpha.
func DrawFade(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(w, component.FadeComponent, func(e ecs.Entity, fade *component.Fade) {
		if fade.Phase == component.FadeNone || fade.Alpha <= 0 {
			return
		}
		b := screen.Bounds()
		a := uint8(math.Round(fade.Alpha * 255))
		vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.NRGBA{A: a}, false)
	})
}
