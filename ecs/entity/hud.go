package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/barrelclimb/ecs"
	"github.com/milk9111/barrelclimb/ecs/component"
	"github.com/milk9111/barrelclimb/prefabs"
)

// NewHUD shows the controls hint in the bottom-left corner and fades it out
// after a delay.
func NewHUD(w *ecs.World, spec prefabs.HUDSpec, screenH float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TextComponent, &component.Text{
		Value:       spec.Text,
		X:           spec.X,
		Y:           screenH - spec.BottomOffset,
		OriginX:     0,
		OriginY:     1,
		Scale:       spec.Scale,
		Color:       spec.Color.ColorOr(color.White),
		Stroke:      spec.Stroke.ColorOr(color.Black),
		StrokeWidth: spec.StrokeWidth,
		Alpha:       1,
	}); err != nil {
		return 0, fmt.Errorf("hud: add text: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerHUD}); err != nil {
		return 0, fmt.Errorf("hud: add render layer: %w", err)
	}
	if err := ecs.Add(w, e, component.ScreenSpaceComponent, &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("hud: add screen space: %w", err)
	}
	if err := ecs.Add(w, e, component.TweenComponent, &component.Tween{
		Property:   component.TweenAlpha,
		From:       1,
		To:         0,
		DelayMs:    spec.FadeDelayMs,
		DurationMs: spec.FadeMs,
		Ease:       component.Ease(spec.Ease),
	}); err != nil {
		return 0, fmt.Errorf("hud: add tween: %w", err)
	}
	return e, nil
}
